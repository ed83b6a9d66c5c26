// Package hashing provides position hashing and duplicate detection for
// exercise catalogs.
package hashing

import (
	"github.com/lgbarn/chess-tactics-go/internal/chess"
)

// zobristKeys holds one key per piece per square. White pieces use the
// first six rows, black pieces the next six.
var zobristKeys [12][chess.NumSquares]uint64

func init() {
	// splitmix64 with a fixed seed so hashes are stable across runs.
	state := uint64(0x9e3779b97f4a7c15)
	for p := range zobristKeys {
		for sq := range zobristKeys[p] {
			state += 0x9e3779b97f4a7c15
			z := state
			z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
			z = (z ^ (z >> 27)) * 0x94d049bb133111eb
			zobristKeys[p][sq] = z ^ (z >> 31)
		}
	}
}

// GenerateZobristHash returns the Zobrist hash of the piece placement.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for _, pl := range board.Pieces() {
		hash ^= zobristKeys[pieceIndex(pl.Piece)][pl.Square]
	}
	return hash
}

// WeakHash is a cheap order-independent checksum of the placement, used
// to confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var hash uint32
	for _, pl := range board.Pieces() {
		hash += uint32(pieceIndex(pl.Piece)+1) * uint32(pl.Square+1) * 2654435761
	}
	return hash
}

func pieceIndex(p chess.Piece) int {
	i := int(p.Type) - 1
	if p.Colour == chess.Black {
		i += 6
	}
	return i
}

// signature identifies a position.
type signature struct {
	hash uint64
	weak uint32
}

// DuplicateDetector tracks seen positions and the key that first used them.
type DuplicateDetector struct {
	seen map[signature]string
}

// NewDuplicateDetector creates an empty detector.
func NewDuplicateDetector() *DuplicateDetector {
	return &DuplicateDetector{seen: make(map[signature]string)}
}

// CheckAndAdd records board under key. When the position was already
// seen it returns the first key and true, and the table is unchanged.
func (d *DuplicateDetector) CheckAndAdd(key string, board *chess.Board) (string, bool) {
	if board == nil {
		return "", false
	}
	sig := signature{hash: GenerateZobristHash(board), weak: WeakHash(board)}
	if first, ok := d.seen[sig]; ok {
		return first, true
	}
	d.seen[sig] = key
	return "", false
}

// UniqueCount returns the number of distinct positions.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.seen)
}

