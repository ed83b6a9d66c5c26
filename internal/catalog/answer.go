package catalog

import "strings"

var moveNoise = strings.NewReplacer("+", "", "#", "", "!", "", "?", "", "=", "", "x", "")

// normalizeMove lowercases a move and strips annotation and capture marks,
// so "Qxf7#", "qf7" and "Qf7!" all compare equal.
func normalizeMove(move string) string {
	return moveNoise.Replace(strings.ToLower(strings.TrimSpace(move)))
}

// CheckAnswer reports whether a typed answer names the exercise solution.
// Both sides are normalised, then accepted when equal or when either
// contains the other. The coordinate forms "f3f7" and "f3-f7" are accepted
// too. An answer that normalises to nothing is never correct.
func CheckAnswer(e Exercise, answer string) bool {
	got := normalizeMove(answer)
	if got == "" {
		return false
	}

	from, to := e.Solution.From.String(), e.Solution.To.String()
	candidates := []string{e.Solution.Move}
	if e.Solution.From.Valid() && e.Solution.To.Valid() {
		candidates = append(candidates, from+to, from+"-"+to)
	}

	for _, c := range candidates {
		want := normalizeMove(c)
		if want == "" {
			continue
		}
		if got == want || strings.Contains(got, want) || strings.Contains(want, got) {
			return true
		}
	}
	return false
}
