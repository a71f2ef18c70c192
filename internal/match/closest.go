package match

// MinSimilarity is the score below which Closest offers nothing.
const MinSimilarity = 0.5

// Closest returns the known name most similar to word. Ties go to the
// earlier name. ok is false when nothing scores at least MinSimilarity or
// word is itself known.
func Closest(word string, known []string) (string, bool) {
	best, bestScore := "", 0.0

	for _, k := range known {
		if k == word {
			return "", false
		}

		if score := Similarity(word, k); score > bestScore {
			best, bestScore = k, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}

// Hint formats the "did you mean" suffix for word, or returns "" when no
// known name is close enough.
func Hint(word string, known []string) string {
	if c, ok := Closest(word, known); ok {
		return " (did you mean " + c + "?)"
	}

	return ""
}
