package match

// MinSimilarity is the score a candidate needs to be suggested by Closest.
const MinSimilarity = 0.5

// Closest returns the candidate most similar to name after normalizing both. The first
// candidate wins a tie. It reports false when no candidate reaches MinSimilarity.
func Closest(name string, candidates []string) (string, bool) {
	norm := Normalize(name)

	best, bestScore := "", -1.0

	for _, c := range candidates {
		score := Similarity(norm, Normalize(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}
