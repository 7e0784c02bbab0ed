package engine

// RandomSource picks an index in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// Candidates builds the candidate pool for the given length from raw
// dictionary lines. Lines are trimmed and upper-cased; blank lines and
// lines with characters outside A-Z are skipped.
func Candidates(lines []string, length int) []Word {
	var out []Word
	for _, line := range lines {
		w, err := NewWord(line)
		if err != nil {
			continue
		}
		if w.Len() == length {
			out = append(out, w)
		}
	}
	return out
}

// CountByLength tallies valid dictionary lines per word length.
func CountByLength(lines []string) map[int]int {
	counts := make(map[int]int)
	for _, line := range lines {
		w, err := NewWord(line)
		if err != nil {
			continue
		}
		counts[w.Len()]++
	}
	return counts
}

// SelectWord picks one candidate uniformly at random.
// length is only used to describe the failure when the pool is empty.
func SelectWord(candidates []Word, length int, rng RandomSource) (Word, error) {
	if len(candidates) == 0 {
		return "", &NoCandidatesError{Length: length}
	}
	return candidates[rng.Intn(len(candidates))], nil
}
