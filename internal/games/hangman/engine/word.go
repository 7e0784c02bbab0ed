// Package engine implements the hangman game core: word selection, guess
// evaluation, scoring and win/loss determination.
// It has no I/O and no UI dependencies; adapters own storage and input.
package engine

import "strings"

// Alphabet is the fixed set of guessable letters.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Letter is a single uppercase letter A-Z.
type Letter byte

// ParseLetter converts a rune to a Letter, accepting either case.
func ParseLetter(r rune) (Letter, error) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Letter(r), nil
	case r >= 'a' && r <= 'z':
		return Letter(r - 'a' + 'A'), nil
	}
	return 0, &InvalidLetterError{Rune: r}
}

// String returns the letter as a one-character string.
func (l Letter) String() string {
	return string(rune(l))
}

// Word is an immutable uppercase A-Z word.
type Word string

// NewWord trims and upper-cases s and checks it is a valid word.
func NewWord(s string) (Word, error) {
	w := strings.ToUpper(strings.TrimSpace(s))
	if !isAlpha(w) {
		return "", &InvalidWordError{Word: s}
	}
	return Word(w), nil
}

// Len returns the number of letters.
func (w Word) Len() int {
	return len(w)
}

// At returns the letter at position i.
func (w Word) At(i int) Letter {
	return Letter(w[i])
}

// DistinctLetters returns how many different letters the word contains.
// Bytes outside A-Z, possible only in a Word not built by NewWord, are skipped.
func (w Word) DistinctLetters() int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			continue
		}
		idx := w[i] - 'A'
		if !seen[idx] {
			seen[idx] = true
			n++
		}
	}
	return n
}

// isAlpha reports whether s is non-empty and all uppercase ASCII letters.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
