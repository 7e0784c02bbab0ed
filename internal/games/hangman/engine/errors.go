package engine

import (
	"errors"
	"fmt"
)

// ErrRoundOver is returned when a guess arrives after the round reached
// Won or Lost. Only a new round can accept guesses again.
var ErrRoundOver = errors.New("engine: round is over")

// NoCandidatesError reports that the dictionary holds no word of the
// requested length. Starting a round must fail instead of picking another length.
type NoCandidatesError struct {
	Length int
}

func (e *NoCandidatesError) Error() string {
	return fmt.Sprintf("engine: no dictionary words of length %d", e.Length)
}

// DuplicateGuessError reports a letter that was already processed this round.
// The state is left untouched.
type DuplicateGuessError struct {
	Letter Letter
}

func (e *DuplicateGuessError) Error() string {
	return fmt.Sprintf("engine: letter %s already guessed", e.Letter)
}

// PersistenceError wraps a failed write to the preferences store.
// It is non-fatal: the in-memory value stays authoritative for the session.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("engine: cannot persist %s: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// InvalidWordError reports a dictionary entry or target that is not A-Z only.
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("engine: invalid word %q", e.Word)
}

// InvalidLetterError reports a guess outside A-Z.
type InvalidLetterError struct {
	Rune rune
}

func (e *InvalidLetterError) Error() string {
	return fmt.Sprintf("engine: invalid letter %q", e.Rune)
}

// InvalidNameError reports a player name that fails validation.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("engine: invalid player name %q: use English letters (A-Z) and digits, starting with a letter", e.Name)
}
