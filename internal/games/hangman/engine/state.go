package engine

import "strings"

// DefaultMaxWrongGuesses is the wrong-guess budget of a round.
const DefaultMaxWrongGuesses = 6

// RoundStatus is the round state machine position.
type RoundStatus int

const (
	StatusActive RoundStatus = iota
	StatusWon
	StatusLost
)

// String returns a human-readable status name.
func (s RoundStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no more guesses are accepted.
func (s RoundStatus) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// GameState is the mutable record of one round.
// It is mutated only by ProcessGuess; a new round gets a new GameState.
type GameState struct {
	Target         Word
	Revealed       []bool
	WrongGuesses   int
	CorrectGuesses int
	Guessed        map[Letter]bool
	MaxWrong       int
	Status         RoundStatus
}

// NewGameState starts a round for target with every position blank.
// maxWrong <= 0 selects DefaultMaxWrongGuesses.
func NewGameState(target Word, maxWrong int) *GameState {
	if maxWrong <= 0 {
		maxWrong = DefaultMaxWrongGuesses
	}
	return &GameState{
		Target:   target,
		Revealed: make([]bool, target.Len()),
		Guessed:  make(map[Letter]bool),
		MaxWrong: maxWrong,
		Status:   StatusActive,
	}
}

// AllRevealed reports whether every position is shown.
func (s *GameState) AllRevealed() bool {
	for _, r := range s.Revealed {
		if !r {
			return false
		}
	}
	return true
}

// Reveal concatenates the revealed positions, using blank for hidden ones.
// Once the round is won it equals the target.
func (s *GameState) Reveal(blank byte) string {
	var b strings.Builder
	b.Grow(len(s.Target))
	for i, shown := range s.Revealed {
		if shown {
			b.WriteByte(s.Target[i])
		} else {
			b.WriteByte(blank)
		}
	}
	return b.String()
}

// HasGuessed reports whether the letter was already processed.
func (s *GameState) HasGuessed(l Letter) bool {
	return s.Guessed[l]
}

// GuessedLetters returns the processed letters in alphabetical order.
func (s *GameState) GuessedLetters() []Letter {
	out := make([]Letter, 0, len(s.Guessed))
	for i := 0; i < len(Alphabet); i++ {
		l := Letter(Alphabet[i])
		if s.Guessed[l] {
			out = append(out, l)
		}
	}
	return out
}

// RemainingWrong returns how many misses the player can still afford.
func (s *GameState) RemainingWrong() int {
	if s.WrongGuesses >= s.MaxWrong {
		return 0
	}
	return s.MaxWrong - s.WrongGuesses
}
