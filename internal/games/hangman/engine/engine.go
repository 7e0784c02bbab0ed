package engine

// Outcome classifies the result of a single guess.
type Outcome int

const (
	OutcomeHit Outcome = iota
	OutcomeMiss
	OutcomeWin
	OutcomeLoss
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "Hit"
	case OutcomeMiss:
		return "Miss"
	case OutcomeWin:
		return "Win"
	case OutcomeLoss:
		return "Loss"
	default:
		return "Unknown"
	}
}

// Revealing reports whether the guess uncovered at least one position.
// A winning guess always reveals; a losing one never does.
func (o Outcome) Revealing() bool {
	return o == OutcomeHit || o == OutcomeWin
}

// ProcessGuess applies one letter to the round and returns its outcome.
//
// Every unrevealed position holding the letter is revealed. If none was,
// the guess is a miss, including the case where the letter occurs in the
// word but all its positions were already shown. Loss is checked before Win.
//
// A duplicate letter or a finished round returns an error and leaves state
// and score untouched. A *PersistenceError may accompany a valid outcome
// when the total score could not be stored; the caller should report it and
// keep playing.
func ProcessGuess(state *GameState, letter Letter, score *ScoreAccumulator) (Outcome, error) {
	if state.Status.Terminal() {
		return outcomeFor(state.Status), ErrRoundOver
	}
	if state.Guessed[letter] {
		return 0, &DuplicateGuessError{Letter: letter}
	}
	if state.Guessed == nil {
		state.Guessed = make(map[Letter]bool)
	}
	state.Guessed[letter] = true

	revealed := 0
	for i := 0; i < state.Target.Len(); i++ {
		if state.Target.At(i) == letter && !state.Revealed[i] {
			state.Revealed[i] = true
			state.CorrectGuesses++
			revealed++
		}
	}

	outcome := OutcomeHit
	var persistErr error
	if revealed > 0 {
		if score != nil {
			persistErr = score.ApplyHit(revealed)
		}
	} else {
		outcome = OutcomeMiss
		state.WrongGuesses++
	}

	switch {
	case state.WrongGuesses >= state.MaxWrong:
		state.Status = StatusLost
		outcome = OutcomeLoss
	case state.AllRevealed():
		state.Status = StatusWon
		outcome = OutcomeWin
	}

	return outcome, persistErr
}

// outcomeFor maps a terminal status back to its outcome.
func outcomeFor(s RoundStatus) Outcome {
	if s == StatusLost {
		return OutcomeLoss
	}
	return OutcomeWin
}
