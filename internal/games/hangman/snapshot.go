package hangman

// Snapshot captures the session state for deterministic tests.
type Snapshot struct {
	PlayerName     string
	WordLength     int
	Status         string // "none" before the first round, else the round status
	Masked         string // revealed letters, '_' for hidden ones
	Target         string // only set once the round is over
	WrongGuesses   int
	MaxWrong       int
	CorrectGuesses int
	Guessed        string // tried letters in alphabetical order
	Stage          int
	RoundScore     int
	TotalScore     int
	Message        string
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		PlayerName: g.playerName,
		WordLength: g.length,
		Status:     "none",
		RoundScore: g.score.Round(),
		TotalScore: g.score.Total(),
		Message:    g.message,
	}
	if g.state == nil {
		return snap
	}

	st := g.state
	snap.Status = st.Status.String()
	snap.Masked = st.Reveal('_')
	if st.Status.Terminal() {
		snap.Target = string(st.Target)
	}
	snap.WrongGuesses = st.WrongGuesses
	snap.MaxWrong = st.MaxWrong
	snap.CorrectGuesses = st.CorrectGuesses
	snap.Stage = GallowsStage(st.WrongGuesses, st.MaxWrong)

	guessed := make([]byte, 0, len(st.Guessed))
	for _, l := range st.GuessedLetters() {
		guessed = append(guessed, byte(l))
	}
	snap.Guessed = string(guessed)
	return snap
}
