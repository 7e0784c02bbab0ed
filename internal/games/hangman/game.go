// Package hangman wires the guessing engine to a playable session: it owns
// the active round, the score, the player's preferences and the dictionary,
// and exposes the Step/Render/State contract used by the terminal platform.
package hangman

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shiraezri/hanging-man/internal/config"
	"github.com/shiraezri/hanging-man/internal/core"
	"github.com/shiraezri/hanging-man/internal/games/hangman/engine"
	"github.com/shiraezri/hanging-man/internal/words"
)

// ErrNoRound is returned by Guess before any round could be started.
var ErrNoRound = errors.New("hangman: no active round")

// Preferences is the persisted player profile.
type Preferences interface {
	PlayerName() (string, error)
	SetPlayerName(name string) error
	ClearPlayerName() error
	WordLength(def int) (int, error)
	SetWordLength(n int) error
	TotalScore() (int, error)
	SetTotalScore(total int) error
}

// RoundResult describes a round that ended or was abandoned.
type RoundResult struct {
	PlayerName   string
	Word         string
	WordLength   int
	Outcome      string // "won", "lost" or "abandoned"
	WrongGuesses int
	Points       int
}

// RoundRecorder stores finished rounds.
type RoundRecorder interface {
	SaveRoundResult(r RoundResult) error
}

// Options configures a new Game.
type Options struct {
	Config   config.GameConfig
	SourceID string        // dictionary source ID, defaults to words.BuiltinID
	Words    words.Source  // defaults to words.Registry
	Prefs    Preferences   // required
	Rounds   RoundRecorder // optional; nil skips round history
	Logger   *log.Logger
	Runtime  core.RuntimeConfig
}

// Game is one hangman session.
type Game struct {
	cfg    config.GameConfig
	prefs  Preferences
	rounds RoundRecorder
	logger *log.Logger
	rng    *rand.Rand

	lines      []string
	length     int
	playerName string

	state    *engine.GameState
	score    *engine.ScoreAccumulator
	recorded bool
	message  string

	screenW  int
	screenH  int
	tooSmall bool
}

// New loads the preferences and the dictionary. It does not start a round;
// call NewRound so a missing word length can be reported to the player.
func New(ctx context.Context, opts Options) (*Game, error) {
	if opts.Prefs == nil {
		return nil, errors.New("hangman: preferences store is required")
	}
	if len(opts.Config.AllowedLengths) == 0 {
		opts.Config = config.Default().Game
	}
	if opts.SourceID == "" {
		opts.SourceID = words.BuiltinID
	}
	if opts.Words == nil {
		opts.Words = words.Registry{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	lines, err := opts.Words.LoadWords(ctx, opts.SourceID)
	if err != nil {
		return nil, fmt.Errorf("hangman: cannot load dictionary %q: %w", opts.SourceID, err)
	}

	g := &Game{
		cfg:    opts.Config,
		prefs:  opts.Prefs,
		rounds: opts.Rounds,
		logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
		lines:  lines,
	}

	g.length, err = opts.Prefs.WordLength(g.cfg.DefaultWordLength)
	if err != nil {
		logger.Warn("cannot read word length, using default", "error", err)
		g.length = g.cfg.DefaultWordLength
	}
	if !g.cfg.IsAllowedLength(g.length) {
		logger.Warn("stored word length not allowed, using default",
			"stored", g.length, "default", g.cfg.DefaultWordLength)
		g.length = g.cfg.DefaultWordLength
	}

	name, err := opts.Prefs.PlayerName()
	if err != nil {
		logger.Warn("cannot read player name", "error", err)
	}
	if name != "" {
		if valid, verr := engine.ValidatePlayerName(name); verr == nil {
			g.playerName = valid
		} else {
			logger.Warn("stored player name is invalid, clearing", "name", name)
			g.clearStoredName()
		}
	}

	total, err := opts.Prefs.TotalScore()
	if err != nil {
		logger.Warn("cannot read total score", "error", err)
	}
	g.score = engine.NewScoreAccumulator(opts.Prefs, total)

	g.Resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	logger.Debug("session loaded", "words", len(lines), "length", g.length, "total", total)
	return g, nil
}

// NewRound draws a fresh word of the selected length and starts a round.
// On *engine.NoCandidatesError the previous round, if any, stays in place.
func (g *Game) NewRound() error {
	return g.startRound(g.length)
}

// startRound replaces the round with one of the given length and makes that
// length the selected one. Nothing changes when no word has that length.
func (g *Game) startRound(length int) error {
	candidates := engine.Candidates(g.lines, length)
	word, err := engine.SelectWord(candidates, length, g.rng)
	if err != nil {
		g.message = fmt.Sprintf("No words of length %d. Pick another length.", length)
		g.logger.Warn("cannot start round", "error", err)
		return err
	}

	g.abandonRound()
	g.length = length
	g.state = engine.NewGameState(word, g.cfg.MaxWrongGuesses)
	g.score.Reset()
	g.recorded = false
	g.message = ""
	g.logger.Debug("round started", "length", length, "candidates", len(candidates))
	return nil
}

// Guess submits one letter to the active round.
// A *engine.PersistenceError accompanies a valid outcome and is non-fatal.
func (g *Game) Guess(r rune) (engine.Outcome, error) {
	if g.state == nil {
		return 0, ErrNoRound
	}
	letter, err := engine.ParseLetter(r)
	if err != nil {
		g.message = "Use English letters A-Z"
		return 0, err
	}

	outcome, err := engine.ProcessGuess(g.state, letter, g.score)

	var dup *engine.DuplicateGuessError
	var perr *engine.PersistenceError
	switch {
	case errors.As(err, &dup):
		g.message = fmt.Sprintf("You already tried %s", letter)
		return outcome, err
	case errors.Is(err, engine.ErrRoundOver):
		g.message = "Round is over. Press Enter for a new word."
		return outcome, err
	case errors.As(err, &perr):
		g.logger.Warn("cannot persist total score", "error", perr.Err, "total", g.score.Total())
	}

	g.message = g.outcomeMessage(outcome, letter)
	if perr != nil {
		g.message += " (total score not saved)"
	}
	if g.state.Status.Terminal() {
		g.finishRound()
	}
	return outcome, err
}

func (g *Game) outcomeMessage(o engine.Outcome, l engine.Letter) string {
	switch o {
	case engine.OutcomeHit:
		return fmt.Sprintf("Good guess: %s", l)
	case engine.OutcomeMiss:
		return fmt.Sprintf("No %s in the word", l)
	case engine.OutcomeWin:
		return g.banner()
	case engine.OutcomeLoss:
		return g.banner()
	}
	return ""
}

// banner is the end-of-round headline, addressed to the player when named.
func (g *Game) banner() string {
	if g.state == nil || !g.state.Status.Terminal() {
		return ""
	}
	headline := "Game Over"
	if g.state.Status == engine.StatusWon {
		headline = "You Won"
	}
	if g.playerName != "" {
		return fmt.Sprintf("%s, %s!", headline, g.playerName)
	}
	return headline + "!"
}

// finishRound records a terminal round once.
func (g *Game) finishRound() {
	if g.recorded {
		return
	}
	g.recorded = true
	g.logger.Info("round finished",
		"word", string(g.state.Target),
		"status", g.state.Status.String(),
		"wrong", g.state.WrongGuesses,
		"points", g.score.Round())
	g.record(g.state.Status.String())
}

// abandonRound records an active round with at least one guess
// that is about to be replaced.
func (g *Game) abandonRound() {
	if g.state == nil || g.recorded || g.state.Status.Terminal() || len(g.state.Guessed) == 0 {
		return
	}
	g.recorded = true
	g.record("abandoned")
}

func (g *Game) record(outcome string) {
	if g.rounds == nil {
		return
	}
	err := g.rounds.SaveRoundResult(RoundResult{
		PlayerName:   g.playerName,
		Word:         string(g.state.Target),
		WordLength:   g.state.Target.Len(),
		Outcome:      outcome,
		WrongGuesses: g.state.WrongGuesses,
		Points:       g.score.Round(),
	})
	if err != nil {
		g.logger.Warn("cannot record round", "error", err)
	}
}

// Close records the active round as abandoned if it was started.
func (g *Game) Close() {
	g.abandonRound()
}

// SetWordLength plays a new word of length n and, once the round started,
// persists n as the selected length. On *engine.NoCandidatesError the
// selection and the current round are unchanged.
func (g *Game) SetWordLength(n int) error {
	if !g.cfg.IsAllowedLength(n) {
		return fmt.Errorf("hangman: word length %d is not one of %v", n, g.cfg.AllowedLengths)
	}
	if err := g.startRound(n); err != nil {
		return err
	}
	if err := g.prefs.SetWordLength(n); err != nil {
		g.logger.Warn("cannot persist word length", "error", err, "length", n)
	}
	return nil
}

// CycleWordLength moves through the allowed lengths by delta, wrapping
// around and passing over lengths without dictionary words.
// It returns the last error when no other length can be played.
func (g *Game) CycleWordLength(delta int) error {
	allowed := g.cfg.AllowedLengths
	idx := 0
	for i, n := range allowed {
		if n == g.length {
			idx = i
			break
		}
	}

	var err error
	for range len(allowed) - 1 {
		idx = ((idx+delta)%len(allowed) + len(allowed)) % len(allowed)
		if err = g.SetWordLength(allowed[idx]); err == nil {
			return nil
		}
	}
	return err
}

// SetPlayerName validates and stores the nickname. An invalid name clears
// any stored one and is returned as *engine.InvalidNameError.
func (g *Game) SetPlayerName(name string) error {
	valid, err := engine.ValidatePlayerName(name)
	if err != nil {
		g.playerName = ""
		g.clearStoredName()
		g.message = "Name must start with a letter and use only A-Z and 0-9"
		return err
	}
	g.playerName = valid
	if err := g.prefs.SetPlayerName(valid); err != nil {
		g.logger.Warn("cannot persist player name", "error", err)
		return &engine.PersistenceError{Key: engine.PlayerNameKey, Err: err}
	}
	g.message = fmt.Sprintf("Hello, %s!", valid)
	return nil
}

func (g *Game) clearStoredName() {
	if err := g.prefs.ClearPlayerName(); err != nil {
		g.logger.Warn("cannot clear player name", "error", err)
	}
}

// Resize updates the screen dimensions used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minWidth || h < minHeight
}

// Step applies one batch of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionRestart):
		_ = g.NewRound()
	case in.Has(core.ActionConfirm) && (g.state == nil || g.state.Status.Terminal()):
		_ = g.NewRound()
	case in.Has(core.ActionLeft):
		_ = g.CycleWordLength(-1)
	case in.Has(core.ActionRight):
		_ = g.CycleWordLength(1)
	}

	for _, r := range in.Runes {
		if g.state == nil || g.state.Status.Terminal() {
			break
		}
		_, _ = g.Guess(r)
	}

	return core.StepResult{State: g.State(), Message: g.message}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:      g.score.Round(),
		TotalScore: g.score.Total(),
	}
	if g.state != nil {
		st.GameOver = g.state.Status.Terminal()
		st.Won = g.state.Status == engine.StatusWon
	}
	return st
}

// Round returns the active round, nil before the first one started.
func (g *Game) Round() *engine.GameState {
	return g.state
}

// PlayerName returns the validated nickname, "" when unset.
func (g *Game) PlayerName() string {
	return g.playerName
}

// WordLength returns the selected word length.
func (g *Game) WordLength() int {
	return g.length
}

// Message returns the latest status line.
func (g *Game) Message() string {
	return g.message
}
