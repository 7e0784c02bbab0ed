package engine

import "sync"

// Preference keys shared by the engine and the stores that persist it.
const (
	PlayerNameKey = "PlayerName"
	WordLengthKey = "WordLength"
	TotalScoreKey = "TotalScore"
)

// ScoreStore persists the lifetime total score.
type ScoreStore interface {
	SetTotalScore(total int) error
}

// ScoreAccumulator tracks the round score and the lifetime total.
// The total never decreases; every increase is flushed to the store.
// It is safe for concurrent use. Store writes are serialized in the order
// the totals were computed, so the stored total never goes down.
type ScoreAccumulator struct {
	writeMu sync.Mutex // held across compute and persist
	mu      sync.Mutex // guards round and total for readers
	store   ScoreStore
	round   int
	total   int
}

// NewScoreAccumulator starts from the total previously read from the store.
// A nil store keeps the score in memory only.
func NewScoreAccumulator(store ScoreStore, initialTotal int) *ScoreAccumulator {
	if initialTotal < 0 {
		initialTotal = 0
	}
	return &ScoreAccumulator{store: store, total: initialTotal}
}

// ApplyHit adds points to both the round and the total, then persists the total.
// Non-positive points are ignored. A store failure is returned as a
// *PersistenceError but the in-memory total keeps the new value.
func (a *ScoreAccumulator) ApplyHit(points int) error {
	if points <= 0 {
		return nil
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	a.round += points
	a.total += points
	total := a.total
	a.mu.Unlock()

	if a.store == nil {
		return nil
	}
	if err := a.store.SetTotalScore(total); err != nil {
		return &PersistenceError{Key: TotalScoreKey, Err: err}
	}
	return nil
}

// Reset zeroes the round score for a new round. The total is untouched.
func (a *ScoreAccumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.round = 0
}

// Round returns the score of the active round.
func (a *ScoreAccumulator) Round() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.round
}

// Total returns the lifetime score.
func (a *ScoreAccumulator) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}
