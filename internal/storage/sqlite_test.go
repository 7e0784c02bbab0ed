package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shiraezri/hanging-man/internal/games/hangman"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsValues(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SetTotalScore(42); err != nil {
		t.Fatalf("SetTotalScore() failed: %v", err)
	}
	store.Close()

	// Second open runs migrations again and must be a no-op
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	total, err := store.TotalScore()
	if err != nil {
		t.Fatalf("TotalScore() failed: %v", err)
	}
	if total != 42 {
		t.Errorf("Expected total 42 after reopen, got %d", total)
	}
}

func TestStoreDefaults(t *testing.T) {
	store := openTestStore(t)

	name, err := store.PlayerName()
	if err != nil {
		t.Fatalf("PlayerName() failed: %v", err)
	}
	if name != "" {
		t.Errorf("Expected empty player name, got %q", name)
	}

	length, err := store.WordLength(7)
	if err != nil {
		t.Fatalf("WordLength() failed: %v", err)
	}
	if length != 7 {
		t.Errorf("Expected default word length 7, got %d", length)
	}

	total, err := store.TotalScore()
	if err != nil {
		t.Fatalf("TotalScore() failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected total 0, got %d", total)
	}
}

func TestStoreSetOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetWordLength(5); err != nil {
		t.Fatalf("SetWordLength() failed: %v", err)
	}
	if err := store.SetWordLength(9); err != nil {
		t.Fatalf("SetWordLength() failed: %v", err)
	}

	length, _ := store.WordLength(7)
	if length != 9 {
		t.Errorf("Expected word length 9, got %d", length)
	}
}

func TestStorePlayerNameClear(t *testing.T) {
	store := openTestStore(t)

	if err := store.SetPlayerName("Shira"); err != nil {
		t.Fatalf("SetPlayerName() failed: %v", err)
	}
	name, _ := store.PlayerName()
	if name != "Shira" {
		t.Errorf("Expected Shira, got %q", name)
	}

	if err := store.ClearPlayerName(); err != nil {
		t.Fatalf("ClearPlayerName() failed: %v", err)
	}
	name, _ = store.PlayerName()
	if name != "" {
		t.Errorf("Expected empty name after clear, got %q", name)
	}

	// Clearing twice is fine
	if err := store.ClearPlayerName(); err != nil {
		t.Errorf("second ClearPlayerName() failed: %v", err)
	}
}

func TestStoreGetIntMalformed(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(KeyWordLength, "seven"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	length, err := store.WordLength(7)
	if err != nil {
		t.Fatalf("WordLength() failed: %v", err)
	}
	if length != 7 {
		t.Errorf("Malformed value should fall back to default, got %d", length)
	}
}

func TestStoreSaveAndRetrieveRounds(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundRecord{
		{PlayerName: "Shira", Word: "APPLE", WordLength: 5, Outcome: "won", WrongGuesses: 2, Points: 5},
		{PlayerName: "Shira", Word: "LEMON", WordLength: 5, Outcome: "lost", WrongGuesses: 6, Points: 2},
		{Word: "CASTLE", WordLength: 6, Outcome: "won", Points: 6},
	}
	for _, r := range rounds {
		id, err := store.SaveRound(r)
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
		if id == "" {
			t.Error("SaveRound() should assign an ID")
		}
	}

	recent, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(recent))
	}

	// Newest first
	if recent[0].Word != "CASTLE" {
		t.Errorf("Expected newest round CASTLE, got %s", recent[0].Word)
	}

	limited, _ := store.RecentRounds(2)
	if len(limited) != 2 {
		t.Errorf("Expected 2 rounds with limit, got %d", len(limited))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 0 || stats.WinRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRound(RoundRecord{Word: "APPLE", WordLength: 5, Outcome: "won", Points: 5})
	store.SaveRound(RoundRecord{Word: "LEMON", WordLength: 5, Outcome: "lost", Points: 1})
	store.SaveRound(RoundRecord{Word: "MELON", WordLength: 5, Outcome: "won", Points: 5})
	store.SaveRound(RoundRecord{Word: "OLIVE", WordLength: 5, Outcome: "abandoned", Points: 0})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Played != 4 || stats.Won != 2 || stats.Lost != 1 || stats.Points != 11 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("Expected win rate 0.5, got %f", stats.WinRate())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{Word: "APPLE", WordLength: 5, Outcome: "won"})
	store.SetTotalScore(5)

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	recent, _ := store.RecentRounds(10)
	if len(recent) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(recent))
	}

	// Preferences are not affected
	total, _ := store.TotalScore()
	if total != 5 {
		t.Errorf("ClearRounds should not touch total score, got %d", total)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRoundResult(t *testing.T) {
	store := openTestStore(t)

	err := store.SaveRoundResult(hangman.RoundResult{
		PlayerName: "Shira", Word: "APPLE", WordLength: 5, Outcome: "won", Points: 5,
	})
	if err != nil {
		t.Fatalf("SaveRoundResult() failed: %v", err)
	}

	recent, _ := store.RecentRounds(1)
	if len(recent) != 1 {
		t.Fatalf("Expected 1 round, got %d", len(recent))
	}
	if recent[0].PlayerName != "Shira" || recent[0].Outcome != "won" || recent[0].ID == "" {
		t.Errorf("Unexpected record: %+v", recent[0])
	}
}
