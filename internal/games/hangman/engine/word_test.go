package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Word
		wantErr bool
	}{
		{name: "lowercase", input: "apple", want: "APPLE"},
		{name: "surrounding whitespace", input: "\t grape \n", want: "GRAPE"},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
		{name: "digit", input: "abc1", wantErr: true},
		{name: "inner space", input: "ice cream", wantErr: true},
		{name: "accented", input: "naïve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewWord(tt.input)
			if tt.wantErr {
				var iw *InvalidWordError
				assert.ErrorAs(t, err, &iw)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLetter(t *testing.T) {
	l, err := ParseLetter('q')
	require.NoError(t, err)
	assert.Equal(t, Letter('Q'), l)
	assert.Equal(t, "Q", l.String())

	l, err = ParseLetter('Z')
	require.NoError(t, err)
	assert.Equal(t, Letter('Z'), l)

	for _, r := range []rune{'1', ' ', 'é', '['} {
		_, err := ParseLetter(r)
		var il *InvalidLetterError
		assert.ErrorAs(t, err, &il, "rune %q", r)
	}
}

func TestWordDistinctLetters(t *testing.T) {
	assert.Equal(t, 4, Word("APPLE").DistinctLetters())
	assert.Equal(t, 3, Word("BANANA").DistinctLetters())
	assert.Equal(t, 1, Word("AAAA").DistinctLetters())

	// Unvalidated words count only their A-Z bytes
	assert.Equal(t, 4, Word("apple PIE").DistinctLetters())
	assert.Equal(t, 0, Word("").DistinctLetters())
}

func TestGameStateGuessedLettersSorted(t *testing.T) {
	state := NewGameState("APPLE", 0)
	guessAll(t, state, nil, "PZA")
	assert.Equal(t, []Letter{'A', 'P', 'Z'}, state.GuessedLetters())
}

func TestRoundStatus(t *testing.T) {
	assert.False(t, StatusActive.Terminal())
	assert.True(t, StatusWon.Terminal())
	assert.True(t, StatusLost.Terminal())
	assert.Equal(t, "won", StatusWon.String())
}
