package words

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiraezri/hanging-man/internal/games/hangman/engine"
)

func TestEmbeddedCoversDefaultLengths(t *testing.T) {
	lines, err := Embedded{}.LoadWords(context.Background(), BuiltinID)
	require.NoError(t, err)

	counts := engine.CountByLength(lines)
	for length := 4; length <= 9; length++ {
		assert.Positive(t, counts[length], "no builtin words of length %d", length)
	}
	assert.Zero(t, counts[10])
}

func TestEmbeddedRejectsUnknownID(t *testing.T) {
	_, err := Embedded{}.LoadWords(context.Background(), "klingon")
	assert.Error(t, err)
}

func TestFileSourceReadsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte(" apple\nGRAPE \r\n\nkiwi\n"), 0o600))

	lines, err := File{}.LoadWords(context.Background(), path)
	require.NoError(t, err)
	assert.Len(t, lines, 4)
	assert.Equal(t, []engine.Word{"APPLE", "GRAPE"}, engine.Candidates(lines, 5))
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := File{}.LoadWords(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileSourceEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	lines, err := File{}.LoadWords(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLoadWordsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Embedded{}.LoadWords(ctx, BuiltinID)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegistryDispatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("zebra\n"), 0o600))

	reg := Registry{}

	lines, err := reg.LoadWords(context.Background(), "file:"+path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra"}, lines)

	lines, err = reg.LoadWords(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, lines)

	_, err = reg.LoadWords(context.Background(), "ftp:somewhere")
	assert.ErrorContains(t, err, "unknown source")
}

func TestSchemes(t *testing.T) {
	assert.Equal(t, []string{"builtin", "file"}, Schemes())
	assert.True(t, Exists("file"))
	assert.False(t, Exists("http"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register(BuiltinID, func() Source { return Embedded{} })
	})
}
