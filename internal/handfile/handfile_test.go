package handfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardplay/internal/card"
	"github.com/arcanaland/cardplay/internal/hand"
)

const sample = `
[hands.north]
description = "opening hand"
cards = ["AS", "KH", "AC"]

[hands.south]
cards = ["2H"]

[hands.broken]
cards = ["AS", "1X"]
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hands.toml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))
	return path
}

func TestLoad(t *testing.T) {
	f, err := Load(writeSample(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"broken", "north", "south"}, f.Names())
	assert.Equal(t, "opening hand", f.Hands["north"].Description)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorContains(t, err, "hand file not found")
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[hands.north\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFile_Hand(t *testing.T) {
	f, err := Load(writeSample(t))
	require.NoError(t, err)

	h, err := f.Hand("north")
	require.NoError(t, err)
	assert.Equal(t, "AS,KH,AC", h.String())

	_, err = f.Hand("west")
	assert.ErrorContains(t, err, "hand not found")

	_, err = f.Hand("broken")
	assert.ErrorIs(t, err, card.ErrInvalidCard)
}

func TestFile_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hands.toml")

	f := &File{}
	f.Put("east", hand.FromCards([]card.Card{card.MustParse("QD"), card.MustParse("TS")}), "")
	f.Put("empty", hand.New(), "nothing yet")
	require.NoError(t, f.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	h, err := loaded.Hand("east")
	require.NoError(t, err)
	assert.Equal(t, "QD,TS", h.String())

	h, err = loaded.Hand("empty")
	require.NoError(t, err)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, "nothing yet", loaded.Hands["empty"].Description)
}
