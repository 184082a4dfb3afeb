package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestValidate_Valid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hands.toml", `
[hands.north]
description = "opening"
cards = ["AS", "KH"]
`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)

	assert.True(t, results.Valid())
	assert.Empty(t, results.Warnings)
}

func TestValidate_Problems(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hands.toml", `
[hands.east]
description = "two packs"
cards = ["AS", "AS", "AS"]

[hands.north]
cards = ["AS", "ZZ"]

[hands.south]
description = "nothing"
cards = []
`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)

	assert.False(t, results.Valid())
	require.Len(t, results.Errors, 2)
	assert.Contains(t, results.Errors[0], "hands.north.cards[1]")
	assert.Equal(t, "hands.south.cards is required", results.Errors[1])

	assert.Equal(t, []string{
		"hands.east holds AS more than once",
		"hands.north.description is empty",
	}, results.Warnings)
}

func TestValidate_NoHands(t *testing.T) {
	path := writeFile(t, t.TempDir(), "hands.toml", `title = "empty"`)

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.False(t, results.Valid())
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "none.toml")).Validate()
	assert.Error(t, err)
}

func TestValidateDeck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "deck.toml", `
[deck]
id = "euchre"
packs = 0

[deck.excluded_cards]
cards = ["2S", "QQ"]
`)

	results, err := NewValidator(dir).ValidateDeck()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"deck.name is required in deck.toml",
	}, results.Errors[:1])
	require.Len(t, results.Errors, 2)
	assert.Contains(t, results.Errors[1], "deck.excluded_cards.cards[1]")
	assert.Equal(t, []string{
		"deck.packs not set, assuming 1",
		"deck.excluded_cards.reason is empty",
	}, results.Warnings)
}

func TestValidateDeck_Missing(t *testing.T) {
	_, err := NewValidator(t.TempDir()).ValidateDeck()
	assert.ErrorContains(t, err, "deck.toml not found")
}
