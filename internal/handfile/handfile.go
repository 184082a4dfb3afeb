// Package handfile reads and writes named hands stored in TOML.
//
//	[hands.north]
//	description = "opening hand"
//	cards = ["AS", "KH", "AC"]
package handfile

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cardplay/internal/hand"
)

// File is the decoded contents of a hand file
type File struct {
	Hands map[string]HandSection `toml:"hands"`
}

// HandSection describes one named hand
type HandSection struct {
	Description string   `toml:"description,omitempty"`
	Cards       []string `toml:"cards"`
}

// Load decodes a hand file
func Load(path string) (*File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("hand file not found: %s", path)
	}

	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	if f.Hands == nil {
		f.Hands = make(map[string]HandSection)
	}
	return &f, nil
}

// Names returns the hand names in sorted order
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Hands))
	for name := range f.Hands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Hand builds the named hand
func (f *File) Hand(name string) (*hand.Hand, error) {
	section, ok := f.Hands[name]
	if !ok {
		return nil, fmt.Errorf("hand not found: %s", name)
	}
	h, err := hand.FromStrings(section.Cards)
	if err != nil {
		return nil, fmt.Errorf("hand %s: %w", name, err)
	}
	return h, nil
}

// Put stores h under name, replacing any existing hand of that name.
func (f *File) Put(name string, h *hand.Hand, description string) {
	if f.Hands == nil {
		f.Hands = make(map[string]HandSection)
	}
	cards := make([]string, 0, h.Len())
	for _, c := range h.Cards() {
		cards = append(cards, c.String())
	}
	f.Hands[name] = HandSection{Description: description, Cards: cards}
}

// Save writes the file, creating parent directories as needed
func (f *File) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating hand file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(f); err != nil {
		return fmt.Errorf("error encoding hands: %w", err)
	}
	return nil
}
