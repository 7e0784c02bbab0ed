// Package config provides YAML-based game configuration loading with
// environment overrides for the hangman game.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shiraezri/hanging-man/internal/words"
)

// Config contains all configuration for a hangman session.
type Config struct {
	Game       GameConfig       `yaml:"game"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// GameConfig defines the rules of a round.
type GameConfig struct {
	AllowedLengths    []int `yaml:"allowed_lengths"     env:"HANGMAN_ALLOWED_LENGTHS" envSeparator:","`
	DefaultWordLength int   `yaml:"default_word_length" env:"HANGMAN_WORD_LENGTH"`
	MaxWrongGuesses   int   `yaml:"max_wrong_guesses"   env:"HANGMAN_MAX_WRONG_GUESSES"`
}

// DictionaryConfig selects the word source.
// Source is a source ID such as "builtin" or "file:/usr/share/dict/words".
type DictionaryConfig struct {
	Source string `yaml:"source" env:"HANGMAN_DICTIONARY"`
}

// StorageConfig locates the preferences database.
type StorageConfig struct {
	Path string `yaml:"path" env:"HANGMAN_DB"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level" env:"HANGMAN_LOG_LEVEL"`
	File  string `yaml:"file"  env:"HANGMAN_LOG_FILE"`
}

// IsAllowedLength reports whether n is one of the configured word lengths.
func (c GameConfig) IsAllowedLength(n int) bool {
	return slices.Contains(c.AllowedLengths, n)
}

// Validate checks the config is playable.
func (c Config) Validate() error {
	if len(c.Game.AllowedLengths) == 0 {
		return fmt.Errorf("config: allowed_lengths is empty")
	}
	for _, n := range c.Game.AllowedLengths {
		if n <= 0 {
			return fmt.Errorf("config: invalid word length %d", n)
		}
	}
	if !c.Game.IsAllowedLength(c.Game.DefaultWordLength) {
		return fmt.Errorf("config: default_word_length %d is not in allowed_lengths %v",
			c.Game.DefaultWordLength, c.Game.AllowedLengths)
	}
	if c.Game.MaxWrongGuesses <= 0 {
		return fmt.Errorf("config: max_wrong_guesses must be positive, got %d", c.Game.MaxWrongGuesses)
	}
	scheme, _, _ := strings.Cut(c.Dictionary.Source, ":")
	if scheme != "" && !words.Exists(scheme) {
		return fmt.Errorf("config: unknown dictionary source %q (known: %s)",
			scheme, strings.Join(words.Schemes(), ", "))
	}
	return nil
}
