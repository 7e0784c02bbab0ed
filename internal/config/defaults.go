package config

import (
	_ "embed"
)

//go:embed defaults/hangman.yaml
var defaultHangmanYAML []byte

// Default returns the built-in hangman configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			AllowedLengths:    []int{4, 5, 6, 7, 8, 9},
			DefaultWordLength: 7,
			MaxWrongGuesses:   6,
		},
		Dictionary: DictionaryConfig{
			Source: "builtin",
		},
		Storage: StorageConfig{
			Path: "~/.hangman/hangman.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.hangman/hangman.log",
		},
	}
}
