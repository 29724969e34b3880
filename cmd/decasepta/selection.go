package main

import (
	"strings"

	"github.com/vovakirdan/decasepta/internal/chase"
	"github.com/vovakirdan/decasepta/internal/config"
)

// loadConfig resolves the chase config or exits.
func loadConfig() config.ChaseConfig {
	cfg, err := config.LoadChase(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

// resolveCharacter validates a --character flag. Empty means no preference.
func resolveCharacter(name string) (chase.Character, bool) {
	if name == "" {
		return chase.Character{}, false
	}
	c, ok := chase.FindCharacter(name)
	if !ok {
		fail("unknown character %q (run 'decasepta characters' to list them)", name)
	}
	return c, true
}

// resolveDifficulty validates a --difficulty flag. Empty means no preference.
func resolveDifficulty(name string) (config.Difficulty, bool) {
	if strings.TrimSpace(name) == "" {
		return "", false
	}
	d, ok := config.ParseDifficulty(name)
	if !ok {
		fail("unknown difficulty %q (run 'decasepta modes' to list them)", name)
	}
	return d, true
}
