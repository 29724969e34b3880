package session

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/decasepta/internal/chase"
	"github.com/vovakirdan/decasepta/internal/config"
)

// Summary is the final report of a session.
type Summary struct {
	Started        bool // false if the session ended in the menu
	Character      chase.Character
	Difficulty     config.Difficulty
	Score          int
	ElapsedSeconds int
	ElapsedTicks   int
	Catches        int
}

// String renders the console report printed on exit.
func (s Summary) String() string {
	if !s.Started {
		return ""
	}
	var b strings.Builder
	b.WriteString("\nGame Over.\n")
	fmt.Fprintf(&b, "Final Score: %d\n", s.Score)
	fmt.Fprintf(&b, "Time Played: %d seconds\n", s.ElapsedSeconds)
	return b.String()
}
