package chase

import "strings"

// Character is the player's identity: a glyph drawn on screen and a name.
type Character struct {
	Glyph string
	Name  string
}

var roster = []Character{
	{"💀", "Skull"}, {"🧑", "Human"}, {"🌀", "Vortex"}, {"🔥", "Fire"}, {"🌪️", "Tornado"}, {"👽", "Alien"},
	{"🤖", "Robot"}, {"👻", "Ghost"}, {"🐉", "Dragon"}, {"🦊", "Fox"}, {"🐢", "Turtle"}, {"🐸", "Frog"},
	{"🐺", "Wolf"}, {"🦁", "Lion"}, {"🐧", "Penguin"}, {"🦋", "Butterfly"}, {"🐍", "Snake"}, {"🦑", "Squid"},
	{"🧙", "Wizard"}, {"🧛", "Vampire"}, {"🧟", "Zombie"}, {"🧞", "Genie"}, {"🧜", "Mermaid"}, {"🎃", "Pumpkin"},
	{"👾", "Pixel"}, {"☠️", "Death"}, {"🧠", "Brain"},
}

// Roster returns the selectable characters in menu order.
func Roster() []Character {
	out := make([]Character, len(roster))
	copy(out, roster)
	return out
}

// DefaultCharacter is the identity used when none was selected.
func DefaultCharacter() Character {
	c, _ := FindCharacter("Ghost")
	return c
}

// FindCharacter looks a character up by name, case-insensitively.
func FindCharacter(name string) (Character, bool) {
	i := CharacterIndex(name)
	if i < 0 {
		return Character{}, false
	}
	return roster[i], true
}

// CharacterIndex returns the roster position of name, or -1.
func CharacterIndex(name string) int {
	for i, c := range roster {
		if strings.EqualFold(c.Name, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// String returns "glyph name".
func (c Character) String() string {
	return c.Glyph + " " + c.Name
}
