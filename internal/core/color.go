package core

// Color names the role a cell plays in the scene.
// The platform layer decides how each role looks on a terminal.
type Color uint8

const (
	ColorDefault  Color = iota
	ColorPlayer         // the runner glyph
	ColorChaser         // pursuer and its edge marker
	ColorGround         // terrain surface line
	ColorDirt           // fill below the surface
	ColorBackdrop       // parallax text art
	ColorHUD            // status line
	ColorAlert          // capture flash
)
