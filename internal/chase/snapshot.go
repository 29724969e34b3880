package chase

// Snapshot is the read-only view of one frame handed to the renderer.
type Snapshot struct {
	PlayerX        float64
	PlayerY        float64
	ChaserX        float64
	Ground         float64 // lowest allowed player height at PlayerX
	Score          int
	ElapsedTicks   int
	ElapsedSeconds int
	Catches        int
	Caught         bool // a capture happened this frame
	Character      Character
}

// Gap returns how far the chaser trails the player.
func (s Snapshot) Gap() float64 {
	return s.PlayerX - s.ChaserX
}
