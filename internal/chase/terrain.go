package chase

// Terrain is a linear ground profile: Slope*(x-StartX) + BaseHeight.
// A zero slope gives flat ground; no case needs special handling.
type Terrain struct {
	Slope      float64
	StartX     float64
	BaseHeight float64
}

// Height returns the ground height at horizontal position x.
func (t Terrain) Height(x float64) float64 {
	return t.Slope*(x-t.StartX) + t.BaseHeight
}

// Rise returns the height at x relative to the height at StartX.
func (t Terrain) Rise(x float64) float64 {
	return t.Height(x) - t.BaseHeight
}
