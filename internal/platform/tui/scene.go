package tui

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/decasepta/internal/chase"
	"github.com/vovakirdan/decasepta/internal/config"
	"github.com/vovakirdan/decasepta/internal/core"
)

const flashText = "CAUGHT! Score halved"

// SceneConfig controls how world coordinates map onto the screen.
type SceneConfig struct {
	ColScale    float64  // cells per world unit along x
	RowScale    float64  // rows per world unit along y
	ChaserGlyph string   // drawn for the pursuer
	Background  []string // optional text art, tiled behind the scene
}

// SceneFromConfig builds a scene configuration from the view and chaser sections.
func SceneFromConfig(cfg config.ChaseConfig, background []string) SceneConfig {
	return SceneConfig{
		ColScale:    cfg.View.ColScale,
		RowScale:    cfg.View.RowScale,
		ChaserGlyph: cfg.Chaser.Glyph,
		Background:  background,
	}
}

// DrawScene renders one frame of the chase into dst.
// Row 0 is the HUD. The player is pinned to the horizontal center and the
// world scrolls under it.
func DrawScene(dst *core.Screen, snap chase.Snapshot, params chase.Params, sc SceneConfig, flash bool) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w == 0 || h == 0 {
		return
	}
	if sc.ColScale <= 0 {
		sc.ColScale = 1
	}
	if sc.RowScale <= 0 {
		sc.RowScale = 1
	}

	cx := w / 2
	row := func(y float64) int {
		return core.Clamp(h-2-int(math.Round(y*sc.RowScale)), 1, max(1, h-2))
	}

	drawBackground(dst, sc.Background, int(snap.PlayerX*sc.ColScale/2))

	// Terrain: a ground line per column with dirt below it.
	for x := 0; x < w; x++ {
		wx := snap.PlayerX + float64(x-cx)/sc.ColScale
		gy := row(params.GroundAt(wx)) + 1
		dst.SetColor(x, gy, '═', core.ColorGround)
		for y := gy + 1; y < h; y++ {
			dst.SetColor(x, y, '░', core.ColorDirt)
		}
	}

	py := row(snap.PlayerY)
	gap := snap.Gap()
	chaserCol := cx - int(math.Round(gap*sc.ColScale))
	if chaserCol >= 0 {
		dst.DrawText(chaserCol, py, sc.ChaserGlyph, core.ColorChaser)
	} else {
		marker := fmt.Sprintf("◀%s %.0fm", sc.ChaserGlyph, gap)
		dst.DrawText(0, 1, marker, core.ColorChaser)
	}
	dst.DrawText(cx, py, snap.Character.Glyph, core.ColorPlayer)

	dst.DrawText(0, 0, HUDLine(snap), core.ColorHUD)

	if flash {
		drawFlash(dst)
	}
}

// HUDLine formats the status line shown above the scene.
func HUDLine(snap chase.Snapshot) string {
	return fmt.Sprintf(" %s %s | Score: %d | Time: %ds | Chaser: %.0fm ",
		snap.Character.Glyph, snap.Character.Name, snap.Score, snap.ElapsedSeconds, snap.Gap())
}

func drawBackground(dst *core.Screen, art []string, offset int) {
	for i, line := range art {
		y := i + 1
		if y >= dst.Height() {
			return
		}
		runes := []rune(line)
		if len(runes) == 0 {
			continue
		}
		for x := 0; x < dst.Width(); x++ {
			r := runes[(((x+offset)%len(runes))+len(runes))%len(runes)]
			if r == ' ' || runewidth.RuneWidth(r) != 1 {
				continue
			}
			dst.SetColor(x, y, r, core.ColorBackdrop)
		}
	}
}

func drawFlash(dst *core.Screen) {
	bw := runewidth.StringWidth(flashText) + 4
	bh := 3
	if bw > dst.Width() || bh > dst.Height() {
		dst.DrawText(0, 0, flashText, core.ColorAlert)
		return
	}
	box := dst.Bounds().Center(bw, bh)
	dst.DrawBox(box, core.ColorAlert)
	dst.DrawText(box.X+2, box.Y+1, flashText, core.ColorAlert)
}
