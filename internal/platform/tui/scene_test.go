package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/decasepta/internal/chase"
	"github.com/vovakirdan/decasepta/internal/core"
)

var testScene = SceneConfig{ColScale: 1, RowScale: 1, ChaserGlyph: "Z"}

func testSnapshot(chaserX float64) chase.Snapshot {
	ghost, _ := chase.FindCharacter("Ghost")
	return chase.Snapshot{
		PlayerX:        0,
		PlayerY:        4,
		ChaserX:        chaserX,
		Ground:         4,
		Score:          12,
		ElapsedSeconds: 3,
		Character:      ghost,
	}
}

func TestDrawSceneLayout(t *testing.T) {
	dst := core.NewScreen(40, 12)
	DrawScene(dst, testSnapshot(-5), chase.DefaultParams(), testScene, false)

	// Standing on flat ground: player row is h-2-min_y, ground line right below.
	if got := dst.Get(20, 6); got != '👻' {
		t.Errorf("player cell = %q, expected ghost glyph", got)
	}
	if got := dst.Get(15, 6); got != 'Z' {
		t.Errorf("chaser cell = %q, expected Z five columns left of the player", got)
	}
	for _, x := range []int{0, 20, 39} {
		if got := dst.Get(x, 7); got != '═' {
			t.Errorf("ground at column %d = %q, expected '═'", x, got)
		}
		if got := dst.Get(x, 11); got != '░' {
			t.Errorf("dirt at column %d = %q, expected '░'", x, got)
		}
	}
	if row := dst.Row(0); !strings.Contains(row, "Score: 12") || !strings.Contains(row, "Time: 3s") {
		t.Errorf("HUD row = %q, expected score and time", row)
	}
	if strings.Contains(dst.String(), flashText) {
		t.Error("flash message drawn without a capture")
	}
}

func TestDrawSceneOffscreenChaser(t *testing.T) {
	dst := core.NewScreen(40, 12)
	DrawScene(dst, testSnapshot(-500), chase.DefaultParams(), testScene, false)

	if row := dst.Row(1); !strings.HasPrefix(row, "◀Z 500m") {
		t.Errorf("edge marker row = %q, expected prefix %q", row, "◀Z 500m")
	}
}

func TestDrawSceneFlash(t *testing.T) {
	dst := core.NewScreen(40, 12)
	DrawScene(dst, testSnapshot(-5), chase.DefaultParams(), testScene, true)

	if !strings.Contains(dst.String(), flashText) {
		t.Errorf("expected %q on screen:\n%s", flashText, dst.String())
	}
}

func TestDrawSceneSlopedGround(t *testing.T) {
	p := chase.DefaultParams()
	p.Terrain.Slope = 1

	dst := core.NewScreen(40, 20)
	DrawScene(dst, testSnapshot(-5), p, testScene, false)

	// Ground rises to the right of the start, so the line sits higher there.
	left, right := -1, -1
	for y := 0; y < dst.Height(); y++ {
		if dst.Get(10, y) == '═' && left < 0 {
			left = y
		}
		if dst.Get(25, y) == '═' && right < 0 {
			right = y
		}
	}
	if left < 0 || right < 0 {
		t.Fatalf("ground not drawn: left=%d right=%d", left, right)
	}
	if right >= left {
		t.Errorf("ground row right=%d, left=%d; expected the right side higher", right, left)
	}
}

func TestHUDLine(t *testing.T) {
	got := HUDLine(testSnapshot(-7))
	want := " 👻 Ghost | Score: 12 | Time: 3s | Chaser: 7m "
	if got != want {
		t.Errorf("HUDLine() = %q, expected %q", got, want)
	}
}

func TestDrawBackgroundParallax(t *testing.T) {
	dst := core.NewScreen(4, 3)
	drawBackground(dst, []string{"ab"}, 1)

	if got := dst.Row(1); got != "baba" {
		t.Errorf("background row = %q, expected %q", got, "baba")
	}
	if got := dst.Row(0); got != "    " {
		t.Errorf("HUD row should stay clear, got %q", got)
	}
}

func TestLoadBackground(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		lines, err := LoadBackground("")
		if err != nil || lines != nil {
			t.Errorf("LoadBackground(\"\") = %v, %v; expected nil, nil", lines, err)
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "hills.txt")
		if err := os.WriteFile(path, []byte("  /\\  \r\n /  \\ \n"), 0o644); err != nil {
			t.Fatal(err)
		}
		lines, err := LoadBackground(path)
		if err != nil {
			t.Fatalf("LoadBackground() error: %v", err)
		}
		if len(lines) != 2 || lines[0] != "  /\\  " || lines[1] != " /  \\ " {
			t.Errorf("lines = %q", lines)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := LoadBackground(filepath.Join(t.TempDir(), "nope.txt"))
		if err == nil || !strings.Contains(err.Error(), "cannot load background") {
			t.Errorf("expected load error, got %v", err)
		}
	})
}
