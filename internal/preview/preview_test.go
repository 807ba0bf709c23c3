package preview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duckgen/internal/core"
	"github.com/vovakirdan/duckgen/internal/sprite"
)

func TestRenderASCIIStars(t *testing.T) {
	f, err := sprite.Render(11)
	if err != nil {
		t.Fatal(err)
	}

	rows := strings.Split(RenderASCII(f.Canvas), "\n")
	if len(rows) != core.Size {
		t.Fatalf("expected %d rows, got %d", core.Size, len(rows))
	}

	expected := map[int]string{
		2:  "............*...",
		4:  "....*...........",
		7:  "........s.......",
		8:  ".......s........",
		10: ".............*..",
	}
	for y, row := range rows {
		want, ok := expected[y]
		if !ok {
			want = strings.Repeat(".", core.Size)
		}
		if row != want {
			t.Errorf("row %d = %q, expected %q", y, row, want)
		}
	}
}

func TestRenderASCIIDuck(t *testing.T) {
	f, err := sprite.Render(7)
	if err != nil {
		t.Fatal(err)
	}

	rows := strings.Split(NewRenderer(false).Render(f.Canvas), "\n")
	expected := []string{
		2:  "......GGGG......",
		3:  "......GGGK......",
		4:  "...OOOGGGG......",
		6:  "......WWWW......",
		7:  "....BBBgggggg...",
		10: "....BBOgggggg...",
		11: "...........O....",
	}
	for y, want := range expected {
		if want == "" {
			continue
		}
		if rows[y] != want {
			t.Errorf("row %d = %q, expected %q", y, rows[y], want)
		}
	}
}

func TestRenderColorDimensions(t *testing.T) {
	f, err := sprite.Render(3)
	if err != nil {
		t.Fatal(err)
	}

	out := NewRenderer(true).Render(f.Canvas)
	if h := lipgloss.Height(out); h != core.Size {
		t.Errorf("Height = %d, expected %d", h, core.Size)
	}
	if w := lipgloss.Width(out); w != core.Size*cellWidth {
		t.Errorf("Width = %d, expected %d", w, core.Size*cellWidth)
	}
}

func TestLegend(t *testing.T) {
	legend := Legend()
	for _, c := range core.AllColors() {
		if !strings.Contains(legend, string(c.Char())+"="+c.String()) {
			t.Errorf("legend missing %v", c)
		}
	}
}
