package sprite

import (
	"testing"

	"github.com/vovakirdan/duckgen/internal/core"
)

func TestDrawGroundLine(t *testing.T) {
	tests := []struct {
		name     string
		mode     LineMode
		from, to int // inclusive columns
	}{
		{"half", LineHalf, 4, 11},
		{"full", LineFull, 0, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := core.NewCanvas()
			DrawGroundLine(c, tc.mode)

			for x := 0; x < core.Size; x++ {
				want := core.Transparent
				if x >= tc.from && x <= tc.to {
					want = core.GroundLine
				}
				if got := c.Get(x, GroundRow); got != want {
					t.Errorf("(%d, %d) = %v, expected %v", x, GroundRow, got, want)
				}
			}
			if c.Painted() != tc.to-tc.from+1 {
				t.Errorf("Painted() = %d, expected only the line", c.Painted())
			}
		})
	}
}

func TestDrawDuckUpright(t *testing.T) {
	c := core.NewCanvas()
	DrawDuck(c, 0, PoseNormal)

	checks := []struct {
		x, y int
		want core.Color
	}{
		{6, 2, core.HeadGreen},   // head top-left
		{9, 5, core.HeadGreen},   // head bottom-right
		{9, 3, core.EyeBlack},    // eye
		{3, 4, core.BeakOrange},  // beak tip
		{5, 4, core.BeakOrange},  // beak base
		{2, 4, core.Transparent}, // past the beak
		{6, 6, core.NeckWhite},   // neck ring
		{9, 6, core.NeckWhite},
		{4, 7, core.ChestBrown}, // chest front
		{6, 10, core.ChestBrown},
		{7, 7, core.BodyGrey}, // body starts at anchor+1
		{12, 10, core.BodyGrey},
		{13, 7, core.Transparent}, // tail ends at anchor+6
		{6, 11, core.BeakOrange},  // feet
		{10, 11, core.BeakOrange},
	}

	for _, tc := range checks {
		if got := c.Get(tc.x, tc.y); got != tc.want {
			t.Errorf("(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}

	if c.Count(core.ChestBrown) != 12 {
		t.Errorf("Count(ChestBrown) = %d, expected 12", c.Count(core.ChestBrown))
	}
	if c.Count(core.BodyGrey) != 24 {
		t.Errorf("Count(BodyGrey) = %d, expected 24", c.Count(core.BodyGrey))
	}
	if c.Painted() != 61 {
		t.Errorf("Painted() = %d, expected 61", c.Painted())
	}
}

func TestDrawDuckPoses(t *testing.T) {
	tests := []struct {
		name  string
		yOff  int
		pose  Pose
		feet  [2][2]int
		grey  int // body-grey cells left after feet are drawn
		brown int
	}{
		{"normal", 1, PoseNormal, [2][2]int{{6, 12}, {10, 12}}, 24, 12},
		{"run1", 1, PoseRun1, [2][2]int{{5, 12}, {9, 11}}, 23, 12},
		{"run2", 0, PoseRun2, [2][2]int{{6, 10}, {11, 11}}, 24, 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := core.NewCanvas()
			DrawDuck(c, tc.yOff, tc.pose)

			for _, f := range tc.feet {
				if got := c.Get(f[0], f[1]); got != core.BeakOrange {
					t.Errorf("foot (%d, %d) = %v, expected beak-orange", f[0], f[1], got)
				}
			}
			// Beak (3) plus two feet
			if got := c.Count(core.BeakOrange); got != 5 {
				t.Errorf("Count(BeakOrange) = %d, expected 5", got)
			}
			if got := c.Count(core.BodyGrey); got != tc.grey {
				t.Errorf("Count(BodyGrey) = %d, expected %d", got, tc.grey)
			}
			if got := c.Count(core.ChestBrown); got != tc.brown {
				t.Errorf("Count(ChestBrown) = %d, expected %d", got, tc.brown)
			}
		})
	}
}

func TestDrawDuckVerticalOffset(t *testing.T) {
	base := core.NewCanvas()
	DrawDuck(base, 0, PoseNormal)

	for _, off := range []int{-2, -1, 1, 2} {
		c := core.NewCanvas()
		DrawDuck(c, off, PoseNormal)

		// Same shape, shifted rows
		for y := 0; y < core.Size; y++ {
			for x := 0; x < core.Size; x++ {
				if got, want := c.Get(x, y), base.Get(x, y-off); got != want {
					t.Errorf("offset %d: (%d, %d) = %v, expected %v", off, x, y, got, want)
				}
			}
		}
	}
}

func TestDrawDuckClipsAtEdges(t *testing.T) {
	// Lifted so only the bottom head row stays on the canvas
	c := core.NewCanvas()
	DrawDuck(c, -5, PoseNormal)
	if c.Count(core.HeadGreen) != 4 {
		t.Errorf("Count(HeadGreen) = %d, expected 4", c.Count(core.HeadGreen))
	}
	if c.Count(core.EyeBlack) != 0 {
		t.Error("eye should be clipped off the top")
	}

	// Lowered so only the head and beak fit
	c = core.NewCanvas()
	DrawDuck(c, 10, PoseRun2)
	if c.Painted() != 19 {
		t.Errorf("Painted() = %d, expected 19", c.Painted())
	}
	if c.Count(core.NeckWhite) != 0 {
		t.Error("neck ring should be clipped off the bottom")
	}
}

func TestPoseString(t *testing.T) {
	if PoseRun1.String() != "run1" || PoseRun2.String() != "run2" || PoseNormal.String() != "normal" {
		t.Error("unexpected pose names")
	}
	if Pose(9).String() != "unknown" {
		t.Error("out of range pose should be unknown")
	}
}
