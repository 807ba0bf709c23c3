package sprite

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/duckgen/internal/core"
)

// FrameDuration is how long a player should hold each frame.
const FrameDuration = 150 * time.Millisecond

// ErrFrameOutOfRange is returned when a frame index is not in 1..Count().
var ErrFrameOutOfRange = errors.New("sprite: frame index out of range")

// Phase groups frames by the part of the animation they belong to.
type Phase string

const (
	PhaseIntro Phase = "intro" // Duck emerges and lands
	PhaseRun   Phase = "run"   // Looped running steps
	PhaseOutro Phase = "outro" // Last step, then the poof
)

// Frame is one fully painted step of the animation.
type Frame struct {
	Index  int // 1-based position in the animation
	Name   string
	Phase  Phase
	Canvas *core.Canvas
}

// recipe describes how to paint a single frame on a fresh canvas.
type recipe struct {
	name  string
	phase Phase
	paint func(c *core.Canvas)
}

// recipes lists every frame in emission order.
var recipes = []recipe{
	{"line", PhaseIntro, func(c *core.Canvas) {
		DrawGroundLine(c, LineHalf)
	}},
	{"peek", PhaseIntro, paintPeek},
	{"leap", PhaseIntro, func(c *core.Canvas) {
		DrawGroundLine(c, LineHalf)
		DrawDuck(c, -2, PoseNormal)
	}},
	// The line is gone once the duck has landed on it.
	{"land", PhaseIntro, func(c *core.Canvas) {
		DrawDuck(c, 1, PoseNormal)
	}},
	{"crouch", PhaseIntro, func(c *core.Canvas) {
		DrawDuck(c, 2, PoseNormal)
	}},
	{"run-start", PhaseRun, func(c *core.Canvas) {
		DrawDuck(c, 1, PoseRun1)
	}},
	{"run-mid", PhaseRun, func(c *core.Canvas) {
		DrawDuck(c, 0, PoseRun2)
	}},
	{"run-step", PhaseOutro, func(c *core.Canvas) {
		DrawDuck(c, 1, PoseRun1)
	}},
	{"poof-small", PhaseOutro, func(c *core.Canvas) {
		c.FillRect(5, 6, 10, 11, core.Smoke)
	}},
	{"poof-large", PhaseOutro, func(c *core.Canvas) {
		c.FillRect(2, 3, 13, 12, core.Smoke)
	}},
	{"poof-stars", PhaseOutro, paintStars},
}

// paintPeek draws the top of the duck's head poking up through the ground.
func paintPeek(c *core.Canvas) {
	DrawGroundLine(c, LineFull)
	c.FillRect(7, 11, 10, 13, core.HeadGreen)
	c.Set(10, 12, core.EyeBlack)
	c.FillRect(4, 13, 6, 13, core.BeakOrange)
}

// paintStars draws the dispersing puff: three stars and a wisp of smoke.
func paintStars(c *core.Canvas) {
	c.Set(4, 4, core.StarGold)
	c.Set(12, 2, core.StarGold)
	c.Set(13, 10, core.StarGold)
	c.Set(8, 7, core.Smoke)
	c.Set(7, 8, core.Smoke)
}

// Count returns the number of frames in the animation.
func Count() int {
	return len(recipes)
}

// Render paints the frame with the given 1-based index on a fresh canvas.
func Render(index int) (Frame, error) {
	if index < 1 || index > len(recipes) {
		return Frame{}, fmt.Errorf("%w: %d (want 1..%d)", ErrFrameOutOfRange, index, len(recipes))
	}

	r := recipes[index-1]
	c := core.NewCanvas()
	r.paint(c)

	return Frame{
		Index:  index,
		Name:   r.name,
		Phase:  r.phase,
		Canvas: c,
	}, nil
}

// Frames paints every frame in emission order.
func Frames() []Frame {
	frames := make([]Frame, 0, len(recipes))
	for i := range recipes {
		f, _ := Render(i + 1) // index is always in range here
		frames = append(frames, f)
	}
	return frames
}

// PhaseFrames returns the 1-based indices of the frames in a phase.
func PhaseFrames(p Phase) []int {
	var indices []int
	for i, r := range recipes {
		if r.phase == p {
			indices = append(indices, i+1)
		}
	}
	return indices
}
