// Package sprite paints the duck animation frames onto core canvases.
package sprite

import "github.com/vovakirdan/duckgen/internal/core"

// Pose selects where the duck's feet are drawn.
type Pose uint8

const (
	PoseNormal Pose = iota // Both feet planted under the body
	PoseRun1               // Back foot down, front foot lifted
	PoseRun2               // Back foot lifted, front foot down
)

// String returns the string representation of a pose.
func (p Pose) String() string {
	switch p {
	case PoseNormal:
		return "normal"
	case PoseRun1:
		return "run1"
	case PoseRun2:
		return "run2"
	default:
		return "unknown"
	}
}

// LineMode selects the width of the ground line.
type LineMode uint8

const (
	LineHalf LineMode = iota // Columns 4-11
	LineFull                 // Whole row
)

// Ground line and duck anchor geometry.
const (
	GroundRow = 14

	headX = 6
	headY = 2
)

// DrawGroundLine draws the surface the duck stands on.
func DrawGroundLine(c *core.Canvas, mode LineMode) {
	switch mode {
	case LineHalf:
		c.DrawHLine(4, GroundRow, 8, core.GroundLine)
	case LineFull:
		c.DrawHLine(0, GroundRow, core.Size, core.GroundLine)
	}
}

// DrawDuck draws the full duck with its head anchored at column 6,
// row 2+yOff. Negative offsets lift the duck, positive ones lower it.
// Anything pushed past the canvas edge is clipped.
func DrawDuck(c *core.Canvas, yOff int, pose Pose) {
	hx, hy := headX, headY+yOff

	// Head, eye and beak
	c.FillRect(hx, hy, hx+3, hy+3, core.HeadGreen)
	c.Set(hx+3, hy+1, core.EyeBlack)
	c.FillRect(hx-3, hy+2, hx-1, hy+2, core.BeakOrange)

	// Neck ring
	c.FillRect(hx, hy+4, hx+3, hy+4, core.NeckWhite)

	// Body: brown chest in front of the neck, grey behind
	by := hy + 5
	c.FillRect(hx-2, by, hx, by+3, core.ChestBrown)
	c.FillRect(hx+1, by, hx+6, by+3, core.BodyGrey)

	drawFeet(c, hx, by+4, pose)
}

// drawFeet places both feet relative to the foot row fy.
func drawFeet(c *core.Canvas, hx, fy int, pose Pose) {
	switch pose {
	case PoseNormal:
		c.Set(hx, fy, core.BeakOrange)
		c.Set(hx+4, fy, core.BeakOrange)
	case PoseRun1:
		c.Set(hx-1, fy, core.BeakOrange)
		c.Set(hx+3, fy-1, core.BeakOrange)
	case PoseRun2:
		c.Set(hx, fy-1, core.BeakOrange)
		c.Set(hx+5, fy, core.BeakOrange)
	}
}
