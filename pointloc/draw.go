package pointloc

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/geomlab/planar/dbg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the box so the outermost walls stay visible
const dbgDrawPadding = 40

// DebugDraw renders the decomposition and prints it to out as an inline image
// (iTerm only). Helper for debugging sessions; cells over the outer face are
// yellow, cells over interior faces blue.
func (pl *PointLocation) DebugDraw(scale float64, out io.Writer) error {
	width := int(scale*pl.box.Width()) + dbgDrawPadding*2
	height := int(scale*pl.box.Height()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-pl.box.Left, -pl.box.Lower)

	trapezoids := leafTrapezoids(pl.root)
	for _, t := range trapezoids {
		pl.drawTrapezoid(c, t, false)
	}
	c.SetLineWidth(2)
	for _, t := range trapezoids {
		pl.drawTrapezoid(c, t, true)
	}

	// The inserted segments over everything
	c.SetRGB(1, 1, 1)
	c.SetLineWidth(4)
	for ls := range pl.segments {
		c.DrawLine(ls.Left().X, ls.Left().Y, ls.Right().X, ls.Right().Y)
		c.Stroke()
	}
	c.SetRGB(1, 0, 0)
	for ls := range pl.segments {
		c.DrawPoint(ls.Left().X, ls.Left().Y, 4)
		c.Fill()
		c.DrawPoint(ls.Right().X, ls.Right().Y, 4)
		c.Fill()
	}

	path := filepath.Join(os.TempDir(), "trapezoids.png")
	if err := c.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, out)
	return nil
}

func (pl *PointLocation) drawTrapezoid(c *gg.Context, t *Trapezoid, stroke bool) {
	topLeft, err1 := t.Top.YFromX(t.Left.X)
	topRight, err2 := t.Top.YFromX(t.Right.X)
	bottomLeft, err3 := t.Bottom.YFromX(t.Left.X)
	bottomRight, err4 := t.Bottom.YFromX(t.Right.X)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		// Zero width cell along a vertical segment, nothing to see
		return
	}

	c.MoveTo(t.Left.X, bottomLeft)
	c.LineTo(t.Left.X, topLeft)
	c.LineTo(t.Right.X, topRight)
	c.LineTo(t.Right.X, bottomRight)
	c.ClosePath()
	if stroke {
		c.SetRGB(0, 1, 0)
		c.Stroke()
		return
	}

	if t.Bottom.AboveFace() == pl.subd.OuterFace() {
		c.SetRGBA(1, 1, 0, 0.5)
	} else {
		c.SetRGBA(0.3, 0.2, 1, 0.5)
	}
	c.Fill()

	// Label the cell at its center, in native coordinates so the text is not
	// flipped with the rest of the drawing
	c.SetRGB(1, 1, 1)
	centerX := (t.Left.X + t.Right.X) / 2
	centerY := (topLeft + topRight + bottomLeft + bottomRight) / 4
	centerX, centerY = c.TransformPoint(centerX, centerY)
	c.Push()
	c.Identity()
	c.DrawStringAnchored(dbg.Name(t), centerX, centerY, 0.5, 0.5)
	c.Pop()
}
