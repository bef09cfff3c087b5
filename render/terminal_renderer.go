package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/core"
)

// halfBlock packs two vertical pixels per terminal cell: foreground paints
// the upper half, background the lower
const halfBlock = '▀'

// TerminalSink rasterizes arena-space circles onto a tcell screen. It
// implements core.Sink plus the Presenter frame flip. Arena coordinates are
// scaled per axis to the current terminal size on every Clear, so resizes
// take effect at the next frame.
type TerminalSink struct {
	screen tcell.Screen
	arenaW float64
	arenaH float64

	cols, rows int
	// pixels is column-major into a cols x rows*2 half-block grid
	pixels []core.RGB
	bg     core.RGB
}

// NewTerminalSink wraps an initialized screen
func NewTerminalSink(screen tcell.Screen, arenaW, arenaH float64) (*TerminalSink, error) {
	if screen == nil {
		return nil, fmt.Errorf("terminal sink: nil screen")
	}
	if arenaW <= 0 || arenaH <= 0 {
		return nil, fmt.Errorf("terminal sink: arena %gx%g not positive", arenaW, arenaH)
	}
	return &TerminalSink{
		screen: screen,
		arenaW: arenaW,
		arenaH: arenaH,
		bg:     core.RGBBlack,
	}, nil
}

// Clear resets the pixel grid to the background, resizing it to the current
// terminal dimensions
func (t *TerminalSink) Clear() {
	cols, rows := t.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	if cols != t.cols || rows != t.rows || t.pixels == nil {
		t.cols, t.rows = cols, rows
		t.pixels = make([]core.RGB, cols*rows*2)
	}
	for i := range t.pixels {
		t.pixels[i] = t.bg
	}
}

// DrawCircle rasterizes one circle by bounding box. The arena-to-cell scale
// differs per axis, so circles render as screen-space ellipses that fill the
// terminal regardless of its aspect ratio.
func (t *TerminalSink) DrawCircle(x, y, width, height float64, color core.RGB) {
	if t.pixels == nil {
		return
	}
	pxW := float64(t.cols)
	pxH := float64(t.rows * 2)
	scaleX := pxW / t.arenaW
	scaleY := pxH / t.arenaH

	cx := (x + width/2) * scaleX
	cy := (y + height/2) * scaleY
	rx := width / 2 * scaleX
	ry := height / 2 * scaleY
	if rx < 0.5 {
		rx = 0.5
	}
	if ry < 0.5 {
		ry = 0.5
	}

	minX := int(cx - rx)
	maxX := int(cx + rx)
	minY := int(cy - ry)
	maxY := int(cy + ry)

	for py := minY; py <= maxY; py++ {
		if py < 0 || py >= t.rows*2 {
			continue
		}
		for px := minX; px <= maxX; px++ {
			if px < 0 || px >= t.cols {
				continue
			}
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			c := color
			if d2 > 0.72 { // 0.85^2, darkened rim reads as curvature
				c = color.Scale(0.55)
			}
			t.pixels[px*t.rows*2+py] = c
		}
	}
}

// Present flushes the pixel grid to the terminal
func (t *TerminalSink) Present() {
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			upper := t.pixels[col*t.rows*2+row*2]
			lower := t.pixels[col*t.rows*2+row*2+1]
			style := tcell.StyleDefault.
				Foreground(toTcell(upper)).
				Background(toTcell(lower))
			t.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
