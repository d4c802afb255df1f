package draw

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// pixelThreshold is the minimum luminance a colour needs to light a pixel.
const pixelThreshold = 0.35

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// It scales from logical world coordinates to actual terminal pixels and
// implements Surface, so the game renders to it exactly as it does to a window.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Downscaled sprite masks, valid for the current scale only.
	masks map[Texture]*spriteMask

	renderBuf strings.Builder // Buffer for batching render output
}

// spriteMask is a texture reduced to canvas resolution, one bool per pixel.
type spriteMask struct {
	w, h int
	bits []bool
}

// Ensure Canvas satisfies Surface.
var _ Surface = (*Canvas)(nil)

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		masks:         make(map[Texture]*spriteMask),
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth == c.termWidth && termHeight == c.termHeight {
		return
	}

	subPixelHeight := termHeight * 2
	c.pixels = make([]bool, subPixelHeight*termWidth)
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = subPixelHeight

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight

	// Masks were built for the old scale
	clear(c.masks)
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear sets every pixel if col is bright and resets every pixel otherwise.
func (c *Canvas) Clear(col color.Color) {
	if luminance(col) < pixelThreshold {
		clear(c.pixels)
		return
	}
	for i := range c.pixels {
		c.pixels[i] = true
	}
}

// FillRect fills the pixels covered by r. A rectangle smaller than a pixel
// still covers the pixel it starts in.
func (c *Canvas) FillRect(col color.Color, r Rect, t Transform) {
	on := luminance(col) >= pixelThreshold
	origin := t.Apply(Point{X: r.X, Y: r.Y})

	x0 := int(math.Floor(origin.X * c.scaleX))
	y0 := int(math.Floor(origin.Y * c.scaleY))
	x1 := max(int(math.Ceil((origin.X+r.W)*c.scaleX)), x0+1)
	y1 := max(int(math.Ceil((origin.Y+r.H)*c.scaleY)), y0+1)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.writePixel(x, y, on)
		}
	}
}

// DrawImage lights the pixels where the downscaled texture is bright.
// Dark texels leave the canvas untouched, which is how alpha-over looks on
// a monochrome display. Textures that are not decoded images are skipped.
func (c *Canvas) DrawImage(tex Texture, t Transform) {
	m := c.maskFor(tex)
	if m == nil {
		return
	}

	px := int(math.Round(t.X * c.scaleX))
	py := int(math.Round(t.Y * c.scaleY))
	for y := 0; y < m.h; y++ {
		row := m.bits[y*m.w : (y+1)*m.w]
		for x, on := range row {
			if on {
				c.writePixel(px+x, py+y, true)
			}
		}
	}
}

// maskFor returns the cached mask of tex at the current scale.
func (c *Canvas) maskFor(tex Texture) *spriteMask {
	if m, ok := c.masks[tex]; ok {
		return m
	}

	src, ok := tex.(image.Image)
	if !ok {
		c.masks[tex] = nil
		return nil
	}

	b := src.Bounds()
	w := max(int(math.Round(float64(b.Dx())*c.scaleX)), 1)
	h := max(int(math.Round(float64(b.Dy())*c.scaleY)), 1)

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, b, xdraw.Src, nil)

	m := &spriteMask{w: w, h: h, bits: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.bits[y*w+x] = luminance(scaled.RGBAAt(x, y)) >= pixelThreshold
		}
	}
	c.masks[tex] = m
	return m
}

// writePixel sets or resets a pixel at actual canvas coordinates (no scaling).
func (c *Canvas) writePixel(x, y int, on bool) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = on
	}
}

// Pixel reports whether the pixel at canvas coordinates (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using half-block characters.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12) // Estimate ~12 bytes per cell

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return nil
	}

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1
	line := strings.Repeat("─", c.termWidth)

	var buf strings.Builder
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, line)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, line)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, line)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, line)
		}
	}
	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// SubPixelHeight returns the canvas height in pixels (two per row).
func (c *Canvas) SubPixelHeight() int {
	return c.subPixelHeight
}
