// Package overlay draws the on-screen framerate and version text.
package overlay

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	// sampleWindow is the FPS sampling interval in seconds.
	sampleWindow = 0.1
	// windowsPerSecond converts a window's frame count to frames per second.
	// Windows that overshoot sampleWindow are not corrected for.
	windowsPerSecond = 10

	fpsPrefix = "FPS: "
)

// Style is the text style used by the overlay.
type Style struct {
	Face           *text.GoTextFace
	Size           int
	Color          color.Color
	PrimaryAlign   text.Align
	SecondaryAlign text.Align
}

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Framerate samples frame timing and renders "FPS: N" plus a version
// line at the bottom-left of the screen.
//
// Tick and Draw are meant to be called once per frame from the game loop.
type Framerate struct {
	elapsed float64 // seconds since the last sample
	frames  int     // frames since the last sample

	fpsText     string
	versionText string

	source     *text.GoTextFaceSource
	style      *Style
	lastHeight int
}

// NewFramerate creates an overlay showing the given application version.
// src is the face source for the text; see DefaultFaceSource.
func NewFramerate(version string, src *text.GoTextFaceSource) *Framerate {
	return &Framerate{
		fpsText:     fpsPrefix + "0",
		versionText: fmt.Sprintf("v%s", version),
		source:      src,
	}
}

// Tick records one frame that took elapsed seconds of unscaled time.
// Once the accumulated time reaches the sample window the FPS text is
// refreshed and both accumulators restart from zero.
func (f *Framerate) Tick(elapsed float64) {
	f.elapsed += elapsed
	f.frames++

	if f.elapsed >= sampleWindow {
		f.fpsText = fpsPrefix + strconv.Itoa(f.frames*windowsPerSecond)
		f.elapsed = 0
		f.frames = 0
	}
}

// Text returns the current FPS line.
func (f *Framerate) Text() string {
	return f.fpsText
}

// VersionText returns the version line.
func (f *Framerate) VersionText() string {
	return f.versionText
}

// FontSize returns the font size of the current style, or 0 before the
// first Draw.
func (f *Framerate) FontSize() int {
	if f.style == nil {
		return 0
	}
	return f.style.Size
}

// Draw renders both lines onto screen, sized to the screen bounds.
func (f *Framerate) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	style := f.prepare(b.Dy())
	if style.Size <= 0 {
		// Screen too short for a visible font.
		return
	}

	fpsRect, versionRect := layout(b.Dx(), b.Dy())
	drawLine(screen, f.fpsText, fpsRect, style)
	drawLine(screen, f.versionText, versionRect, style)
}

// prepare returns the text style for a viewport of the given height,
// rebuilding it only when the height changed since the last call.
func (f *Framerate) prepare(height int) *Style {
	if f.style != nil && height == f.lastHeight {
		return f.style
	}

	size := height * 2 / 100
	f.style = &Style{
		Face: &text.GoTextFace{
			Source: f.source,
			Size:   float64(size),
		},
		Size:           size,
		Color:          color.White,
		PrimaryAlign:   text.AlignStart,
		SecondaryAlign: text.AlignEnd,
	}
	f.lastHeight = height
	return f.style
}

// layout returns the FPS rectangle and the version rectangle directly
// below it for a width x height viewport.
func layout(width, height int) (fps, version Rect) {
	h := float64(height)
	fps = Rect{
		X: 0,
		Y: h * 94 / 100,
		W: float64(width),
		H: h * 2 / 100,
	}
	version = fps
	version.Y += fps.H
	return fps, version
}

func drawLine(screen *ebiten.Image, s string, r Rect, style *Style) {
	op := &text.DrawOptions{}
	// Bottom-left of the rectangle.
	op.GeoM.Translate(r.X, r.Y+r.H)
	op.ColorScale.ScaleWithColor(style.Color)
	op.LayoutOptions = text.LayoutOptions{
		PrimaryAlign:   style.PrimaryAlign,
		SecondaryAlign: style.SecondaryAlign,
	}
	text.Draw(screen, s, style.Face, op)
}
