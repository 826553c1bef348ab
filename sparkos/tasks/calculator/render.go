package calculator

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG          = rgb(0xF5, 0xF5, 0xF5)
	colorDisplayBG   = rgb(0x33, 0x33, 0x33)
	colorExpression  = rgb(0xAA, 0xAA, 0xAA)
	colorResult      = rgb(0xFF, 0xFF, 0xFF)
	colorNumber      = rgb(0xFF, 0xFF, 0xFF)
	colorNumberEdge  = rgb(0xDD, 0xDD, 0xDD)
	colorOperator    = rgb(0xFF, 0x95, 0x00)
	colorClear       = rgb(0xFF, 0x3B, 0x30)
	colorEquals      = rgb(0x34, 0xC7, 0x59)
	colorAdvanced    = rgb(0x9C, 0x27, 0xB0)
	colorLabel       = rgb(0x00, 0x00, 0x00)
	colorHistoryBG   = rgb(0xF9, 0xF9, 0xF9)
	colorHistoryEdge = rgb(0xDD, 0xDD, 0xDD)
	colorHeaderBG    = rgb(0xEE, 0xEE, 0xEE)
	colorHistoryItem = rgb(0x55, 0x55, 0x55)
)

func rgb(r, g, b uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: 0xFF} }

// darken scales a color towards black; used for the pressed highlight.
func darken(c color.RGBA) color.RGBA {
	return rgb(uint8(uint16(c.R)*3/4), uint8(uint16(c.G)*3/4), uint8(uint16(c.B)*3/4))
}

func (b Button) fill() color.RGBA {
	switch b.kind {
	case kindOperator:
		return colorOperator
	case kindClear:
		return colorClear
	case kindEquals:
		return colorEquals
	case kindAdvanced:
		return colorAdvanced
	case kindLink:
		return colorHeaderBG
	}
	return colorNumber
}

// The bitmap fonts cover printable ASCII only.
var asciiFallback = strings.NewReplacer(
	"√", "sqrt",
	"²", "^2",
	"π", "pi",
	"÷", "/",
	"×", "*",
)

// asciiText returns s with glyphs outside the font replaced by ASCII spellings; anything
// else non-printable becomes '?'.
func asciiText(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7E {
			return '?'
		}
		return r
	}, asciiFallback.Replace(s))
}

type fbDisplay struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	w, h := d.fb.Width(), d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo, hi := byte(pixel), byte(pixel>>8)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *fbDisplay) fillRect(r rect, c color.RGBA) {
	_ = d.FillRectangle(r.x, r.y, r.w, r.h, c)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// face is a font plus the vertical metrics used to place its baseline.
type face struct {
	font   *tinyfont.Font
	height int16
	ascent int16
}

func newFace(f *tinyfont.Font) face {
	h := int16(f.YAdvance)
	return face{font: f, height: h, ascent: h * 2 / 3}
}

func (f face) width(s string) int16 {
	_, w := tinyfont.LineWidth(f.font, s)
	return int16(w)
}

// baseline centers a line of text vertically in r.
func (f face) baseline(r rect) int16 {
	return r.y + (r.h+f.ascent)/2
}

type fonts struct {
	small  face
	button face
	result face
}

func loadFonts() fonts {
	return fonts{
		small:  newFace(&proggy.TinySZ8pt7b),
		button: newFace(&freemono.Bold9pt7b),
		result: newFace(&freemono.Bold12pt7b),
	}
}

// tail drops leading runes until s fits in maxW pixels.
func (f face) tail(s string, maxW int16) string {
	for s != "" && f.width(s) > maxW {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
	}
	return s
}

// head drops trailing runes until s fits in maxW pixels.
func (f face) head(s string, maxW int16) string {
	for s != "" && f.width(s) > maxW {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}

func (t *Task) drawRight(f face, r rect, s string, c color.RGBA) {
	s = f.tail(asciiText(s), r.w)
	x := r.x + r.w - f.width(s)
	tinyfont.WriteLine(t.d, f.font, x, f.baseline(r), s, c)
}

func (t *Task) drawCentered(f face, r rect, s string, c color.RGBA) {
	s = f.head(asciiText(s), r.w)
	x := r.x + (r.w-f.width(s))/2
	tinyfont.WriteLine(t.d, f.font, x, f.baseline(r), s, c)
}

func (t *Task) drawLeft(f face, r rect, s string, c color.RGBA) {
	s = f.head(asciiText(s), r.w)
	tinyfont.WriteLine(t.d, f.font, r.x, f.baseline(r), s, c)
}

func (t *Task) render(snap calc.Snapshot) {
	if t.fb == nil || t.d == nil {
		return
	}
	w, h := int16(t.fb.Width()), int16(t.fb.Height())
	if w <= 0 || h <= 0 {
		return
	}

	t.d.fillRect(rect{w: w, h: h}, colorBG)

	t.d.fillRect(t.scr.display, colorDisplayBG)
	expr := snap.Expression
	if expr == "" {
		expr = " "
	}
	t.drawRight(t.fonts.small, t.scr.expression, expr, colorExpression)
	resultFace := t.fonts.result
	if resultFace.width(asciiText(snap.Result)) > t.scr.result.w {
		resultFace = t.fonts.button
	}
	t.drawRight(resultFace, t.scr.result, snap.Result, colorResult)

	for i, b := range t.pad.buttons {
		if b.kind == kindLink {
			continue
		}
		fill := b.fill()
		if i == t.pressed {
			fill = darken(fill)
		}
		if b.kind == kindNumber {
			t.d.fillRect(b.rect, colorNumberEdge)
			t.d.fillRect(b.rect.inset(1), fill)
		} else {
			t.d.fillRect(b.rect, fill)
		}
		t.drawCentered(t.fonts.button, b.rect, b.Label, colorLabel)
	}

	t.renderHistory(snap.History)

	_ = t.d.Display()
}

func (t *Task) renderHistory(items []string) {
	s := t.scr
	t.d.fillRect(s.history, colorHistoryBG)
	t.d.fillRect(rect{x: s.history.x, y: s.history.y, w: s.history.w, h: 1}, colorHistoryEdge)
	t.d.fillRect(s.historyHeader, colorHeaderBG)
	t.drawLeft(t.fonts.small, s.historyHeader.inset(panelPad), "History", colorLabel)

	for i, b := range t.pad.buttons {
		if b.kind != kindLink {
			continue
		}
		c := colorClear
		if i == t.pressed {
			c = darken(c)
		}
		t.drawCentered(t.fonts.small, b.rect, b.Label, c)
	}

	lineH := t.fonts.small.height
	if lineH <= 0 {
		return
	}
	y := s.historyList.y
	for _, item := range items {
		if y+lineH > s.historyList.y+s.historyList.h {
			break
		}
		t.drawLeft(t.fonts.small, rect{x: s.historyList.x, y: y, w: s.historyList.w, h: lineH}, item, colorHistoryItem)
		y += lineH
	}
}
