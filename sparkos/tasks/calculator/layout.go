package calculator

type rect struct {
	x, y, w, h int16
}

func (r rect) contains(x, y int) bool {
	return x >= int(r.x) && x < int(r.x)+int(r.w) && y >= int(r.y) && y < int(r.y)+int(r.h)
}

func (r rect) inset(d int16) rect {
	if r.w <= 2*d || r.h <= 2*d {
		return r
	}
	return rect{x: r.x + d, y: r.y + d, w: r.w - 2*d, h: r.h - 2*d}
}

func (r rect) empty() bool { return r.w <= 0 || r.h <= 0 }

// screen is the panel geometry for one framebuffer size.
type screen struct {
	display       rect
	expression    rect
	result        rect
	history       rect
	historyHeader rect
	historyList   rect
}

// metrics are the font-derived sizes the layout depends on.
type metrics struct {
	exprH   int16
	headerH int16
	clearW  int16
}

const (
	layoutUnits = 11
	buttonGap   = 2
	panelPad    = 4
)

// layout places the panels and assigns every button its rectangle. The screen is split into
// eleven rows: two for the display, one for the unary row, five for the grid and the rest for
// history.
func (k *Keypad) layout(w, h int16, m metrics) screen {
	u := h / layoutUnits
	var s screen

	s.display = rect{x: 0, y: 0, w: w, h: 2 * u}
	inner := s.display.inset(panelPad)
	s.expression = rect{x: inner.x, y: inner.y, w: inner.w, h: m.exprH}
	s.result = rect{x: inner.x, y: inner.y + m.exprH, w: inner.w, h: inner.h - m.exprH}

	rows := make(map[int][]int)
	for i, b := range k.buttons {
		rows[b.row] = append(rows[b.row], i)
	}
	for row := 0; row <= len(gridRows); row++ {
		idx := rows[row]
		if len(idx) == 0 {
			continue
		}
		y := (2 + int16(row)) * u
		cellW := w / int16(len(idx))
		for col, i := range idx {
			x := int16(col) * cellW
			cw := cellW
			if col == len(idx)-1 {
				cw = w - x
			}
			k.buttons[i].rect = rect{x: x, y: y, w: cw, h: u}.inset(buttonGap)
		}
	}

	top := (3 + int16(len(gridRows))) * u
	s.history = rect{x: 0, y: top, w: w, h: h - top}
	hdr := m.headerH
	if hdr > s.history.h {
		hdr = s.history.h
	}
	s.historyHeader = rect{x: 0, y: top, w: w, h: hdr}
	s.historyList = rect{x: 0, y: top + hdr, w: w, h: s.history.h - hdr}.inset(panelPad)

	clearW := m.clearW + 2*panelPad
	if clearW > w {
		clearW = w
	}
	for _, i := range rows[-1] {
		k.buttons[i].rect = rect{x: w - clearW, y: top, w: clearW, h: hdr}
	}
	return s
}

// hit returns the index of the button under (x, y), or -1.
func (k *Keypad) hit(x, y int) int {
	for i, b := range k.buttons {
		if !b.rect.empty() && b.rect.contains(x, y) {
			return i
		}
	}
	return -1
}
