package mapping

import "math"

// Viewport maps board units onto a Cols x Rows terminal cell grid.
//
// Terminal cells are roughly twice as tall as they are wide, so the grid is
// usually wider than it is tall for the same board; x and y scale
// independently.
type Viewport struct {
	Cols int
	Rows int

	scaleX float64
	scaleY float64
}

// CellSpan is a half-open cell range [From, To).
type CellSpan struct {
	From int
	To   int
}

func (s CellSpan) Contains(i int) bool { return i >= s.From && i < s.To }

// NewViewport fits a boardW x boardH board into at most maxCols x maxRows
// cells. Both dimensions are at least 1.
func NewViewport(boardW, boardH float64, maxCols, maxRows int) Viewport {
	if maxCols < 1 {
		maxCols = 1
	}
	if maxRows < 1 {
		maxRows = 1
	}
	if boardW <= 0 {
		boardW = 1
	}
	if boardH <= 0 {
		boardH = 1
	}
	return Viewport{
		Cols:   maxCols,
		Rows:   maxRows,
		scaleX: float64(maxCols) / boardW,
		scaleY: float64(maxRows) / boardH,
	}
}

func (v Viewport) Col(x float64) int {
	return clampInt(int(math.Floor(x*v.scaleX)), 0, v.Cols-1)
}

func (v Viewport) Row(y float64) int {
	return clampInt(int(math.Floor(y*v.scaleY)), 0, v.Rows-1)
}

// ColSpan covers every column a [x, x+w) segment touches. Never empty.
func (v Viewport) ColSpan(x, w float64) CellSpan {
	return span(x, w, v.scaleX, v.Cols)
}

// RowSpan covers every row a [y, y+h) segment touches. Never empty.
func (v Viewport) RowSpan(y, h float64) CellSpan {
	return span(y, h, v.scaleY, v.Rows)
}

// BoardY converts a row back to the board y at the row's vertical center.
func (v Viewport) BoardY(row int) float64 {
	row = clampInt(row, 0, v.Rows-1)
	return (float64(row) + 0.5) / v.scaleY
}

func span(pos, size, scale float64, n int) CellSpan {
	from := clampInt(int(math.Floor(pos*scale)), 0, n-1)
	to := clampInt(int(math.Ceil((pos+size)*scale)), 0, n)
	if to <= from {
		to = from + 1
	}
	return CellSpan{From: from, To: to}
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
