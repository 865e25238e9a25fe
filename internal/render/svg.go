package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"janggi/internal/janggi"
)

// 格子间距和边距（像素）
const (
	cell   = 60
	margin = 40
	radius = 24
)

var kindGlyph = map[janggi.Kind]string{
	janggi.General:  "將",
	janggi.Guard:    "士",
	janggi.Soldier:  "卒",
	janggi.Chariot:  "車",
	janggi.Cannon:   "包",
	janggi.Horse:    "馬",
	janggi.Elephant: "象",
}

func point(row, col int) (int, int) {
	return margin + col*cell, margin + row*cell
}

// WriteSVG 画出盘面；highlight 里的格子加绿点（用来显示落点）
func WriteSVG(w io.Writer, b janggi.Board, highlight []janggi.Square) {
	width := 2*margin + (janggi.Cols-1)*cell
	height := 2*margin + (janggi.Rows-1)*cell

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#f0d9a0")

	line := "stroke:#333;stroke-width:1"
	for r := 0; r < janggi.Rows; r++ {
		x1, y := point(r, 0)
		x2, _ := point(r, janggi.Cols-1)
		canvas.Line(x1, y, x2, y, line)
	}
	for c := 0; c < janggi.Cols; c++ {
		x, y1 := point(0, c)
		_, y2 := point(janggi.Rows-1, c)
		canvas.Line(x, y1, x, y2, line)
	}

	// 九宫斜线
	for _, top := range []int{0, janggi.Rows - 3} {
		ax, ay := point(top, 3)
		bx, by := point(top+2, 5)
		canvas.Line(ax, ay, bx, by, line)
		cx, cy := point(top, 5)
		dx, dy := point(top+2, 3)
		canvas.Line(cx, cy, dx, dy, line)
	}

	for c := 0; c < janggi.Cols; c++ {
		x, _ := point(0, c)
		canvas.Text(x, margin/2, string(rune('a'+c)), "text-anchor:middle;font-size:14px")
	}
	for r := 0; r < janggi.Rows; r++ {
		_, y := point(r, 0)
		canvas.Text(margin/3, y+5, fmt.Sprint(r+1), "text-anchor:middle;font-size:14px")
	}

	for sq, id := range b.Squares {
		if id == janggi.NoPiece {
			continue
		}
		p := b.Pieces[id]
		x, y := point(janggi.Square(sq).Row(), janggi.Square(sq).Col())
		color := "#1a4fa0"
		if p.Team == janggi.Red {
			color = "#b22222"
		}
		canvas.Circle(x, y, radius, "fill:#fff8e7;stroke-width:2;stroke:"+color)
		canvas.Text(x, y+8, kindGlyph[p.Kind], "text-anchor:middle;font-size:22px;fill:"+color)
	}

	for _, sq := range highlight {
		if !sq.Valid() {
			continue
		}
		x, y := point(sq.Row(), sq.Col())
		canvas.Circle(x, y, 8, "fill:#2e8b57;fill-opacity:0.7")
	}
	canvas.End()
}
