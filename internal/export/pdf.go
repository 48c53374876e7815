package export

import (
	"github.com/jung-kurt/gofpdf"

	"TouchBoard/internal/board"
)

// canvas units per millimetre on the page
const pdfScale = 3.0

// PDF writes the stroke snapshot to an A4 page, one polyline per stroke.
func PDF(path string, strokes []board.Stroke) error {
	p := gofpdf.New("P", "mm", "A4", "")
	p.AddPage()

	for _, st := range strokes {
		r, g, b := colorRGB(st.Color)
		p.SetDrawColor(r, g, b)
		p.SetLineWidth(st.Width / pdfScale)
		for i := 1; i < len(st.Points); i++ {
			p.Line(
				st.Points[i-1].X/pdfScale, st.Points[i-1].Y/pdfScale,
				st.Points[i].X/pdfScale, st.Points[i].Y/pdfScale,
			)
		}
	}
	return p.OutputFileAndClose(path)
}

func colorRGB(name string) (int, int, int) {
	switch name {
	case "red":
		return 255, 0, 0
	case "green":
		return 0, 255, 0
	case "blue":
		return 0, 0, 255
	case "yellow":
		return 255, 255, 0
	}
	return 0, 0, 0
}
