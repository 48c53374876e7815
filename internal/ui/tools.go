package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TouchBoard/internal/export"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			board.Core().Clear()
		}), // Clear the whole board
		widget.NewToolbarAction(theme.ZoomInIcon(), func() {
			board.ZoomIn()
		}),
		widget.NewToolbarAction(theme.ZoomOutIcon(), func() {
			board.ZoomOut()
		}),
		widget.NewToolbarAction(theme.ZoomFitIcon(), func() {
			board.ResetView()
		}),
		widget.NewToolbarAction(theme.GridIcon(), func() {
			board.ToggleGrid()
		}),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
				if err != nil || writer == nil {
					return
				}
				board.SaveToFile(writer)
			}, win)
		}),
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
				if err != nil || reader == nil {
					return
				}
				board.LoadFromFile(reader)
			}, win)
		}),
		widget.NewToolbarAction(theme.MailForwardIcon(), func() {
			dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
				if err != nil || writer == nil {
					return
				}
				path := writer.URI().Path()
				writer.Close()
				if err := export.PDF(path, board.Core().Strokes.Snapshot()); err != nil {
					log.Printf("[export] pdf: %v", err)
					board.SetStatus("Error exporting PDF")
					return
				}
				board.SetStatus("Exported PDF")
			}, win)
		}), // Export PDF
	)

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		board.Core().SetColor(colorToName(c))
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped), // Yellow
	)

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(4.0)
	strokeSlider.OnChanged = func(val float64) {
		board.Core().SetWidth(val)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
