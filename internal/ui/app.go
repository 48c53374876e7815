package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"TouchBoard/internal/gesture"
)

func RunApp() {
	myApp := app.New()
	myWindow := myApp.NewWindow("TouchBoard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	// Create the gesture core and the interactive board widget around it
	board := NewBoardWidget(gesture.NewBoard())

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(board, myWindow)

	// Set up the main layout
	content := container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
