package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"LocalBoard/internal/board"
	"LocalBoard/internal/config"
)

// RunApp opens the whiteboard window on a and blocks until it is closed.
// warnings delivers persistence problems raised off the UI goroutine.
func RunApp(a fyne.App, cfg *config.Config, b *board.Board, warnings <-chan error) {
	myWindow := a.NewWindow("Local Whiteboard")
	myWindow.Resize(fyne.NewSize(1024, 768))

	// Create the interactive board widget
	bw := NewBoardWidget(b, cfg.Background, cfg.Grid, cfg.GridSize)
	statusBar := widget.NewLabel("Ready")
	bw.OnStatus = statusBar.SetText

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(b, bw, cfg.Palette, myWindow)

	go func() {
		for err := range warnings {
			err := err
			fyne.Do(func() { statusBar.SetText("Not saved: " + err.Error()) })
		}
	}()

	// Set up the main layout
	content := container.NewBorder(toolbar, statusBar, nil, nil, bw)

	myWindow.SetContent(content)
	myWindow.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) { bw.panKey(e) })
	myWindow.ShowAndRun()
}
