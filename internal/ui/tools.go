package ui

import (
	"fmt"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalBoard/internal/board"
	"LocalBoard/internal/export"
	"LocalBoard/internal/tools"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Value    string
	Color    color.Color
	OnTapped func(string)
}

func newColorSwatch(value string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Value: value, Color: tools.ColorOr(value, color.Black), OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Value)
	}
}

// status summarises the board state for the status bar.
func status(b *board.Board, f board.Frame) string {
	cfg := b.Tools()
	tool := "pan"
	if cfg.Drawing() {
		tool = string(cfg.Tool())
	}
	if cfg.Eraser() {
		tool = "eraser"
	}
	return fmt.Sprintf("Page %d/%d · %s · size %d · zoom %.0f%%", f.Page+1, f.PageCount, tool, cfg.PenWidth(), f.View.Scale*100)
}

// --- The Main Toolbar ---
func NewToolbar(b *board.Board, bw *BoardWidget, palette []string, win fyne.Window) fyne.CanvasObject {
	cfg := b.Tools()
	refresh := bw.Refresh

	toolButton := func(label string, t tools.Tool) *widget.Button {
		return widget.NewButton(label, func() {
			cfg.Select(t)
			refresh()
		})
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			cfg.Select(tools.Pen)
			refresh()
		}), // Pen
		widget.NewToolbarAction(theme.DeleteIcon(), func() {
			cfg.UseEraser()
			refresh()
		}), // Eraser
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), b.Undo),
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			dialog.ShowConfirm("Clear page", "Remove every stroke on this page?", func(ok bool) {
				if ok {
					b.Clear()
				}
			}, win)
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.NavigateBackIcon(), func() {
			reportPageError(win, b.SwitchPage(b.Store().Current()-1))
		}),
		widget.NewToolbarAction(theme.NavigateNextIcon(), func() {
			reportPageError(win, b.SwitchPage(b.Store().Current()+1))
		}),
		widget.NewToolbarAction(theme.ContentAddIcon(), func() {
			reportPageError(win, b.NewPage())
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomFitIcon(), b.ResetView),
		widget.NewToolbarAction(theme.GridIcon(), bw.ToggleGrid),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			exportDialog(b, win)
		}),
	)

	shapes := container.NewHBox(
		toolButton("Line", tools.Line),
		toolButton("Rect", tools.Rectangle),
		toolButton("Square", tools.Square),
		toolButton("Circle", tools.Circle),
	)

	// --- Color Palette ---
	onColorTapped := func(c string) {
		cfg.SetColor(c)
		refresh()
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	// --- Pen Size ---
	sizeControls := container.NewHBox(
		widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
			cfg.Shrink()
			refresh()
		}),
		widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
			cfg.Grow()
			refresh()
		}),
	)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		shapes,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sizeControls,
		layout.NewSpacer(),
	)
}

func reportPageError(win fyne.Window, err error) {
	if err != nil {
		log.Printf("[UI] %v", err)
		dialog.ShowError(err, win)
	}
}

func exportDialog(b *board.Board, win fyne.Window) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return // cancelled
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("Error closing writer: %v", err)
			}
		}()

		doc, _ := b.Store().Snapshot()
		if err := export.WritePDF(writer, doc, b.Tools().Background()); err != nil {
			log.Printf("[UI] Export failed: %v", err)
			dialog.ShowError(err, win)
			return
		}
		log.Printf("[UI] Exported %d pages to %s", len(doc.Pages), writer.URI())
	}, win)
}
