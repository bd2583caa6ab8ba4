package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"LocalBoard/internal/geometry"
	"LocalBoard/internal/state"
)

func sampleDocument() state.Document {
	return state.Document{
		Pages: []state.Page{
			{
				{Path: geometry.Freehand([]geometry.Point{geometry.Pt(0, 0), geometry.Pt(10, 5), geometry.Pt(20, 0)}), Color: "red", Width: 3},
				{Path: geometry.Freehand([]geometry.Point{geometry.Pt(40, 40)}), Color: "black", Width: 6},
				{Path: geometry.Rectangle(geometry.Pt(50, 30), -40, -20), Color: "#6C63FF", Width: 2},
				{Path: geometry.Square(geometry.Pt(0, 0), 10, -1, 1), Color: "green", Width: 2},
				{Path: geometry.Circle(geometry.Pt(100, 100), 50), Color: "blue", Width: 4},
				{Path: geometry.Line(geometry.Pt(0, 200), geometry.Pt(200, 0)), Color: "#ffffff", Width: 30},
			},
			{},
		},
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, sampleDocument(), "#ffffff"); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", out[:min(len(out), 16)])
	}
}

func TestExportPDFWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.pdf")
	if err := ExportPDF(path, sampleDocument(), "white"); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
}

func TestPageBounds(t *testing.T) {
	page := state.Page{
		{Path: geometry.Line(geometry.Pt(10, 10), geometry.Pt(20, 20)), Width: 4},
		{Path: geometry.Circle(geometry.Pt(0, 0), 5), Width: 2},
	}
	got := pageBounds(page)
	want := geometry.Rect{Min: geometry.Pt(-6, -6), Max: geometry.Pt(22, 22)}
	if got != want {
		t.Errorf("bounds = %+v, want %+v", got, want)
	}
	if !pageBounds(nil).Empty() {
		t.Error("empty page should have empty bounds")
	}
}
