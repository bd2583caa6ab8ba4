package state

import (
	"LocalBoard/internal/geometry"
)

// Stroke is one committed mark on a page. Strokes are never modified after
// they are committed.
type Stroke struct {
	ID    string
	Path  geometry.Path
	Color string  // The color the stroke is painted with
	Width float64 // Line width, always positive
}

// Page is an ordered list of strokes; later strokes paint on top.
type Page []Stroke

// Document is the full multi-page whiteboard.
type Document struct {
	Pages   []Page
	Current int
}

// NewDocument returns a document with a single empty page.
func NewDocument() Document {
	return Document{Pages: []Page{{}}}
}

// Clone returns a deep copy of the document's page lists. Strokes share
// their freehand point slices, which is safe because strokes are immutable.
func (d Document) Clone() Document {
	pages := make([]Page, len(d.Pages))
	for i, p := range d.Pages {
		pages[i] = append(Page{}, p...)
	}
	return Document{Pages: pages, Current: d.Current}
}

type IntentType string

const (
	// IntentPersistPage asks for the strokes of Page to be mirrored.
	IntentPersistPage IntentType = "persist_page"
	// IntentPersistMeta asks for the page count and current index to be mirrored.
	IntentPersistMeta IntentType = "persist_meta"
)

// Intent is a side effect requested by a store mutation. The store never
// performs it; an outer runner does.
type Intent struct {
	Type     IntentType
	Page     int
	Revision uint64
}
