package state

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// ErrOutOfRange is returned when a page index does not name an existing page.
var ErrOutOfRange = errors.New("page index out of range")

// Store owns the whiteboard document. All mutations go through it; each one
// ticks the revision clock and returns the persistence intents it implies.
type Store struct {
	doc       Document
	clock     Clock
	listeners []func()
	mu        sync.RWMutex
}

// NewStore creates a store holding a fresh one-page document.
func NewStore() *Store {
	return &Store{doc: NewDocument()}
}

// Subscribe registers fn to be called after every mutation.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Commit appends st to the current page, assigning an ID if it has none.
func (s *Store) Commit(st Stroke) []Intent {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	s.mu.Lock()
	cur := s.doc.Current
	s.doc.Pages[cur] = append(s.doc.Pages[cur], st)
	rev := s.clock.Tick()
	s.mu.Unlock()

	log.Printf("[STORE] Stroke %s (%s) committed to page %d", st.ID, st.Path.Kind, cur)
	s.notify()
	return []Intent{{Type: IntentPersistPage, Page: cur, Revision: rev}}
}

// Undo removes the last stroke of the current page. It reports whether a
// stroke was removed; an empty page is left as is.
func (s *Store) Undo() ([]Intent, bool) {
	s.mu.Lock()
	cur := s.doc.Current
	page := s.doc.Pages[cur]
	if len(page) == 0 {
		s.mu.Unlock()
		return nil, false
	}
	// Reslice into a fresh array so earlier snapshots keep their view.
	s.doc.Pages[cur] = append(Page{}, page[:len(page)-1]...)
	rev := s.clock.Tick()
	s.mu.Unlock()

	s.notify()
	return []Intent{{Type: IntentPersistPage, Page: cur, Revision: rev}}, true
}

// ClearCurrentPage empties the current page. There is no redo.
func (s *Store) ClearCurrentPage() []Intent {
	s.mu.Lock()
	cur := s.doc.Current
	s.doc.Pages[cur] = Page{}
	rev := s.clock.Tick()
	s.mu.Unlock()

	log.Printf("[STORE] Page %d cleared", cur)
	s.notify()
	return []Intent{{Type: IntentPersistPage, Page: cur, Revision: rev}}
}

// NewPage appends an empty page and makes it current.
func (s *Store) NewPage() []Intent {
	s.mu.Lock()
	s.doc.Pages = append(s.doc.Pages, Page{})
	s.doc.Current = len(s.doc.Pages) - 1
	idx := s.doc.Current
	rev := s.clock.Tick()
	s.mu.Unlock()

	log.Printf("[STORE] Page %d added", idx)
	s.notify()
	return []Intent{
		{Type: IntentPersistPage, Page: idx, Revision: rev},
		{Type: IntentPersistMeta, Revision: rev},
	}
}

// SwitchPage makes page index current.
func (s *Store) SwitchPage(index int) ([]Intent, error) {
	s.mu.Lock()
	if index < 0 || index >= len(s.doc.Pages) {
		n := len(s.doc.Pages)
		s.mu.Unlock()
		return nil, fmt.Errorf("switch to page %d of %d: %w", index, n, ErrOutOfRange)
	}
	s.doc.Current = index
	rev := s.clock.Tick()
	s.mu.Unlock()

	s.notify()
	return []Intent{{Type: IntentPersistMeta, Revision: rev}}, nil
}

// Restore replaces the whole document, typically with one loaded from
// storage. The document must have at least one page and a valid index.
func (s *Store) Restore(doc Document) error {
	if len(doc.Pages) == 0 {
		return fmt.Errorf("restore: document has no pages")
	}
	if doc.Current < 0 || doc.Current >= len(doc.Pages) {
		return fmt.Errorf("restore: current page %d of %d: %w", doc.Current, len(doc.Pages), ErrOutOfRange)
	}
	s.mu.Lock()
	s.doc = doc.Clone()
	s.clock.Tick()
	s.mu.Unlock()

	log.Printf("[STORE] Restored %d pages", len(doc.Pages))
	s.notify()
	return nil
}

// PageCount returns the number of pages.
func (s *Store) PageCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.doc.Pages)
}

// Current returns the index of the current page.
func (s *Store) Current() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Current
}

// Strokes returns a copy of the strokes on page index in paint order.
func (s *Store) Strokes(index int) ([]Stroke, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.doc.Pages) {
		return nil, fmt.Errorf("read page %d of %d: %w", index, len(s.doc.Pages), ErrOutOfRange)
	}
	return append([]Stroke{}, s.doc.Pages[index]...), nil
}

// CurrentStrokes returns a copy of the current page's strokes.
func (s *Store) CurrentStrokes() []Stroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Stroke{}, s.doc.Pages[s.doc.Current]...)
}

// Snapshot returns a deep copy of the document and the revision it reflects.
func (s *Store) Snapshot() (Document, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone(), s.clock.Now()
}

func (s *Store) notify() {
	s.mu.RLock()
	fns := append([]func(){}, s.listeners...)
	s.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
