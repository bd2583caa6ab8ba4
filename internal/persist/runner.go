package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"LocalBoard/internal/state"
)

const (
	MetaKey    = "board.meta"
	pageKeyFmt = "board.page.%d"
)

// PageKey returns the key page index is stored under.
func PageKey(index int) string { return fmt.Sprintf(pageKeyFmt, index) }

// Snapshotter supplies a consistent copy of the document.
type Snapshotter interface {
	Snapshot() (state.Document, uint64)
}

// Runner executes persistence intents in the background. The in-memory
// document stays authoritative: failures are reported and never rolled back.
type Runner struct {
	ctx   context.Context
	store Store
	src   Snapshotter

	// OnWarning, if set, receives every failed write.
	OnWarning func(error)

	written map[string]uint64 // key -> revision last written
	mu      sync.Mutex
	wg      sync.WaitGroup
}

func NewRunner(ctx context.Context, store Store, src Snapshotter) *Runner {
	return &Runner{ctx: ctx, store: store, src: src, written: make(map[string]uint64)}
}

type write struct {
	key   string
	value string
}

// Run snapshots the document now and writes the keys named by intents
// without blocking the caller.
func (r *Runner) Run(intents []state.Intent) {
	if len(intents) == 0 {
		return
	}
	doc, rev := r.src.Snapshot()
	writes, err := encode(doc, intents)
	if err != nil {
		r.warn(err)
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.apply(rev, writes)
	}()
}

// Wait blocks until every write started so far has finished.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// apply writes one batch. Keys already written at a newer revision are
// skipped, so a slow batch never overwrites a later one.
func (r *Runner) apply(rev uint64, writes []write) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := writes[:0:0]
	for _, w := range writes {
		if r.written[w.key] < rev {
			pending = append(pending, w)
		}
	}
	errs := make([]error, len(pending))

	// Keys are independent: one failure must not cancel its siblings.
	var g errgroup.Group
	for i, w := range pending {
		i, w := i, w
		g.Go(func() error {
			if err := r.store.Set(r.ctx, w.key, w.value); err != nil {
				errs[i] = fmt.Errorf("persist %s: %w", w.key, err)
			}
			return nil
		})
	}
	g.Wait()
	for i, w := range pending {
		if errs[i] == nil {
			r.written[w.key] = rev
		}
	}
	if err := errors.Join(errs...); err != nil {
		r.warn(err)
	}
}

func (r *Runner) warn(err error) {
	log.Printf("[PERSIST] %v", err)
	if r.OnWarning != nil {
		r.OnWarning(err)
	}
}

func encode(doc state.Document, intents []state.Intent) ([]write, error) {
	seen := make(map[string]bool)
	var out []write
	add := func(key string, v any) error {
		if seen[key] {
			return nil
		}
		seen[key] = true
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		out = append(out, write{key: key, value: string(data)})
		return nil
	}
	for _, in := range intents {
		var err error
		switch in.Type {
		case state.IntentPersistPage:
			if in.Page < 0 || in.Page >= len(doc.Pages) {
				continue
			}
			err = add(PageKey(in.Page), doc.Pages[in.Page])
		case state.IntentPersistMeta:
			err = add(MetaKey, state.MetaJSON{Pages: len(doc.Pages), Current: doc.Current})
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SaveAll returns intents covering every page and the metadata, for writing
// a freshly restored or imported document.
func SaveAll(doc state.Document, rev uint64) []state.Intent {
	intents := make([]state.Intent, 0, len(doc.Pages)+1)
	for i := range doc.Pages {
		intents = append(intents, state.Intent{Type: state.IntentPersistPage, Page: i, Revision: rev})
	}
	return append(intents, state.Intent{Type: state.IntentPersistMeta, Revision: rev})
}

// Load reads a document previously written by a Runner. The second result
// is false when nothing has been stored yet. Pages missing from the store
// load as empty.
func Load(ctx context.Context, store Store) (state.Document, bool, error) {
	raw, ok, err := store.Get(ctx, MetaKey)
	if err != nil {
		return state.Document{}, false, fmt.Errorf("load %s: %w", MetaKey, err)
	}
	if !ok {
		return state.Document{}, false, nil
	}
	var meta state.MetaJSON
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return state.Document{}, false, fmt.Errorf("decode %s: %w", MetaKey, err)
	}
	if meta.Pages < 1 || meta.Current < 0 || meta.Current >= meta.Pages {
		return state.Document{}, false, fmt.Errorf("decode %s: current page %d of %d: %w", MetaKey, meta.Current, meta.Pages, state.ErrOutOfRange)
	}

	doc := state.Document{Pages: make([]state.Page, meta.Pages), Current: meta.Current}
	for i := range doc.Pages {
		key := PageKey(i)
		raw, ok, err := store.Get(ctx, key)
		if err != nil {
			return state.Document{}, false, fmt.Errorf("load %s: %w", key, err)
		}
		if !ok {
			continue
		}
		if err := json.Unmarshal([]byte(raw), &doc.Pages[i]); err != nil {
			return state.Document{}, false, fmt.Errorf("decode %s: %w", key, err)
		}
	}
	log.Printf("[PERSIST] Loaded %d pages", len(doc.Pages))
	return doc, true, nil
}
