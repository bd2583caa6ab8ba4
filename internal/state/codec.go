package state

import (
	"encoding/json"
	"fmt"

	"LocalBoard/internal/geometry"
)

// DocumentVersion is written into every encoded document.
const DocumentVersion = 1

type strokeJSON struct {
	ID     string          `json:"id,omitempty"`
	Kind   geometry.Kind   `json:"kind"`
	Params json.RawMessage `json:"params"`
	Color  string          `json:"color"`
	Width  float64         `json:"width"`
}

type documentJSON struct {
	Version int    `json:"version"`
	Current int    `json:"current"`
	Pages   []Page `json:"pages"`
}

// MetaJSON is the persisted summary of a document without its strokes.
type MetaJSON struct {
	Pages   int `json:"pages"`
	Current int `json:"current"`
}

// MarshalJSON encodes the stroke as {id, kind, params, color, width}.
func (st Stroke) MarshalJSON() ([]byte, error) {
	params, err := st.Path.MarshalParams()
	if err != nil {
		return nil, err
	}
	return json.Marshal(strokeJSON{
		ID:     st.ID,
		Kind:   st.Path.Kind,
		Params: params,
		Color:  st.Color,
		Width:  st.Width,
	})
}

func (st *Stroke) UnmarshalJSON(data []byte) error {
	var v strokeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	path, err := geometry.UnmarshalParams(v.Kind, v.Params)
	if err != nil {
		return err
	}
	if v.Width <= 0 {
		return fmt.Errorf("stroke %s has non-positive width %v", v.ID, v.Width)
	}
	*st = Stroke{ID: v.ID, Path: path, Color: v.Color, Width: v.Width}
	return nil
}

// MarshalJSON encodes an empty page as [] rather than null.
func (p Page) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Stroke(p))
}

func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{Version: DocumentVersion, Current: d.Current, Pages: d.Pages})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var v documentJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Version != DocumentVersion {
		return fmt.Errorf("unsupported document version %d", v.Version)
	}
	if len(v.Pages) == 0 {
		return fmt.Errorf("document has no pages")
	}
	if v.Current < 0 || v.Current >= len(v.Pages) {
		return fmt.Errorf("current page %d of %d: %w", v.Current, len(v.Pages), ErrOutOfRange)
	}
	*d = Document{Pages: v.Pages, Current: v.Current}
	return nil
}
