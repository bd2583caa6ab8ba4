package geometry

import (
	"encoding/json"
	"fmt"
)

type freehandParams struct {
	Points []Point `json:"points"`
}

type lineParams struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

type rectangleParams struct {
	Origin Point   `json:"origin"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type squareParams struct {
	Origin Point   `json:"origin"`
	Size   float64 `json:"size"`
	SignX  float64 `json:"sign_x"`
	SignY  float64 `json:"sign_y"`
}

type circleParams struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// MarshalParams encodes the kind-specific parameters of p as a JSON object.
func (p Path) MarshalParams() (json.RawMessage, error) {
	var v any
	switch p.Kind {
	case KindFreehand:
		v = freehandParams{Points: p.Points}
	case KindLine:
		v = lineParams{From: p.From, To: p.To}
	case KindRectangle:
		v = rectangleParams{Origin: p.Origin, Width: p.Width, Height: p.Height}
	case KindSquare:
		v = squareParams{Origin: p.Origin, Size: p.Size, SignX: p.SignX, SignY: p.SignY}
	case KindCircle:
		v = circleParams{Center: p.Center, Radius: p.Radius}
	default:
		return nil, fmt.Errorf("unknown path kind %q", p.Kind)
	}
	return json.Marshal(v)
}

// UnmarshalParams is the inverse of MarshalParams. The decoded path is
// validated before it is returned.
func UnmarshalParams(kind Kind, raw json.RawMessage) (Path, error) {
	var p Path
	switch kind {
	case KindFreehand:
		var v freehandParams
		if err := json.Unmarshal(raw, &v); err != nil {
			return Path{}, fmt.Errorf("decode %s params: %w", kind, err)
		}
		p = Path{Kind: kind, Points: v.Points}
	case KindLine:
		var v lineParams
		if err := json.Unmarshal(raw, &v); err != nil {
			return Path{}, fmt.Errorf("decode %s params: %w", kind, err)
		}
		p = Line(v.From, v.To)
	case KindRectangle:
		var v rectangleParams
		if err := json.Unmarshal(raw, &v); err != nil {
			return Path{}, fmt.Errorf("decode %s params: %w", kind, err)
		}
		p = Rectangle(v.Origin, v.Width, v.Height)
	case KindSquare:
		var v squareParams
		if err := json.Unmarshal(raw, &v); err != nil {
			return Path{}, fmt.Errorf("decode %s params: %w", kind, err)
		}
		p = Path{Kind: kind, Origin: v.Origin, Size: v.Size, SignX: v.SignX, SignY: v.SignY}
	case KindCircle:
		var v circleParams
		if err := json.Unmarshal(raw, &v); err != nil {
			return Path{}, fmt.Errorf("decode %s params: %w", kind, err)
		}
		p = Path{Kind: kind, Center: v.Center, Radius: v.Radius}
	default:
		return Path{}, fmt.Errorf("unknown path kind %q", kind)
	}
	if err := p.Validate(); err != nil {
		return Path{}, err
	}
	return p, nil
}
