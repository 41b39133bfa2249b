package button

import (
	"encoding/json"
	"fmt"
	"os"
)

// Styles resolves per-button shape overrides from the style sheet
// (resources/styles.json). Only buttons that deviate from the stock shape
// appear in the sheet; everything else resolves to the defaults baked in
// here. Unknown identifiers are not an error; an unstyled button is a
// normal button.
type Styles struct {
	rounded map[string]json.RawMessage
	hanging map[string]bool
	shadow  map[string]json.RawMessage
}

type styleSheet struct {
	Rounded map[string]json.RawMessage `json:"rounded"`
	Hanging map[string]bool            `json:"hanging"`
	Shadow  map[string]json.RawMessage `json:"shadow"`
}

// LoadStyles reads and parses a style sheet from disk.
func LoadStyles(path string) (*Styles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseStyles(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// ParseStyles parses a style sheet document. The three tables are all
// optional; a missing table behaves like an empty one.
func ParseStyles(data []byte) (*Styles, error) {
	var sheet styleSheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, err
	}
	s := &Styles{
		rounded: sheet.Rounded,
		hanging: sheet.Hanging,
		shadow:  sheet.Shadow,
	}
	if s.rounded == nil {
		s.rounded = map[string]json.RawMessage{}
	}
	if s.hanging == nil {
		s.hanging = map[string]bool{}
	}
	if s.shadow == nil {
		s.shadow = map[string]json.RawMessage{}
	}
	return s, nil
}

// EmptyStyles returns a sheet with no overrides; every identifier resolves
// to the stock shape.
func EmptyStyles() *Styles {
	return &Styles{
		rounded: map[string]json.RawMessage{},
		hanging: map[string]bool{},
		shadow:  map[string]json.RawMessage{},
	}
}

// Rounded looks up which corners of id are rounded. The sheet may hold a
// single bool (broadcast to all four corners) or an explicit 4-tuple in
// top-left, top-right, bottom-left, bottom-right order. Any other shape,
// and any unknown id, falls back to all corners rounded.
func (s *Styles) Rounded(id string) CornerMask {
	raw, ok := s.rounded[id]
	if !ok {
		return AllCorners
	}
	if flags, err := decodeBoolQuad(raw); err == nil {
		return Corners(flags[0], flags[1], flags[2], flags[3])
	}
	var single bool
	if err := json.Unmarshal(raw, &single); err == nil {
		return AllSame(single)
	}
	return AllCorners
}

// Hanging reports whether id renders with the rope connectors above it.
func (s *Styles) Hanging(id string) bool {
	return s.hanging[id]
}

// Shadows looks up which edges of id carry the shadow tone, in top, left,
// right, bottom order. Only an explicit 4-tuple is accepted; anything else
// falls back to the stock top-left lighting.
func (s *Styles) Shadows(id string) EdgeMask {
	raw, ok := s.shadow[id]
	if !ok {
		return TopLeftShadow
	}
	flags, err := decodeBoolQuad(raw)
	if err != nil {
		return TopLeftShadow
	}
	return Edges(flags[0], flags[1], flags[2], flags[3])
}

// decodeBoolQuad decodes a JSON value that must be exactly four booleans.
func decodeBoolQuad(raw json.RawMessage) ([4]bool, error) {
	var list []bool
	if err := json.Unmarshal(raw, &list); err != nil {
		return [4]bool{}, err
	}
	if len(list) != 4 {
		return [4]bool{}, fmt.Errorf("want 4 flags, got %d", len(list))
	}
	return [4]bool{list[0], list[1], list[2], list[3]}, nil
}
