// Package locale resolves button identifiers to display text from the
// per-language catalogs under resources/languages. Lookup falls back from
// the active locale to the shared symbol-shortcut table and finally to the
// default locale, mirroring how button text degrades when a translation is
// incomplete.
package locale

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// DefaultLocale is the authoring language and the last-resort fallback.
const DefaultLocale = "en-us"

// catalogFile is the per-locale file name inside the languages directory.
const catalogFile = "buttons.json"

// globalShortcuts maps shared iconographic identifiers to glyph tokens.
// These are locale-independent: a pagination arrow is the same arrow in
// every language.
var globalShortcuts = map[string]string{
	"#cat_tab_3_blank_button": "",
	"#cat_tab_4_blank_button": "",
	"#random_dice_button":     "{DICE}",
	"#paw_patrol_button":      "{PATROL_PAW}",
	"#claws_patrol_button":    "{PATROL_CLAW}",
	"#mouse_patrol_button":    "{PATROL_MOUSE}",
	"#herb_patrol_button":     "{PATROL_HERB}",
	"#patrol_last_page":       "{ARROW_LEFT_SHORT}",
	"#patrol_next_page":       "{ARROW_RIGHT_SHORT}",
	"#arrow_right_button":     "{ARROW_RIGHT_SHORT}",
	"#arrow_left_button":      "{ARROW_LEFT_SHORT}",
}

// Catalog holds every loaded language table plus the active locale.
type Catalog struct {
	active string
	tables map[string]map[string]string
}

// New builds a catalog from in-memory tables. Used by tests and by callers
// that embed their strings.
func New(tables map[string]map[string]string, active string) (*Catalog, error) {
	c := &Catalog{active: DefaultLocale, tables: tables}
	if c.tables == nil {
		c.tables = map[string]map[string]string{}
	}
	if err := c.SetLocale(active); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads every <locale>/buttons.json under dir and activates the given
// locale. The default locale must be present: it is the floor every other
// language falls back onto.
func Load(dir, active string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	tables := make(map[string]map[string]string)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name(), catalogFile)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		table := make(map[string]string)
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		tables[e.Name()] = table
	}
	if _, ok := tables[DefaultLocale]; !ok {
		return nil, fmt.Errorf("locale: missing %s catalog under %s", DefaultLocale, dir)
	}
	return New(tables, active)
}

// SetLocale switches the active language. Only loaded locales are accepted.
func (c *Catalog) SetLocale(l string) error {
	if _, ok := c.tables[l]; !ok && l != DefaultLocale {
		return fmt.Errorf("locale: %q not loaded", l)
	}
	c.active = l
	return nil
}

// Locale returns the active locale tag.
func (c *Catalog) Locale() string { return c.active }

// Resolve returns the display text for a button identifier. The bool is
// false only when the identifier is unknown everywhere; an empty string
// with true is a real (blank) label, e.g. the spacer tab buttons.
func (c *Catalog) Resolve(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	if text, ok := c.tables[c.active][id]; ok {
		return text, true
	}
	if text, ok := globalShortcuts[id]; ok {
		return text, true
	}
	if c.active != DefaultLocale {
		if text, ok := c.tables[DefaultLocale][id]; ok {
			zap.L().Warn("translation missing, using default locale",
				zap.String("id", id),
				zap.String("locale", c.active))
			return text, true
		}
	}
	logUnknown(id, c.knownIDs())
	return "", false
}

// knownIDs collects every identifier the catalog could have matched.
func (c *Catalog) knownIDs() []string {
	ids := make([]string, 0, len(c.tables[c.active])+len(globalShortcuts))
	for id := range c.tables[c.active] {
		ids = append(ids, id)
	}
	for id := range globalShortcuts {
		ids = append(ids, id)
	}
	return ids
}

// logUnknown reports an identifier with no text anywhere, suggesting the
// closest known identifier when one is plausibly a typo away.
func logUnknown(id string, known []string) {
	if best, dist := nearest(id, known); dist <= 5 && best != "" {
		zap.L().Warn("button text not found",
			zap.String("id", id),
			zap.String("closest", best))
		return
	}
	zap.L().Warn("button text not found", zap.String("id", id))
}

// nearest returns the known identifier with the smallest edit distance
// from id.
func nearest(id string, known []string) (string, int) {
	best, bestDist := "", -1
	for _, candidate := range known {
		d := levenshtein.ComputeDistance(id, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, bestDist
}
