package locale

import (
	"os"
	"path/filepath"
	"testing"
)

func testCatalog(t *testing.T, active string) *Catalog {
	t.Helper()
	c, err := New(map[string]map[string]string{
		"en-us": {
			"#continue_button": "Continue",
			"#quit_button":     "Quit",
		},
		"pt-br": {
			"#continue_button": "Continuar",
		},
	}, active)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestResolveActiveLocaleWins(t *testing.T) {
	c := testCatalog(t, "pt-br")
	if text, ok := c.Resolve("#continue_button"); !ok || text != "Continuar" {
		t.Fatalf("Resolve = %q, %v", text, ok)
	}
}

func TestResolveFallsBackToDefaultLocale(t *testing.T) {
	c := testCatalog(t, "pt-br")
	// pt-br has no quit entry; the en-us text fills the gap.
	if text, ok := c.Resolve("#quit_button"); !ok || text != "Quit" {
		t.Fatalf("Resolve = %q, %v", text, ok)
	}
}

func TestResolveGlobalShortcutsBeatDefaultLocale(t *testing.T) {
	c := testCatalog(t, "pt-br")
	if text, ok := c.Resolve("#random_dice_button"); !ok || text != "{DICE}" {
		t.Fatalf("Resolve = %q, %v", text, ok)
	}
	// Blank spacer tabs resolve to an empty label, which is still a hit.
	if text, ok := c.Resolve("#cat_tab_3_blank_button"); !ok || text != "" {
		t.Fatalf("Resolve = %q, %v", text, ok)
	}
}

func TestResolveUnknownIdentifier(t *testing.T) {
	c := testCatalog(t, "en-us")
	if _, ok := c.Resolve("#no_such_button"); ok {
		t.Fatalf("unknown identifiers must miss")
	}
	if _, ok := c.Resolve(""); ok {
		t.Fatalf("empty identifiers must miss")
	}
}

func TestSetLocaleRejectsUnloadedLanguages(t *testing.T) {
	c := testCatalog(t, "en-us")
	if err := c.SetLocale("fr-fr"); err == nil {
		t.Fatalf("expected an error for an unloaded locale")
	}
	if c.Locale() != "en-us" {
		t.Fatalf("failed switches must leave the active locale alone")
	}
	if err := c.SetLocale("pt-br"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	if c.Locale() != "pt-br" {
		t.Fatalf("Locale() = %q after switch", c.Locale())
	}
}

func TestLoadReadsPerLocaleCatalogs(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en-us", `{"#quit_button": "Quit"}`)
	writeCatalog(t, dir, "pt-br", `{"#quit_button": "Sair"}`)
	// Directories without a catalog file are skipped, not an error.
	if err := os.MkdirAll(filepath.Join(dir, "de-de"), 0o755); err != nil {
		t.Fatal(err)
	}

	c, err := Load(dir, "pt-br")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if text, _ := c.Resolve("#quit_button"); text != "Sair" {
		t.Fatalf("Resolve = %q, want pt-br text", text)
	}
}

func TestLoadRequiresDefaultLocale(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "pt-br", `{"#quit_button": "Sair"}`)

	if _, err := Load(dir, "pt-br"); err == nil {
		t.Fatalf("a language pack without %s must be rejected", DefaultLocale)
	}
}

func writeCatalog(t *testing.T, dir, tag, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(dir, tag), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, tag, "buttons.json"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}
