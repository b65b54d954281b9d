package i18n

import "testing"

func loadBundle(t *testing.T) *Bundle {
	t.Helper()
	b, err := Load("../../locales", "pt", []string{"pt", "en"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return b
}

func TestResolveHonorsQValues(t *testing.T) {
	b := loadBundle(t)
	if got := b.Resolve("pt;q=0.8, en;q=0.9"); got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
}

func TestResolveRegionalTagAndFallback(t *testing.T) {
	b := loadBundle(t)
	if got := b.Resolve("pt-BR,pt;q=0.9"); got != "pt" {
		t.Fatalf("expected pt, got %s", got)
	}
	if got := b.Resolve("fr-FR, de;q=0.5"); got != "pt" {
		t.Fatalf("expected fallback pt, got %s", got)
	}
	if got := b.Resolve("en;q=0, pt;q=0.1"); got != "pt" {
		t.Fatalf("expected q=0 to be ignored, got %s", got)
	}
}

func TestTranslateFallsBack(t *testing.T) {
	b := loadBundle(t)
	if got := b.T("en", "gallery.close"); got != "Close" {
		t.Fatalf("expected Close, got %q", got)
	}
	if got := b.T("pt-BR", "gallery.close"); got != "Fechar" {
		t.Fatalf("expected Fechar, got %q", got)
	}
	if got := b.T("fr", "gallery.close"); got != "Fechar" {
		t.Fatalf("expected fallback Fechar, got %q", got)
	}
	if got := b.T("en", "missing.key"); got != "missing.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}

func TestLoadRequiresFallbackFile(t *testing.T) {
	if _, err := Load(t.TempDir(), "pt", nil); err == nil {
		t.Fatalf("expected error when fallback locale file is missing")
	}
}

func TestResolveSkipsUnsupportedPreferences(t *testing.T) {
	b := loadBundle(t)
	if got := b.Resolve("fr-CA, en;q=0.7, pt;q=0.3"); got != "en" {
		t.Fatalf("expected en, got %s", got)
	}
	if got := b.Resolve("not a header;;"); got != "pt" {
		t.Fatalf("expected fallback for garbage, got %s", got)
	}
	if got := b.Resolve(""); got != "pt" {
		t.Fatalf("expected fallback for empty header, got %s", got)
	}
}
