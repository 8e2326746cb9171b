package generator

import (
	"strings"
	"testing"
)

func TestPaletteForGreen(t *testing.T) {
	p := PaletteFor("green")
	if p.Primary != "#10b981" {
		t.Errorf("green primary = %q, want #10b981", p.Primary)
	}
	if p.Secondary != "#047857" {
		t.Errorf("green secondary = %q, want #047857", p.Secondary)
	}
}

func TestPaletteForUnknownFallsBackToDark(t *testing.T) {
	dark := PaletteFor("dark")
	for _, name := range []string{"", "neon", "DARK"} {
		got := PaletteFor(name)
		if got != dark {
			t.Errorf("PaletteFor(%q) = %+v, want dark palette", name, got)
		}
	}
}

func TestThemesOrder(t *testing.T) {
	names := Themes()
	if len(names) != 5 {
		t.Fatalf("theme count = %d, want 5", len(names))
	}
	if names[0] != "dark" {
		t.Errorf("first theme = %q, want dark (the fallback)", names[0])
	}
}

func TestGeneratedStyleCarriesPalette(t *testing.T) {
	snap := headerOnlySnapshot()
	snap.Theme = "green"

	doc, err := Generate(snap)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(doc, "#10b981") || !strings.Contains(doc, "#047857") {
		t.Error("green palette values missing from the embedded style block")
	}

	snap.Theme = "does-not-exist"
	doc, err = Generate(snap)
	if err != nil {
		t.Fatal(err)
	}
	dark := PaletteFor("dark")
	if !strings.Contains(doc, dark.Primary) {
		t.Error("unknown theme should fall back to the dark palette")
	}
}
