package board

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDisplayTable_CoversEveryTerrain(t *testing.T) {
	table := DefaultDisplayTable()
	for _, terrain := range []Terrain{Wood, Wheat, Sheep, Ore, Brick, Desert} {
		display, ok := table[terrain]
		if !ok || display.Color == "" {
			t.Errorf("terrain %s has no default color", terrain)
		}
	}
}

func TestLoadDisplayTable_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.json")
	content := `{
		"wood":  {"color": "#123456", "texture": "textures/forest.jpg"},
		"brick": {"texture": "textures/clay.jpg"}
	}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	table, err := LoadDisplayTable(path)
	if err != nil {
		t.Fatalf("LoadDisplayTable failed: %v", err)
	}

	if table[Wood].Color != "#123456" || table[Wood].Texture != "textures/forest.jpg" {
		t.Errorf("wood override not applied: %+v", table[Wood])
	}
	// Texture-only overrides keep the default color.
	if table[Brick].Color != DefaultDisplayTable()[Brick].Color {
		t.Errorf("brick lost its default color: %+v", table[Brick])
	}
	if table[Brick].Texture != "textures/clay.jpg" {
		t.Errorf("brick texture override not applied: %+v", table[Brick])
	}
	if table[Sheep] != DefaultDisplayTable()[Sheep] {
		t.Errorf("untouched terrain changed: %+v", table[Sheep])
	}
}

func TestLoadDisplayTable_RejectsUnknownTerrain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.json")
	if err := os.WriteFile(path, []byte(`{"lava": {"color": "#ff0000"}}`), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := LoadDisplayTable(path); err == nil {
		t.Fatalf("expected an error for an unknown terrain name")
	}
}

func TestLoadDisplayTable_MissingFile(t *testing.T) {
	if _, err := LoadDisplayTable(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
