package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesOnlyNamedFields(t *testing.T) {
	EnableNMP = true
	ProbcutDepth = 5
	defer func() {
		EnableNMP = true
		ProbcutDepth = 5
	}()

	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.json")
	if err := os.WriteFile(path, []byte(`{"enable_nmp": false, "probcut_depth": 7}`), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if EnableNMP {
		t.Errorf("EnableNMP = true, want false")
	}
	if ProbcutDepth != 7 {
		t.Errorf("ProbcutDepth = %d, want 7", ProbcutDepth)
	}
	if !EnableRazoring {
		t.Errorf("EnableRazoring should be untouched by a file that doesn't name it")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing tuning file")
	}
}
