package reconcile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBuildSGCIndex(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("a.json", `[{"numero_radicado": "RAD-001", "numero_reclamo_sgc": "SGC-1"}]`)
	write("b.json", `{"numero_radicado": "RAD-002", "numero_reclamo_sgc": "SGC-2"}`)
	// later declaration for RAD-001 must not override the first
	write("c.json", `[{"numero_radicado": "RAD-001", "numero_reclamo_sgc": "SGC-99"}]`)
	write("broken.json", `{`)
	write("nosgc.json", `{"numero_radicado": "RAD-003"}`)

	idx := buildSGCIndex(dir)

	if got := idx["RAD-001"]; got != "SGC-1" {
		t.Errorf("RAD-001 = %q, want first declaration kept", got)
	}
	if got := idx["RAD-002"]; got != "SGC-2" {
		t.Errorf("RAD-002 = %q", got)
	}
	if _, ok := idx["RAD-003"]; ok {
		t.Error("record without sgc must stay unresolved")
	}
}

func TestBuildSGCIndexMissingDir(t *testing.T) {
	idx := buildSGCIndex(filepath.Join(t.TempDir(), "nope"))
	if len(idx) != 0 {
		t.Errorf("missing dir should yield an empty index, got %v", idx)
	}
}

func TestGlobClaimFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"SGC-1_data_x.json",
		"SGC-1_escrito.pdf",
		"SGC-1_adjunto_1.jpg",
		"SGC-1_nota.exe", // extension outside the allowed set
		"SGC-2_escrito.pdf",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files := globClaimFiles(dir, "SGC-1")
	if len(files) != 3 {
		t.Fatalf("got %d files %v, want 3", len(files), files)
	}
	// deterministic order
	for i := 1; i < len(files); i++ {
		if files[i-1] > files[i] {
			t.Errorf("files not sorted: %v", files)
		}
	}
	for _, f := range files {
		base := filepath.Base(f)
		if base == "SGC-2_escrito.pdf" || base == "SGC-1_nota.exe" {
			t.Errorf("unexpected file %s", base)
		}
	}
}
