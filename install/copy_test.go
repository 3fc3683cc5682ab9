package install

import (
	"os"
	"path/filepath"
	"testing"
)

func writePack(t *testing.T) string {
	t.Helper()
	src := t.TempDir()

	files := map[string]string{
		"maps/cp_example.bsp":      "bsp data here",
		"maps/cp_example.nav":      "server only",
		"scripts/population/x.pop": "server only too",
		"materials/models/tex.vmt": "vmt",
		"materials/models/tex.vtf": "vtf data",
	}
	for rel, content := range files {
		path := filepath.Join(src, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return src
}

func TestPlanSkipsServerOnlyFiles(t *testing.T) {
	plan, err := Plan(writePack(t))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	var total int64
	for _, f := range plan.Files {
		ext := filepath.Ext(f.Rel)
		if ext == ".nav" || ext == ".pop" {
			t.Errorf("server-only file planned: %s", f.Rel)
		}
		total += f.Size
	}
	if len(plan.Files) != 3 {
		t.Errorf("got %d files, want 3", len(plan.Files))
	}
	if plan.TotalBytes != total {
		t.Errorf("TotalBytes %d != sum of file sizes %d", plan.TotalBytes, total)
	}
}

func TestRunCopiesAndReportsProgress(t *testing.T) {
	src := writePack(t)
	dst := t.TempDir()

	plan, err := Plan(src)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	var events []Event
	err = plan.Run(dst, func(ev Event) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(events) != len(plan.Files) {
		t.Fatalf("got %d events, want %d", len(events), len(plan.Files))
	}
	if events[0].CopiedBytes != 0 {
		t.Errorf("first event should start at 0 bytes, got %d", events[0].CopiedBytes)
	}
	var copied int64
	for i, ev := range events {
		if ev.CopiedBytes != copied {
			t.Errorf("event %d: CopiedBytes %d, want %d", i, ev.CopiedBytes, copied)
		}
		if ev.TotalBytes != plan.TotalBytes {
			t.Errorf("event %d: TotalBytes %d, want %d", i, ev.TotalBytes, plan.TotalBytes)
		}
		copied += plan.Files[i].Size
	}
	if copied != plan.TotalBytes {
		t.Errorf("copied %d bytes, want %d", copied, plan.TotalBytes)
	}

	for _, f := range plan.Files {
		want, err := os.ReadFile(filepath.Join(src, f.Rel))
		if err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(filepath.Join(dst, f.Rel))
		if err != nil {
			t.Fatalf("missing copied file %s: %v", f.Rel, err)
		}
		if string(got) != string(want) {
			t.Errorf("%s: content mismatch", f.Rel)
		}
	}

	// Filtered files must not be copied.
	if _, err := os.Stat(filepath.Join(dst, "maps", "cp_example.nav")); !os.IsNotExist(err) {
		t.Error("server-only .nav file was copied")
	}
}

func TestRunOverwriteCopiesMode(t *testing.T) {
	src := writePack(t)
	dst := t.TempDir()

	// Pre-existing destination file with different content and mode.
	existing := filepath.Join(dst, "maps", "cp_example.bsp")
	if err := os.MkdirAll(filepath.Dir(existing), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}

	plan, err := Plan(src)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if err := plan.Run(dst, nil); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "bsp data here" {
		t.Errorf("content not overwritten: %q", got)
	}
	fi, err := os.Stat(existing)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o644 {
		t.Errorf("mode: got %v, want 0644 (copied from source)", fi.Mode().Perm())
	}
}

func TestRunNilProgress(t *testing.T) {
	plan, err := Plan(writePack(t))
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if err := plan.Run(t.TempDir(), nil); err != nil {
		t.Fatalf("Run with nil progress: %v", err)
	}
}

func TestEventPercent(t *testing.T) {
	if got := (Event{CopiedBytes: 50, TotalBytes: 200}).Percent(); got != 25 {
		t.Errorf("Percent: got %v, want 25", got)
	}
	if got := (Event{}).Percent(); got != 100 {
		t.Errorf("empty plan Percent: got %v, want 100", got)
	}
}
