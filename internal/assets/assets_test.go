package assets

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCopy(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeFile(t, filepath.Join(src, "img", "hero.jpg"), "jpeg")
	writeFile(t, filepath.Join(src, "img", "projects", "oak.jpg"), "oak")
	writeFile(t, filepath.Join(src, "favicon.ico"), "ico")
	writeFile(t, filepath.Join(src, "img", "source.psd"), "layers")
	writeFile(t, filepath.Join(src, ".DS_Store"), "junk")
	writeFile(t, filepath.Join(src, "node_modules", "x.js"), "js")

	files, err := Copy(Options{
		Src:     src,
		Dst:     dst,
		Include: []string{"**"},
		Exclude: []string{".DS_Store", "**/*.psd"},
	})
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}

	var got []string
	for _, f := range files {
		got = append(got, f.RelPath)
		if !f.Copied {
			t.Errorf("%s not copied on first run", f.RelPath)
		}
	}
	sort.Strings(got)
	want := []string{"favicon.ico", "img/hero.jpg", "img/projects/oak.jpg"}
	if len(got) != len(want) {
		t.Fatalf("copied %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("copied[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	data, err := os.ReadFile(filepath.Join(dst, "img", "projects", "oak.jpg"))
	if err != nil || string(data) != "oak" {
		t.Errorf("oak.jpg = %q, %v", data, err)
	}
	if _, err := os.Stat(filepath.Join(dst, "img", "source.psd")); !os.IsNotExist(err) {
		t.Error("excluded file was copied")
	}
}

func TestCopySkipsUnchanged(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "one")
	writeFile(t, filepath.Join(src, "b.txt"), "two")

	if _, err := Copy(Options{Src: src, Dst: dst}); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(src, "b.txt"), "changed")

	files, err := Copy(Options{Src: src, Dst: dst})
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range files {
		switch f.RelPath {
		case "a.txt":
			if f.Copied {
				t.Error("unchanged a.txt copied again")
			}
		case "b.txt":
			if !f.Copied {
				t.Error("changed b.txt not copied")
			}
		}
	}
}

func TestCopyMissingSource(t *testing.T) {
	files, err := Copy(Options{Src: filepath.Join(t.TempDir(), "nope"), Dst: t.TempDir()})
	if err != nil || files != nil {
		t.Errorf("Copy = %v, %v; want nil, nil", files, err)
	}
}

func TestMatchesExclude(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"img/a.psd", []string{"*.psd"}, true},
		{"img/a.jpg", []string{"*.psd"}, false},
		{"deep/dir/Thumbs.db", []string{"**/Thumbs.db"}, true},
		{"drafts/x.jpg", []string{"drafts/**"}, true},
		{"x.jpg", nil, false},
	}
	for _, tt := range tests {
		if got := MatchesExclude(tt.path, tt.patterns); got != tt.want {
			t.Errorf("MatchesExclude(%q, %v) = %v, want %v", tt.path, tt.patterns, got, tt.want)
		}
	}
}

func TestHashBytes(t *testing.T) {
	a := HashBytes([]byte("body{}"))
	if len(a) != 10 {
		t.Errorf("len = %d, want 10", len(a))
	}
	if a == HashBytes([]byte("body{ }")) {
		t.Error("different content produced the same fingerprint")
	}
}
