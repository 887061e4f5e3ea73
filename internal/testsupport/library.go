package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"tooba/internal/config"
)

// WriteFile creates path (and its parents) with the given contents.
func WriteFile(t testing.TB, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteMedia creates an empty placeholder media file at path.
func WriteMedia(t testing.TB, path string) {
	t.Helper()
	WriteFile(t, path, "media")
}

// WriteShowNFO creates a tvshow descriptor at path.
func WriteShowNFO(t testing.TB, path, title, plot, thumb string) {
	t.Helper()
	WriteFile(t, path, `<tvshow><title>`+title+`</title><plot>`+plot+`</plot><thumb>`+thumb+`</thumb></tvshow>`)
}

// WriteEpisodeNFO creates an episodedetails descriptor at path.
func WriteEpisodeNFO(t testing.TB, path, showTitle, title, season, episode string) {
	t.Helper()
	WriteFile(t, path, `<episodedetails><showtitle>`+showTitle+`</showtitle><title>`+title+
		`</title><season>`+season+`</season><episode>`+episode+
		`</episode><plot>plot</plot><aired>2020-01-01</aired></episodedetails>`)
}

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.Bind = "127.0.0.1:0"
	if err := os.MkdirAll(cfg.Paths.LibraryDir, 0o755); err != nil {
		t.Fatalf("mkdir library: %v", err)
	}
	return &cfg
}
