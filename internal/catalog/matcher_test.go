package catalog

import (
	"path/filepath"
	"testing"

	"tooba/internal/nfo"
	"tooba/internal/testsupport"
)

var videoExts = []string{".mp4", ".webm", ".mkv", ".avi"}

func episodeDesc(show, title, season, episode string) nfo.Descriptor {
	return nfo.Descriptor{
		Kind:      nfo.KindEpisode,
		ShowTitle: show,
		Title:     title,
		Season:    season,
		Episode:   episode,
	}
}

func TestMatchFileSibling(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "Show", "ep.nfo")
	sibling := filepath.Join(library, "Show", "ep.mp4")
	testsupport.WriteMedia(t, sibling)
	// A decoy elsewhere in the library must not be considered once the
	// sibling matches.
	testsupport.WriteMedia(t, filepath.Join(library, "Other", "ep.mp4"))

	got, err := MatchFile(library, nfoPath, episodeDesc("Show", "Pilot", "1", "1"), videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	if got != sibling {
		t.Fatalf("got %q, want sibling %q", got, sibling)
	}
}

func TestMatchFileSiblingExtensionOrder(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "Show", "ep.nfo")
	testsupport.WriteMedia(t, filepath.Join(library, "Show", "ep.mp4"))
	testsupport.WriteMedia(t, filepath.Join(library, "Show", "ep.mkv"))

	got, err := MatchFile(library, nfoPath, episodeDesc("Show", "Pilot", "1", "1"), videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	// .mp4 precedes .mkv in the accepted slice.
	if filepath.Ext(got) != ".mp4" {
		t.Fatalf("got %q, want the first accepted extension", got)
	}
}

func TestMatchFileStemAnywhere(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "meta", "s01e01.nfo")
	testsupport.WriteFile(t, nfoPath, "ignored")
	target := filepath.Join(library, "videos", "s01e01 - Pilot.mkv")
	testsupport.WriteMedia(t, target)

	got, err := MatchFile(library, nfoPath, episodeDesc("Show", "Pilot", "1", "1"), videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	if got != target {
		t.Fatalf("got %q, want stem match %q", got, target)
	}
}

func TestMatchFileStemIgnoresWrongExtension(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "meta", "ep.nfo")
	testsupport.WriteFile(t, nfoPath, "ignored")
	testsupport.WriteMedia(t, filepath.Join(library, "ep.srt"))

	got, err := MatchFile(library, nfoPath, nfo.Descriptor{Kind: nfo.KindShow, Title: "Show"}, videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want no match", got)
	}
}

func TestMatchFileFuzzyZeroPaddedPattern(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "My Show", "whatever.nfo")
	testsupport.WriteFile(t, nfoPath, "ignored")
	// Neither the stem "whatever" nor the title "Pilot" appears in the
	// filename; only the padded s01e01 pattern can match.
	target := filepath.Join(library, "My Show", "myshow.s01e01.mkv")
	testsupport.WriteMedia(t, target)

	got, err := MatchFile(library, nfoPath, episodeDesc("My Show", "Pilot", "1", "1"), videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	if got != target {
		t.Fatalf("got %q, want fuzzy match %q", got, target)
	}
}

func TestMatchFileFuzzyUnpaddedPattern(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "meta", "x.nfo")
	testsupport.WriteFile(t, nfoPath, "ignored")
	target := filepath.Join(library, "My Show s1e1.avi")
	testsupport.WriteMedia(t, target)

	got, err := MatchFile(library, nfoPath, episodeDesc("My Show", "Pilot", "1", "1"), videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	if got != target {
		t.Fatalf("got %q, want %q", got, target)
	}
}

func TestMatchFileFuzzyEpisodeTitle(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "meta", "x.nfo")
	testsupport.WriteFile(t, nfoPath, "ignored")
	target := filepath.Join(library, "Mon Épisode", "mon.episode.the pilot.webm")
	testsupport.WriteMedia(t, target)

	// Accents in the show title normalize away before comparison.
	got, err := MatchFile(library, nfoPath, episodeDesc("Mon Épisode", "The Pilot", "3", "9"), videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	if got != target {
		t.Fatalf("got %q, want %q", got, target)
	}
}

func TestMatchFileFuzzyRequiresShowToken(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "meta", "x.nfo")
	testsupport.WriteFile(t, nfoPath, "ignored")
	testsupport.WriteMedia(t, filepath.Join(library, "unrelated.s01e01.mkv"))

	got, err := MatchFile(library, nfoPath, episodeDesc("My Show", "Pilot", "1", "1"), videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want no match without the show token", got)
	}
}

func TestMatchFileFuzzySkippedForShows(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "meta", "x.nfo")
	testsupport.WriteFile(t, nfoPath, "ignored")
	testsupport.WriteMedia(t, filepath.Join(library, "My Show.s01e01.mkv"))

	desc := nfo.Descriptor{Kind: nfo.KindShow, Title: "My Show"}
	got, err := MatchFile(library, nfoPath, desc, videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, shows must never reach the fuzzy stage", got)
	}
}

func TestMatchFileUnresolved(t *testing.T) {
	library := t.TempDir()
	nfoPath := filepath.Join(library, "lonely.nfo")
	testsupport.WriteFile(t, nfoPath, "ignored")

	got, err := MatchFile(library, nfoPath, episodeDesc("Show", "Pilot", "1", "1"), videoExts)
	if err != nil {
		t.Fatalf("MatchFile: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want unresolved", got)
	}
}

func TestSeasonEpisodePatterns(t *testing.T) {
	tests := []struct {
		season, episode string
		want            []string
	}{
		{"1", "1", []string{"s1e1", "s01e01"}},
		{"10", "2", []string{"s10e2", "s10e02"}},
		{"01", "02", []string{"s01e02"}},
	}

	for _, tt := range tests {
		got := seasonEpisodePatterns(tt.season, tt.episode)
		if len(got) != len(tt.want) {
			t.Errorf("patterns(%q, %q) = %v, want %v", tt.season, tt.episode, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("patterns(%q, %q) = %v, want %v", tt.season, tt.episode, got, tt.want)
				break
			}
		}
	}
}
