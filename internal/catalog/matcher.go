package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tooba/internal/nfo"
	"tooba/internal/textutil"
)

// errFoundMatch stops a library walk once a strategy has produced a hit.
var errFoundMatch = errors.New("match found")

// MatchFile locates the media file most likely described by the descriptor
// at nfoPath, trying strategies in order and stopping at the first hit:
//
//  1. A sibling of the descriptor with an accepted extension substituted,
//     in extension-slice order.
//  2. Any file under the library root whose name starts with the
//     descriptor's stem and whose extension is accepted, in traversal
//     order.
//  3. For episodes only, a fuzzy match: the file's normalized
//     library-relative stem must contain the normalized show title and
//     either the normalized episode title or an s{season}e{episode}
//     pattern (unpadded or zero-padded to two digits).
//
// Extension comparison is case-insensitive; the accepted extensions are
// expected in lowercase dotted form. The empty result is not an error: it
// is the valid unresolved state. A non-nil error only reports a failed
// library walk.
func MatchFile(library, nfoPath string, desc nfo.Descriptor, exts []string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(nfoPath), filepath.Ext(nfoPath))

	// 1) Neighbour with the same stem.
	withoutExt := strings.TrimSuffix(nfoPath, filepath.Ext(nfoPath))
	for _, ext := range exts {
		candidate := withoutExt + ext
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}

	// 2) Same stem anywhere under the library root.
	if found, err := walkLibrary(library, func(path, name string) bool {
		return strings.HasPrefix(name, stem) && acceptedExt(name, exts)
	}); err != nil || found != "" {
		return found, err
	}

	// 3) Fuzzy match, episodes only.
	if desc.Kind != nfo.KindEpisode {
		return "", nil
	}

	show := textutil.Normalize(desc.ShowTitle)
	title := textutil.Normalize(desc.Title)
	patterns := seasonEpisodePatterns(desc.Season, desc.Episode)

	return walkLibrary(library, func(path, name string) bool {
		if !acceptedExt(name, exts) {
			return false
		}
		haystack := textutil.Normalize(relativeStem(library, path))
		if !strings.Contains(haystack, show) {
			return false
		}
		if strings.Contains(haystack, title) {
			return true
		}
		for _, pattern := range patterns {
			if strings.Contains(haystack, pattern) {
				return true
			}
		}
		return false
	})
}

// relativeStem returns path relative to the library root with the file
// extension stripped. Fuzzy comparison runs against this full relative
// form so a show title that only appears in a directory name ("My
// Show/myshow.s01e01.mkv") still matches.
func relativeStem(library, path string) string {
	rel, err := filepath.Rel(library, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	return strings.TrimSuffix(rel, filepath.Ext(rel))
}

// seasonEpisodePatterns builds the token set a fuzzy match accepts in place
// of the episode title: the raw values and the two-digit zero-padded form.
func seasonEpisodePatterns(season, episode string) []string {
	plain := "s" + season + "e" + episode
	padded := "s" + zfill(season, 2) + "e" + zfill(episode, 2)
	if padded == plain {
		return []string{plain}
	}
	return []string{plain, padded}
}

// zfill left-pads value with zeros to the requested width.
func zfill(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return strings.Repeat("0", width-len(value)) + value
}

func acceptedExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range exts {
		if ext == accepted {
			return true
		}
	}
	return false
}

// walkLibrary returns the first regular file under root satisfying match,
// in traversal order, or "" when none does.
func walkLibrary(root string, match func(path, name string) bool) (string, error) {
	var found string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if match(path, entry.Name()) {
			found = path
			return errFoundMatch
		}
		return nil
	})
	if errors.Is(err, errFoundMatch) {
		return found, nil
	}
	if err != nil {
		return "", err
	}
	return "", nil
}
