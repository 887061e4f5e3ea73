package catalog

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"tooba/internal/config"
	"tooba/internal/logging"
	"tooba/internal/nfo"
)

// descriptorExt is the sidecar extension a scan looks for.
const descriptorExt = ".nfo"

// Scanner walks a library root and assembles the catalog from every
// descriptor it finds. A scan is a pure function of the filesystem state
// at the time it runs; nothing is persisted.
type Scanner struct {
	library   string
	videoExts []string
	thumbExts []string
	logger    *slog.Logger
}

// NewScanner builds a scanner from application configuration.
func NewScanner(cfg *config.Config, logger *slog.Logger) *Scanner {
	return &Scanner{
		library:   cfg.Paths.LibraryDir,
		videoExts: cfg.Library.VideoExtensions,
		thumbExts: cfg.Library.ThumbExtensions,
		logger:    logging.NewComponentLogger(logger, "scanner"),
	}
}

// Scan enumerates every descriptor under the library root and builds the
// catalog. Malformed or unrecognized descriptors are skipped silently;
// walk errors abort the scan.
func (s *Scanner) Scan(ctx context.Context) (*Catalog, error) {
	started := time.Now()
	result := newCatalog()

	err := filepath.WalkDir(s.library, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), descriptorExt) {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		return s.scanDescriptor(result, path)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("library scan complete",
		logging.String("library", s.library),
		logging.Int("shows", result.ShowCount()),
		logging.Int("episodes", result.EpisodeCount()),
		logging.Duration("elapsed", time.Since(started)))
	return result, nil
}

func (s *Scanner) scanDescriptor(result *Catalog, path string) error {
	desc := nfo.Parse(path)
	switch desc.Kind {
	case nfo.KindShow:
		result.upsertShow(desc.Title, desc.Plot, desc.Thumb)
		s.logger.Debug("show descriptor",
			logging.String("path", path),
			logging.String(logging.FieldShowKey, ShowKey(desc.Title)))
	case nfo.KindEpisode:
		video, err := MatchFile(s.library, path, desc, s.videoExts)
		if err != nil {
			return err
		}
		thumb, err := MatchFile(s.library, path, desc, s.thumbExts)
		if err != nil {
			return err
		}
		ep := Episode{
			ShowTitle: desc.ShowTitle,
			Title:     desc.Title,
			Season:    desc.Season,
			Episode:   desc.Episode,
			Plot:      desc.Plot,
			Aired:     desc.Aired,
			VideoFile: video,
			Thumbnail: thumb,
		}
		result.appendEpisode(ep)
		s.logger.Debug("episode descriptor",
			logging.String("path", path),
			logging.String(logging.FieldEpisodeKey, ep.Key()),
			logging.Bool("video_resolved", video != ""),
			logging.Bool("thumb_resolved", thumb != ""))
	default:
		// Unrecognized descriptors are skipped without a report.
		s.logger.Debug("descriptor skipped", logging.String("path", path))
	}
	return nil
}
