package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tooba/internal/catalog"
	"tooba/internal/logging"
)

type scanEpisodeJSON struct {
	Key       string `json:"key"`
	Season    string `json:"season"`
	Episode   string `json:"episode"`
	Title     string `json:"title"`
	Aired     string `json:"aired,omitempty"`
	VideoFile string `json:"video_file,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type scanShowJSON struct {
	Key      string            `json:"key"`
	Title    string            `json:"title"`
	Plot     string            `json:"plot,omitempty"`
	Episodes []scanEpisodeJSON `json:"episodes"`
}

func newScanCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the library once and report what was found",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			scanner := catalog.NewScanner(cfg, logging.NewNop())
			result, err := scanner.Scan(cmd.Context())
			if err != nil {
				return fmt.Errorf("scan library: %w", err)
			}

			if asJSON {
				return writeJSON(cmd, scanResultJSON(result))
			}

			out := cmd.OutOrStdout()
			headers := []string{"Show", "S", "E", "Title", "Video", "Thumb"}
			var rows [][]string
			for _, show := range result.Shows() {
				for _, ep := range show.Episodes {
					rows = append(rows, []string{
						show.Title,
						ep.Season,
						ep.Episode,
						ep.Title,
						yesNo(ep.VideoFile != ""),
						yesNo(ep.Thumbnail != ""),
					})
				}
			}
			fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{
				alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignLeft,
			}))
			fmt.Fprintf(out, "%d shows, %d episodes\n", result.ShowCount(), result.EpisodeCount())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the catalog as JSON")
	return cmd
}

func scanResultJSON(result *catalog.Catalog) []scanShowJSON {
	shows := make([]scanShowJSON, 0, result.ShowCount())
	for _, show := range result.Shows() {
		item := scanShowJSON{
			Key:      catalog.ShowKey(show.Title),
			Title:    show.Title,
			Plot:     show.Plot,
			Episodes: make([]scanEpisodeJSON, 0, len(show.Episodes)),
		}
		for _, ep := range show.Episodes {
			item.Episodes = append(item.Episodes, scanEpisodeJSON{
				Key:       ep.Key(),
				Season:    ep.Season,
				Episode:   ep.Episode,
				Title:     ep.Title,
				Aired:     ep.Aired,
				VideoFile: ep.VideoFile,
				Thumbnail: ep.Thumbnail,
			})
		}
		shows = append(shows, item)
	}
	return shows
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
