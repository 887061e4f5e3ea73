package server

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"tooba/internal/catalog"
)

const maxCollageThumbs = 4

// badge is the season-letter plus episode-number marker shown on episode
// cards and the episode page header. Season 1 renders as "A", season 2 as
// "B", and so on; a season that is not a positive integer is shown as-is.
type badge struct {
	Season  string
	Episode string
}

type showCard struct {
	Key             string
	Title           string
	MainTitle       string
	Subtitle        string
	Thumbs          []string
	EmptyThumbSlots []struct{}
}

type episodeCard struct {
	Key      string
	Title    string
	ThumbURL string
	Badge    *badge
}

type homeView struct {
	Title    string
	BackHref string
	Shows    []showCard
}

type showView struct {
	Title     string
	BackHref  string
	MainTitle string
	Subtitle  string
	Episodes  []episodeCard
}

type episodeView struct {
	Title         string
	BackHref      string
	Badge         *badge
	EpisodeTitle  string
	ShowMainTitle string
	ShowSubtitle  string
	VideoURL      string
}

type notFoundView struct {
	Title    string
	BackHref string
	Message  string
}

func newHomeView(cat *catalog.Catalog) homeView {
	view := homeView{Title: "Video Collection"}
	for _, show := range cat.Shows() {
		card := showCard{Key: catalog.ShowKey(show.Title), Title: show.Title}
		card.MainTitle, card.Subtitle = splitTitle(show.Title)
		for _, ep := range show.Episodes {
			if ep.Thumbnail == "" {
				continue
			}
			card.Thumbs = append(card.Thumbs, mediaURL("/thumbnail/", ep.Thumbnail))
			if len(card.Thumbs) == maxCollageThumbs {
				break
			}
		}
		if len(card.Thumbs) > 1 {
			card.EmptyThumbSlots = make([]struct{}, maxCollageThumbs-len(card.Thumbs))
		}
		view.Shows = append(view.Shows, card)
	}
	return view
}

func newShowView(show *catalog.Show) showView {
	view := showView{Title: show.Title, BackHref: "/"}
	view.MainTitle, view.Subtitle = splitTitle(show.Title)

	episodes := make([]catalog.Episode, len(show.Episodes))
	copy(episodes, show.Episodes)
	sort.SliceStable(episodes, func(i, j int) bool {
		if episodes[i].Season != episodes[j].Season {
			return episodes[i].Season < episodes[j].Season
		}
		return episodes[i].Episode < episodes[j].Episode
	})

	for _, ep := range episodes {
		card := episodeCard{Key: ep.Key(), Title: ep.Title, Badge: newBadge(ep)}
		if ep.Thumbnail != "" {
			card.ThumbURL = mediaURL("/thumbnail/", ep.Thumbnail)
		}
		view.Episodes = append(view.Episodes, card)
	}
	return view
}

func newEpisodeView(ep catalog.Episode) episodeView {
	view := episodeView{
		Title:        ep.Season + "×" + ep.Episode + " " + ep.Title,
		BackHref:     "/show/" + catalog.ShowKey(ep.ShowTitle),
		Badge:        newBadge(ep),
		EpisodeTitle: ep.Title,
	}
	view.ShowMainTitle, view.ShowSubtitle = splitTitle(ep.ShowTitle)
	if ep.VideoFile != "" {
		view.VideoURL = mediaURL("/video-file/", ep.VideoFile)
	}
	return view
}

func newBadge(ep catalog.Episode) *badge {
	if ep.Season == "" || ep.Episode == "" {
		return nil
	}
	return &badge{Season: seasonLetter(ep.Season), Episode: ep.Episode}
}

// splitTitle divides a title at its first colon into a main title and a
// subtitle. Titles without a colon keep everything in the main title.
func splitTitle(title string) (string, string) {
	main, sub, found := strings.Cut(title, ":")
	if !found {
		return title, ""
	}
	return strings.TrimSpace(main), strings.TrimSpace(sub)
}

func seasonLetter(season string) string {
	n, err := strconv.Atoi(season)
	if err != nil || n < 1 || n > 26 {
		return season
	}
	return string(rune('A' + n - 1))
}

// mediaURL builds a raw-file route URL from an absolute path. The leading
// slash is dropped and each path segment is escaped, matching how the
// handler reassembles the path.
func mediaURL(prefix, path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	segments := strings.Split(trimmed, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return prefix + strings.Join(segments, "/")
}
