package catalog

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// keyLength is the number of hex characters kept from a content hash.
// Collisions are possible and deliberately unhandled: a colliding show key
// overwrites, a colliding episode key resolves to its first match.
const keyLength = 8

// Episode describes one episodedetails descriptor and its resolved media.
// Season and Episode are strings so the source formatting (leading zeros)
// is preserved. VideoFile and Thumbnail are absolute paths, or "" when no
// file could be matched.
type Episode struct {
	ShowTitle string
	Title     string
	Season    string
	Episode   string
	Plot      string
	Aired     string
	VideoFile string
	Thumbnail string
}

// Key derives the episode's content-addressed identifier. It is recomputed
// on every call, never stored, so it is stable only while ShowTitle,
// Season, Episode, and Title are unchanged.
func (e Episode) Key() string {
	raw := fmt.Sprintf("%s-s%se%s-%s", e.ShowTitle, e.Season, e.Episode, e.Title)
	return hashKey(raw)
}

// Show groups the episodes sharing one show title. Episodes keep scan
// discovery order, not display order.
type Show struct {
	Title    string
	Plot     string
	Thumb    string
	Episodes []Episode
}

// ShowKey derives the external key for a show title.
func ShowKey(title string) string {
	return hashKey(title)
}

func hashKey(raw string) string {
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])[:keyLength]
}

// Catalog is the full show-keyed result of one library scan. It is
// immutable once a scan returns it; consumers re-fetch rather than retain.
type Catalog struct {
	shows map[string]*Show
	order []string
}

func newCatalog() *Catalog {
	return &Catalog{shows: make(map[string]*Show)}
}

// Show returns the show stored under key.
func (c *Catalog) Show(key string) (*Show, bool) {
	show, ok := c.shows[key]
	return show, ok
}

// Shows returns all shows in scan discovery order.
func (c *Catalog) Shows() []*Show {
	out := make([]*Show, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.shows[key])
	}
	return out
}

// Episode finds an episode by derived key with a linear scan over every
// show. The first match wins; colliding keys make the choice ambiguous but
// never an error.
func (c *Catalog) Episode(key string) (Episode, bool) {
	for _, showKey := range c.order {
		for _, ep := range c.shows[showKey].Episodes {
			if ep.Key() == key {
				return ep, true
			}
		}
	}
	return Episode{}, false
}

// ShowCount returns the number of shows in the catalog.
func (c *Catalog) ShowCount() int {
	return len(c.shows)
}

// EpisodeCount returns the number of episodes across all shows.
func (c *Catalog) EpisodeCount() int {
	total := 0
	for _, show := range c.shows {
		total += len(show.Episodes)
	}
	return total
}

// upsertShow records a show descriptor. Episodes accumulated under the
// same key before the show descriptor arrived are preserved, so scan order
// does not change the result.
func (c *Catalog) upsertShow(title, plot, thumb string) {
	key := ShowKey(title)
	if existing, ok := c.shows[key]; ok {
		existing.Title = title
		existing.Plot = plot
		existing.Thumb = thumb
		return
	}
	c.shows[key] = &Show{Title: title, Plot: plot, Thumb: thumb}
	c.order = append(c.order, key)
}

// appendEpisode attaches an episode to the show named by its show title,
// creating an implicit show with an empty plot when none exists yet.
func (c *Catalog) appendEpisode(ep Episode) {
	key := ShowKey(ep.ShowTitle)
	show, ok := c.shows[key]
	if !ok {
		show = &Show{Title: ep.ShowTitle}
		c.shows[key] = show
		c.order = append(c.order, key)
	}
	show.Episodes = append(show.Episodes, ep)
}
