// Package nfo parses Kodi-style sidecar metadata files.
//
// Two document shapes are understood: tvshow (title, plot, thumb) and
// episodedetails (showtitle, title, season, episode, plot, aired). Anything
// else, including malformed XML, is silently classified as unrecognized so
// a library scan can skip it without failing.
package nfo
