package nfo

import (
	"encoding/xml"
	"io"
	"os"
)

// Kind discriminates the descriptor schemas found in a library.
type Kind int

const (
	// KindUnrecognized marks files that failed to parse or carry an
	// unknown root element. They contribute nothing to a scan.
	KindUnrecognized Kind = iota
	// KindShow marks a tvshow descriptor.
	KindShow
	// KindEpisode marks an episodedetails descriptor.
	KindEpisode
)

// Descriptor is the flat result of parsing one sidecar file. Fields not
// covered by the descriptor's schema stay empty; fields covered by the
// schema but absent from the document default to "". Season and Episode
// remain strings so source formatting (leading zeros) survives.
type Descriptor struct {
	Kind Kind

	Title string
	Plot  string
	Thumb string

	ShowTitle string
	Season    string
	Episode   string
	Aired     string
}

type showDoc struct {
	Title string `xml:"title"`
	Plot  string `xml:"plot"`
	Thumb string `xml:"thumb"`
}

type episodeDoc struct {
	ShowTitle string `xml:"showtitle"`
	Title     string `xml:"title"`
	Season    string `xml:"season"`
	Episode   string `xml:"episode"`
	Plot      string `xml:"plot"`
	Aired     string `xml:"aired"`
}

// schemas dispatches on the document's root element name.
var schemas = map[string]func(*xml.Decoder, xml.StartElement) (Descriptor, error){
	"tvshow":         decodeShow,
	"episodedetails": decodeEpisode,
}

// Parse reads one descriptor file. It fails closed: unreadable files,
// malformed XML, and unknown root elements all yield a KindUnrecognized
// descriptor rather than an error.
func Parse(path string) Descriptor {
	file, err := os.Open(path)
	if err != nil {
		return Descriptor{}
	}
	defer file.Close()
	return decode(file)
}

func decode(r io.Reader) Descriptor {
	decoder := xml.NewDecoder(r)

	root, ok := findRoot(decoder)
	if !ok {
		return Descriptor{}
	}

	decodeFn, ok := schemas[root.Name.Local]
	if !ok {
		return Descriptor{}
	}

	desc, err := decodeFn(decoder, root)
	if err != nil {
		return Descriptor{}
	}

	// The whole document must be well formed, not just the root element.
	if !drain(decoder) {
		return Descriptor{}
	}
	return desc
}

// findRoot skips prolog tokens (declarations, comments, whitespace) and
// returns the document's first element.
func findRoot(decoder *xml.Decoder) (xml.StartElement, bool) {
	for {
		tok, err := decoder.Token()
		if err != nil {
			return xml.StartElement{}, false
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, true
		}
	}
}

func drain(decoder *xml.Decoder) bool {
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return true
		}
		if err != nil {
			return false
		}
	}
}

func decodeShow(decoder *xml.Decoder, root xml.StartElement) (Descriptor, error) {
	var doc showDoc
	if err := decoder.DecodeElement(&doc, &root); err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Kind:  KindShow,
		Title: doc.Title,
		Plot:  doc.Plot,
		Thumb: doc.Thumb,
	}, nil
}

func decodeEpisode(decoder *xml.Decoder, root xml.StartElement) (Descriptor, error) {
	var doc episodeDoc
	if err := decoder.DecodeElement(&doc, &root); err != nil {
		return Descriptor{}, err
	}
	return Descriptor{
		Kind:      KindEpisode,
		ShowTitle: doc.ShowTitle,
		Title:     doc.Title,
		Season:    doc.Season,
		Episode:   doc.Episode,
		Plot:      doc.Plot,
		Aired:     doc.Aired,
	}, nil
}
