package feed

import (
	"encoding/xml"
)

// RSS represents the root element of a Media RSS 2.0 document. The media
// namespace is declared on the root so items can carry media:content
// elements players understand.
type RSS struct {
	XMLName xml.Name    `xml:"rss"`
	MediaNS string      `xml:"xmlns:media,attr"`
	Version string      `xml:"version,attr"`
	Channel *RSSChannel `xml:"channel"`
}

// RSSChannel represents the single channel of a feed. The link element is
// intentionally empty: players resolve media through item links only.
type RSSChannel struct {
	XMLName     xml.Name   `xml:"channel"`
	Title       string     `xml:"title"`
	Link        string     `xml:"link"`
	Description string     `xml:"description"`
	Generator   string     `xml:"generator"`
	Items       []*RSSItem `xml:"item"`
}

// RSSItem represents one media file in the feed. Element order matches what
// deployed players were built against and must stay stable.
type RSSItem struct {
	Title       string        `xml:"title"`
	PubDate     string        `xml:"pubDate"`
	Link        string        `xml:"link"`
	Description string        `xml:"description"`
	Medium      string        `xml:"medium"`
	GUID        string        `xml:"guid"`
	Content     *MediaContent `xml:"media:content"`
}

// MediaContent represents the namespaced media:content element carrying the
// resolvable URL and type metadata for one file
type MediaContent struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Medium string `xml:"medium,attr"`
}
