package domain

import "time"

// MediaType is the coarse media category a feed item reports to players
type MediaType string

// media categories understood by playback devices
const (
	MediaVideo MediaType = "video"
	MediaImage MediaType = "image"
	MediaAudio MediaType = "audio"
)

// MediaEntry represents one discovered media file, fully enriched for feed output
type MediaEntry struct {
	Filename  string    // base name with extension, as listed
	Title     string    // filename without the extension
	Ext       string    // lowercased, includes the leading dot
	Digest    string    // 32-char hex md5 of the file content
	Medium    MediaType // video, image or audio
	URL       string    // base URL + prefix + filename + "?md5=" + digest
	GUID      string    // "<title>-<digest>"
	Published time.Time // UTC, set when the entry is built
}
