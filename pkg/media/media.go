package media

import "github.com/wearelucid/brightsign-mrss-server/pkg/domain"

// classification tables, fixed at build time. They are independent of the
// recognized-extensions set: the scanner decides what gets into a feed,
// these only label what made it in.
var (
	videoExtensions = map[string]bool{
		".mp4": true, ".mov": true, ".avi": true, ".mkv": true, ".wmv": true,
		".flv": true, ".webm": true, ".m4v": true, ".3gp": true, ".ogv": true,
	}
	imageExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".bmp": true,
		".webp": true, ".tiff": true, ".svg": true, ".ico": true,
	}
	audioExtensions = map[string]bool{
		".mp3": true, ".wav": true, ".flac": true, ".aac": true, ".ogg": true,
		".wma": true, ".m4a": true, ".opus": true,
	}
)

// mimeTypes maps known media extensions to their MIME types
var mimeTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".mkv":  "video/x-matroska",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
	".webm": "video/webm",
	".m4v":  "video/x-m4v",
	".3gp":  "video/3gpp",
	".ogv":  "video/ogg",

	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".webp": "image/webp",
	".tiff": "image/tiff",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",

	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".flac": "audio/flac",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".wma":  "audio/x-ms-wma",
	".m4a":  "audio/mp4",
	".opus": "audio/opus",
}

// Classify maps a lowercased extension (leading dot included) to a media
// category. Extensions outside all tables classify as video, matching the
// historical behavior players rely on.
func Classify(ext string) domain.MediaType {
	switch {
	case videoExtensions[ext]:
		return domain.MediaVideo
	case imageExtensions[ext]:
		return domain.MediaImage
	case audioExtensions[ext]:
		return domain.MediaAudio
	}
	return domain.MediaVideo
}

// MimeType guesses the MIME type for a lowercased extension, falling back
// to a generic binary type for anything unknown
func MimeType(ext string) string {
	if mt, ok := mimeTypes[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}
