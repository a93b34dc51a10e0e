package domain

// FeedDocument is an assembled feed for a single folder, ready to serialize.
// One document is built per invocation and discarded after it is written.
type FeedDocument struct {
	Title       string
	Description string
	Generator   string
	Entries     []MediaEntry // ordered as scanned, lexicographic by filename
}
