package feed

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wearelucid/brightsign-mrss-server/pkg/config"
	"github.com/wearelucid/brightsign-mrss-server/pkg/digest"
	"github.com/wearelucid/brightsign-mrss-server/pkg/domain"
	"github.com/wearelucid/brightsign-mrss-server/pkg/media"
	"github.com/wearelucid/brightsign-mrss-server/pkg/scan"
)

// mrssNamespace is the Media RSS namespace players expect on the feed root
const mrssNamespace = "http://search.yahoo.com/mrss/"

// channel naming is fixed for deployed players and must not drift
const (
	titleBase       = "MB Media"
	descriptionBase = "MB"
	generatorName   = "Server RSS Generator"
)

// pubDateFormat is ISO 8601 with microsecond precision, always UTC
const pubDateFormat = "2006-01-02T15:04:05.000000Z"

// Generator builds Media RSS documents for media folders
type Generator struct {
	baseURL string
	exts    map[string]bool
}

// NewGenerator creates a generator bound to a loaded configuration
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		baseURL: cfg.BaseURL,
		exts:    cfg.ExtensionSet(),
	}
}

// Build scans folder and assembles a feed document. urlPrefix is empty for
// the root folder and "<name>/" for a subfolder; it selects the channel
// naming and is prepended to every media URL. A file that cannot be read
// aborts the whole document, there is no partial-skip.
func (g *Generator) Build(folder, urlPrefix string) (*domain.FeedDocument, error) {
	names, err := scan.List(folder, g.exts)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", folder, err)
	}

	doc := &domain.FeedDocument{
		Title:       titleBase,
		Description: descriptionBase,
		Generator:   generatorName,
	}
	if urlPrefix != "" {
		name := filepath.Base(strings.TrimRight(folder, string(filepath.Separator)))
		doc.Title = titleBase + " - " + name
		doc.Description = descriptionBase + " - " + name
	}

	doc.Entries = make([]domain.MediaEntry, 0, len(names))
	for _, name := range names {
		entry, err := g.buildEntry(folder, urlPrefix, name)
		if err != nil {
			return nil, err
		}
		doc.Entries = append(doc.Entries, entry)
	}

	return doc, nil
}

// buildEntry fingerprints and classifies a single scanned file
func (g *Generator) buildEntry(folder, urlPrefix, name string) (domain.MediaEntry, error) {
	sum, err := digest.FileMD5(filepath.Join(folder, name))
	if err != nil {
		return domain.MediaEntry{}, fmt.Errorf("fingerprint %s: %w", name, err)
	}

	ext := strings.ToLower(filepath.Ext(name))
	title := strings.TrimSuffix(name, filepath.Ext(name))

	return domain.MediaEntry{
		Filename:  name,
		Title:     title,
		Ext:       ext,
		Digest:    sum,
		Medium:    media.Classify(ext),
		URL:       g.baseURL + urlPrefix + name + "?md5=" + sum,
		GUID:      title + "-" + sum,
		Published: time.Now().UTC(),
	}, nil
}

// Render serializes the document into a complete standalone XML body with
// a UTF-8 declaration and 4-space indentation
func Render(doc *domain.FeedDocument) ([]byte, error) {
	items := make([]*RSSItem, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		items = append(items, &RSSItem{
			Title:       e.Title,
			PubDate:     e.Published.Format(pubDateFormat),
			Link:        e.URL,
			Description: e.URL,
			Medium:      string(e.Medium),
			GUID:        e.GUID,
			Content: &MediaContent{
				URL:    e.URL,
				Type:   media.MimeType(e.Ext),
				Medium: string(e.Medium),
			},
		})
	}

	rss := &RSS{
		MediaNS: mrssNamespace,
		Version: "2.0",
		Channel: &RSSChannel{
			Title:       doc.Title,
			Description: doc.Description,
			Generator:   doc.Generator,
			Items:       items,
		},
	}

	out, err := xml.MarshalIndent(rss, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}

	res := make([]byte, 0, len(xml.Header)+len(out)+1)
	res = append(res, xml.Header...)
	res = append(res, out...)
	res = append(res, '\n')
	return res, nil
}

// WriteFile renders doc and writes it to path, replacing any existing file.
// The write is not atomic; a failure mid-write can leave a truncated file.
func WriteFile(doc *domain.FeedDocument, path string) error {
	data, err := Render(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // feeds are world-readable web content
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
