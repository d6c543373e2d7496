// Package record holds the normalized source record shared by every exporter
// and the helpers adapters use to pull fields out of decoded JSON.
//
// Input documents are decoded with json.Decoder.UseNumber, so numeric fields
// arrive as json.Number and identifiers keep their exact textual form.
package record

import (
	"github.com/specialistvlad/ldgraph/internal/nodeid"
)

// FallbackKey namespaces a record that has neither an id nor a usable title.
const FallbackKey = "unknown"

// Record is one source item, normalized. Every field is optional.
type Record struct {
	ID         string
	Title      string
	Engagement int
	Categories []string
	Date       string
	URL        string
}

// Key returns the discriminator used to namespace the record's identifiers:
// the source id, else the title slug, else FallbackKey.
func (r Record) Key() string {
	if r.ID != "" {
		return r.ID
	}
	return nodeid.SlugOr(r.Title, FallbackKey)
}
