// ABOUTME: Contract for the external torrent-title parse capability
// ABOUTME: The parser output schema is owned by the dependency and modeled as an open mapping

package interfaces

import "context"

// ParseOptions holds per-call options for the title parser.
type ParseOptions struct {
	// TranslateLanguages renders language codes in the output as full
	// English names (e.g. "fr" -> "French").
	TranslateLanguages bool
}

// TitleParser extracts structured metadata from a raw torrent title.
// The returned mapping is an open key-value structure whose schema is
// owned by the underlying parser library and may evolve; callers must
// not assume a fixed field set.
type TitleParser interface {
	Parse(ctx context.Context, title string, opts ParseOptions) (map[string]interface{}, error)
}
