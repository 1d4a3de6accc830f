// ABOUTME: Adapter over the go-ptn torrent-title parser library
// ABOUTME: Exposes the library's output as an open mapping and handles language translation

package ptn

import (
	"context"
	"encoding/json"
	"strings"

	goptn "github.com/razsteinmetz/go-ptn"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	coreerrors "ptt-app-api/core/errors"
	"ptt-app-api/core/interfaces"
)

// Parser implements the TitleParser interface using the go-ptn library
type Parser struct{}

// NewParser creates a new go-ptn backed parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse extracts structured metadata from a torrent title. The result
// is the library's output converted to an open mapping; empty fields
// are omitted.
func (p *Parser) Parse(ctx context.Context, title string, opts interfaces.ParseOptions) (map[string]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		return nil, &coreerrors.ValidationError{Field: "title", Message: "title cannot be empty"}
	}

	info, err := goptn.Parse(title)
	if err != nil {
		return nil, err
	}

	fields, err := toMap(info)
	if err != nil {
		return nil, err
	}

	if opts.TranslateLanguages {
		translateLanguageFields(fields)
	}

	return fields, nil
}

// toMap converts the parser's result struct into an open mapping via a
// JSON round trip. The field set stays owned by the library; new fields
// flow through without code changes here.
func toMap(info *goptn.TorrentInfo) (map[string]interface{}, error) {
	raw, err := json.Marshal(info)
	if err != nil {
		return nil, err
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	return fields, nil
}

// languageKeys are the output keys that may hold language codes.
var languageKeys = []string{"language", "languages"}

// translateLanguageFields rewrites language codes in place as English
// display names. Values that are not language-shaped are left alone.
func translateLanguageFields(fields map[string]interface{}) {
	for _, key := range languageKeys {
		switch v := fields[key].(type) {
		case string:
			fields[key] = translateLanguage(v)
		case []interface{}:
			for i, item := range v {
				if s, ok := item.(string); ok {
					v[i] = translateLanguage(s)
				}
			}
		}
	}
}

// translateLanguage renders a language code as its English display
// name (e.g. "fr" -> "French"). Values that do not parse as a language
// tag pass through unchanged.
func translateLanguage(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	name := display.English.Tags().Name(tag)
	if name == "" {
		return code
	}

	return name
}
