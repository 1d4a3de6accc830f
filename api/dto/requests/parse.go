// ABOUTME: Request DTOs for title-parsing API endpoints
// ABOUTME: Validation is expressed as huma struct tags on the fields

package requests

// BatchParseRequest represents the request body for parsing multiple titles
type BatchParseRequest struct {
	// Titles is the ordered list of torrent titles to parse. It may be
	// empty; each entry is parsed independently.
	Titles []string `json:"titles" maxItems:"1000" doc:"Torrent titles to parse, in order"`

	// TranslateLanguages translates language codes in the output to full names
	TranslateLanguages bool `json:"translate_languages,omitempty" doc:"Whether to translate language codes to full names"`
}
