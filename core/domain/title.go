// ABOUTME: Domain models for torrent-title parse results
// ABOUTME: Pure data structures free from HTTP and parser-library concerns

package domain

// ParseResult is the outcome of parsing a single torrent title.
// Exactly one of Data/Error is populated: Data when Success is true,
// Error when Success is false. OriginalTitle always carries the
// verbatim input string.
type ParseResult struct {
	// Success indicates whether the parse succeeded
	Success bool

	// Data holds the extracted fields on success. The schema is owned
	// by the parser library and treated as an open mapping.
	Data map[string]interface{}

	// Error holds the failure message on failure
	Error string

	// OriginalTitle is the verbatim input title
	OriginalTitle string
}

// ExampleResult pairs a sample title with its parse outcome.
// Exactly one of Parsed/Error is populated, never both.
type ExampleResult struct {
	// Title is the sample torrent title
	Title string

	// Parsed holds the extracted fields on success
	Parsed map[string]interface{}

	// Error holds the failure message on failure
	Error string
}
