// ABOUTME: Response DTOs for title-parsing API endpoints
// ABOUTME: Wire shapes kept compatible with the original PTT API service

package responses

// ParseResponse is the wire shape for a single title parse result.
// Exactly one of Data/Error is present depending on Success.
type ParseResponse struct {
	// Success indicates whether the parse succeeded
	Success bool `json:"success" doc:"Whether the parse succeeded"`

	// Data holds the extracted fields on success
	Data map[string]interface{} `json:"data,omitempty" doc:"Extracted fields, schema owned by the parser library"`

	// Error holds the failure message on failure
	Error string `json:"error,omitempty" doc:"Failure message when success is false"`

	// OriginalTitle is the verbatim input title
	OriginalTitle string `json:"original_title" doc:"The verbatim input title"`
}

// BatchParseResponse is the wire shape for a batch parse
type BatchParseResponse struct {
	// Success indicates the batch was accepted, not that every item succeeded
	Success bool `json:"success" doc:"Whether the batch was accepted"`

	// Results are per-title results aligned positionally with the input
	Results []ParseResponse `json:"results" doc:"Per-title results in input order"`

	// TotalProcessed is the number of input titles
	TotalProcessed int `json:"total_processed" doc:"Number of titles processed"`
}

// ExampleEntry pairs a sample title with its parse outcome.
// Exactly one of Parsed/Error is present, never both.
type ExampleEntry struct {
	Title  string                 `json:"title" doc:"The sample torrent title"`
	Parsed map[string]interface{} `json:"parsed,omitempty" doc:"Extracted fields on success"`
	Error  string                 `json:"error,omitempty" doc:"Failure message on failure"`
}

// ExamplesResponse is the wire shape for the examples endpoint
type ExamplesResponse struct {
	Examples []ExampleEntry `json:"examples" doc:"Sample titles with their parse outcomes"`
}

// HealthResponse is the wire shape for the health endpoint
type HealthResponse struct {
	Status  string `json:"status" doc:"Health status"`
	Service string `json:"service" doc:"Service name"`
	Version string `json:"version" doc:"Service version"`
}
