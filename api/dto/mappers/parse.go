// ABOUTME: Mappers convert core domain models to response DTOs
// ABOUTME: Keeps the wire format decoupled from the domain layer

package mappers

import (
	"ptt-app-api/api/dto/responses"
	"ptt-app-api/core/domain"
)

// ToParseResponse converts a domain parse result to its response DTO
func ToParseResponse(result domain.ParseResult) responses.ParseResponse {
	return responses.ParseResponse{
		Success:       result.Success,
		Data:          result.Data,
		Error:         result.Error,
		OriginalTitle: result.OriginalTitle,
	}
}

// ToBatchParseResponse converts batch results to the batch response DTO.
// Batch-level success means the batch was accepted; per-item outcomes
// live in the individual results.
func ToBatchParseResponse(results []domain.ParseResult) responses.BatchParseResponse {
	out := make([]responses.ParseResponse, 0, len(results))
	for _, r := range results {
		out = append(out, ToParseResponse(r))
	}

	return responses.BatchParseResponse{
		Success:        true,
		Results:        out,
		TotalProcessed: len(results),
	}
}

// ToExamplesResponse converts example results to the examples response DTO
func ToExamplesResponse(results []domain.ExampleResult) responses.ExamplesResponse {
	out := make([]responses.ExampleEntry, 0, len(results))
	for _, r := range results {
		out = append(out, responses.ExampleEntry{
			Title:  r.Title,
			Parsed: r.Parsed,
			Error:  r.Error,
		})
	}

	return responses.ExamplesResponse{Examples: out}
}
