// ABOUTME: Title service wraps the external torrent-title parse capability
// ABOUTME: Provides single, batch and example parsing with per-item failure isolation

package title

import (
	"context"
	"errors"

	"ptt-app-api/core/domain"
	coreerrors "ptt-app-api/core/errors"
	"ptt-app-api/core/interfaces"
)

// TitleService handles torrent-title parsing operations
type TitleService struct {
	deps interfaces.Dependencies
}

// NewTitleService creates a new title service instance
func NewTitleService(deps interfaces.Dependencies) *TitleService {
	return &TitleService{
		deps: deps,
	}
}

// Parse invokes the parse capability for a single title and returns the
// raw mapping. Failures propagate to the caller as errors.
func (s *TitleService) Parse(ctx context.Context, title string, translateLanguages bool) (map[string]interface{}, error) {
	if s.deps.Parser == nil {
		return nil, errors.New("title parser not configured")
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Info("Parsing title", map[string]interface{}{
			"title":               title,
			"translate_languages": translateLanguages,
		})
	}

	data, err := s.deps.Parser.Parse(ctx, title, interfaces.ParseOptions{
		TranslateLanguages: translateLanguages,
	})
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Error("Failed to parse title", map[string]interface{}{
				"title": title,
				"error": err.Error(),
			})
		}
		return nil, &coreerrors.ParseError{Title: title, Err: err}
	}

	return data, nil
}

// ParseTitle parses a single title and captures the outcome as a
// ParseResult instead of propagating the failure.
func (s *TitleService) ParseTitle(ctx context.Context, title string, translateLanguages bool) domain.ParseResult {
	data, err := s.Parse(ctx, title, translateLanguages)
	if err != nil {
		return domain.ParseResult{
			Success:       false,
			Error:         err.Error(),
			OriginalTitle: title,
		}
	}

	return domain.ParseResult{
		Success:       true,
		Data:          data,
		OriginalTitle: title,
	}
}

// ParseBatch parses multiple titles in input order. Each title is parsed
// independently; a failure is recorded in that title's result and never
// aborts the rest of the batch. The returned slice is positionally
// aligned with the input: results[i] corresponds to titles[i].
func (s *TitleService) ParseBatch(ctx context.Context, titles []string, translateLanguages bool) []domain.ParseResult {
	if s.deps.Logger != nil {
		s.deps.Logger.Info("Batch parsing titles", map[string]interface{}{
			"count":               len(titles),
			"translate_languages": translateLanguages,
		})
	}

	results := make([]domain.ParseResult, 0, len(titles))
	for _, t := range titles {
		results = append(results, s.ParseTitle(ctx, t, translateLanguages))
	}

	return results
}

// Examples parses the fixed sample titles and returns one entry per
// sample, each holding either the parsed data or the failure message.
func (s *TitleService) Examples(ctx context.Context) []domain.ExampleResult {
	results := make([]domain.ExampleResult, 0, len(exampleTitles))
	for _, t := range exampleTitles {
		data, err := s.Parse(ctx, t, false)
		if err != nil {
			results = append(results, domain.ExampleResult{
				Title: t,
				Error: err.Error(),
			})
			continue
		}
		results = append(results, domain.ExampleResult{
			Title:  t,
			Parsed: data,
		})
	}

	return results
}
