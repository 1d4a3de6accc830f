// ABOUTME: Parse handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for single, simple, example and batch title parsing

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"ptt-app-api/api/dto/mappers"
	"ptt-app-api/api/dto/requests"
	"ptt-app-api/api/dto/responses"
	"ptt-app-api/core/domain"
)

// TitleService interface defines the methods needed from the title service
type TitleService interface {
	Parse(ctx context.Context, title string, translateLanguages bool) (map[string]interface{}, error)
	ParseTitle(ctx context.Context, title string, translateLanguages bool) domain.ParseResult
	ParseBatch(ctx context.Context, titles []string, translateLanguages bool) []domain.ParseResult
	Examples(ctx context.Context) []domain.ExampleResult
}

// ParseHandler handles title-parsing HTTP requests
type ParseHandler struct {
	titleService TitleService
}

// NewParseHandler creates a new parse handler
func NewParseHandler(titleService TitleService) *ParseHandler {
	return &ParseHandler{
		titleService: titleService,
	}
}

// RegisterRoutes registers all parse-related routes
func (h *ParseHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "parseTitle",
		Method:      http.MethodGet,
		Path:        "/parse",
		Summary:     "Parse a torrent title",
		Description: "Parses a torrent title and returns structured data; parse failures are reported in the response body",
		Tags:        []string{"Parsing"},
	}, h.ParseTitle)

	huma.Register(api, huma.Operation{
		OperationID: "parseTitleSimple",
		Method:      http.MethodGet,
		Path:        "/parse-simple",
		Summary:     "Parse a torrent title (raw result)",
		Description: "Parses a torrent title and returns the raw extracted fields; parse failures surface as server errors",
		Tags:        []string{"Parsing"},
	}, h.ParseTitleSimple)

	huma.Register(api, huma.Operation{
		OperationID: "getExamples",
		Method:      http.MethodGet,
		Path:        "/examples",
		Summary:     "Example torrent titles",
		Description: "Returns a fixed list of sample titles together with their parsed results",
		Tags:        []string{"Parsing"},
	}, h.GetExamples)

	huma.Register(api, huma.Operation{
		OperationID: "parseBatch",
		Method:      http.MethodPost,
		Path:        "/parse-batch",
		Summary:     "Parse multiple torrent titles",
		Description: "Parses an ordered list of titles; each title is parsed independently and one failure never aborts the batch",
		Tags:        []string{"Parsing"},
	}, h.ParseBatch)
}

// ParseTitleInput defines the input for the ParseTitle operation
type ParseTitleInput struct {
	Title              string `query:"title" required:"true" minLength:"1" doc:"The torrent title to parse"`
	TranslateLanguages bool   `query:"translate_languages,omitempty" doc:"Whether to translate language codes to full names"`
}

// ParseTitleOutput defines the output for the ParseTitle operation
type ParseTitleOutput struct {
	Body responses.ParseResponse
}

// ParseTitle handles the GET /parse endpoint
func (h *ParseHandler) ParseTitle(ctx context.Context, input *ParseTitleInput) (*ParseTitleOutput, error) {
	result := h.titleService.ParseTitle(ctx, input.Title, input.TranslateLanguages)

	return &ParseTitleOutput{
		Body: mappers.ToParseResponse(result),
	}, nil
}

// ParseTitleSimpleInput defines the input for the ParseTitleSimple operation
type ParseTitleSimpleInput struct {
	Title              string `query:"title" required:"true" minLength:"1" doc:"The torrent title to parse"`
	TranslateLanguages bool   `query:"translate_languages,omitempty" doc:"Whether to translate language codes to full names"`
}

// ParseTitleSimpleOutput defines the output for the ParseTitleSimple operation
type ParseTitleSimpleOutput struct {
	Body map[string]interface{}
}

// ParseTitleSimple handles the GET /parse-simple endpoint
func (h *ParseHandler) ParseTitleSimple(ctx context.Context, input *ParseTitleSimpleInput) (*ParseTitleSimpleOutput, error) {
	data, err := h.titleService.Parse(ctx, input.Title, input.TranslateLanguages)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ParseTitleSimpleOutput{
		Body: data,
	}, nil
}

// GetExamplesInput defines the input for the GetExamples operation
type GetExamplesInput struct{}

// GetExamplesOutput defines the output for the GetExamples operation
type GetExamplesOutput struct {
	Body responses.ExamplesResponse
}

// GetExamples handles the GET /examples endpoint
func (h *ParseHandler) GetExamples(ctx context.Context, input *GetExamplesInput) (*GetExamplesOutput, error) {
	results := h.titleService.Examples(ctx)

	return &GetExamplesOutput{
		Body: mappers.ToExamplesResponse(results),
	}, nil
}

// ParseBatchInput defines the input for the ParseBatch operation
type ParseBatchInput struct {
	Body requests.BatchParseRequest
}

// ParseBatchOutput defines the output for the ParseBatch operation
type ParseBatchOutput struct {
	Body responses.BatchParseResponse
}

// ParseBatch handles the POST /parse-batch endpoint
func (h *ParseHandler) ParseBatch(ctx context.Context, input *ParseBatchInput) (*ParseBatchOutput, error) {
	results := h.titleService.ParseBatch(ctx, input.Body.Titles, input.Body.TranslateLanguages)

	return &ParseBatchOutput{
		Body: mappers.ToBatchParseResponse(results),
	}, nil
}
