// Package api provides the HTTP API layer for the PTT API service.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive docs UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type ParseTitleInput struct {
//	    Title              string `query:"title" required:"true" minLength:"1"`
//	    TranslateLanguages bool   `query:"translate_languages,omitempty"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 500,
//	    "title": "Internal Server Error",
//	    "detail": "failed to parse title 'x': ...",
//	    "instance": "/parse-simple"
//	}
//
// Parse failures on /parse and batch items are reported structured in
// an otherwise-200 response; /parse-simple propagates them as server
// errors.
//
package api
