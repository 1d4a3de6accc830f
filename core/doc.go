// Package core contains the business logic for the PTT API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (ParseResult, ExampleResult)
// - title: Title parsing service with batch and per-item failure isolation
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (parser, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - The parser output schema stays owned by the parser library and is
//   carried as an open mapping rather than a fixed record
//
// # Usage Example
//
//	import (
//	    "ptt-app-api/core/interfaces"
//	    "ptt-app-api/core/title"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Parser: myParser, // implements interfaces.TitleParser
//	    Logger: myLogger, // implements interfaces.Logger
//	}
//
//	// Create service
//	titleService := title.NewTitleService(deps)
//
//	// Parse a batch of titles
//	results := titleService.ParseBatch(ctx, []string{
//	    "The.Simpsons.S01E01.1080p.BluRay.x265",
//	}, false)
//
package core
