// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as the title parser library and logging.
//
// The infrastructure package is organized by technical concern:
//
// - parser/ptn: TitleParser implementation backed by the go-ptn library
// - logger/structured: logrus-backed structured logger implementation
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration where it matters
// - Testable: Include unit tests against the real library
//
// # Parser
//
// The parser adapter converts go-ptn's result struct into an open
// mapping so the output schema stays owned by the library:
//
//	parser := ptn.NewParser()
//	fields, err := parser.Parse(ctx, "Show.S01E01.1080p.x265", interfaces.ParseOptions{})
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewLogrusLogger("info")
//	logger.Info("Parsing title", map[string]interface{}{
//	    "title": "Show.S01E01.1080p.x265",
//	})
//
package infrastructure
