// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Parser provides the torrent-title parse capability
	Parser TitleParser

	// Logger provides structured logging
	Logger Logger
}
