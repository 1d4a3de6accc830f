package title

import (
	"context"

	"ptt-app-api/core/interfaces"
)

// mockParser is a mock implementation of the TitleParser interface
type mockParser struct {
	parseFunc func(ctx context.Context, title string, opts interfaces.ParseOptions) (map[string]interface{}, error)
	calls     []string
}

func (m *mockParser) Parse(ctx context.Context, title string, opts interfaces.ParseOptions) (map[string]interface{}, error) {
	m.calls = append(m.calls, title)
	if m.parseFunc != nil {
		return m.parseFunc(ctx, title, opts)
	}
	return map[string]interface{}{"title": title}, nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	errorMessages []string
	errorFields   []map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.errorMessages = append(m.errorMessages, msg)
	m.errorFields = append(m.errorFields, fields)
}
