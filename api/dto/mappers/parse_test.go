package mappers

import (
	"testing"

	"ptt-app-api/core/domain"
)

func TestToParseResponse_Success(t *testing.T) {
	result := domain.ParseResult{
		Success:       true,
		Data:          map[string]interface{}{"title": "Show"},
		OriginalTitle: "Show.S01E01.720p",
	}

	resp := ToParseResponse(result)

	if !resp.Success {
		t.Error("Success should be carried over")
	}
	if resp.Data["title"] != "Show" {
		t.Error("Data should be carried over")
	}
	if resp.Error != "" {
		t.Error("Error should be empty on success")
	}
	if resp.OriginalTitle != "Show.S01E01.720p" {
		t.Error("OriginalTitle should be carried over")
	}
}

func TestToParseResponse_Failure(t *testing.T) {
	result := domain.ParseResult{
		Success:       false,
		Error:         "boom",
		OriginalTitle: "garbage",
	}

	resp := ToParseResponse(result)

	if resp.Success {
		t.Error("Success should be false")
	}
	if resp.Error != "boom" {
		t.Error("Error should be carried over")
	}
	if resp.Data != nil {
		t.Error("Data should be nil on failure")
	}
}

func TestToBatchParseResponse(t *testing.T) {
	results := []domain.ParseResult{
		{Success: true, Data: map[string]interface{}{}, OriginalTitle: "a"},
		{Success: false, Error: "boom", OriginalTitle: "b"},
	}

	resp := ToBatchParseResponse(results)

	if !resp.Success {
		t.Error("Batch success should be true regardless of item outcomes")
	}
	if resp.TotalProcessed != 2 {
		t.Errorf("TotalProcessed = %d, want 2", resp.TotalProcessed)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Results count = %d, want 2", len(resp.Results))
	}
	if resp.Results[0].OriginalTitle != "a" || resp.Results[1].OriginalTitle != "b" {
		t.Error("Results should preserve input order")
	}
}

func TestToBatchParseResponse_Empty(t *testing.T) {
	resp := ToBatchParseResponse(nil)

	if resp.TotalProcessed != 0 {
		t.Errorf("TotalProcessed = %d, want 0", resp.TotalProcessed)
	}
	if len(resp.Results) != 0 {
		t.Errorf("Results count = %d, want 0", len(resp.Results))
	}
}

func TestToExamplesResponse(t *testing.T) {
	results := []domain.ExampleResult{
		{Title: "good", Parsed: map[string]interface{}{"title": "good"}},
		{Title: "bad", Error: "boom"},
	}

	resp := ToExamplesResponse(results)

	if len(resp.Examples) != 2 {
		t.Fatalf("Examples count = %d, want 2", len(resp.Examples))
	}
	if resp.Examples[0].Parsed == nil || resp.Examples[0].Error != "" {
		t.Error("First entry should carry parsed data only")
	}
	if resp.Examples[1].Error == "" || resp.Examples[1].Parsed != nil {
		t.Error("Second entry should carry an error only")
	}
}
