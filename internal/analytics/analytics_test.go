package analytics

import (
	"strings"
	"testing"
	"time"

	"study-buddy/internal/storage"
)

func TestAnalyzeDailyLogs(t *testing.T) {
	testDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	events := []storage.Event{
		{Timestamp: testDate.Add(2 * time.Hour), ChatID: 1, UserMessage: "explain photosynthesis", ResponseKind: "text"},
		{Timestamp: testDate.Add(4 * time.Hour), ChatID: 1, UserMessage: "draw me a cat", ResponseKind: "image"},
		{Timestamp: testDate.Add(6 * time.Hour), ChatID: 2, UserMessage: "what is pi?", ResponseKind: "error"},
		// Next day, must not count.
		{Timestamp: testDate.AddDate(0, 0, 1), ChatID: 3, UserMessage: "tomorrow", ResponseKind: "text"},
		// No user message, must not count.
		{Timestamp: testDate.Add(8 * time.Hour), ChatID: 1, UserMessage: ""},
	}

	stats := AnalyzeDailyLogs(events, testDate)

	if stats.Date != "2024-03-01" {
		t.Errorf("unexpected date: %q", stats.Date)
	}
	if stats.TotalTurns != 3 {
		t.Errorf("expected 3 turns, got %d", stats.TotalTurns)
	}
	if stats.UniqueChats != 2 {
		t.Errorf("expected 2 unique chats, got %d", stats.UniqueChats)
	}
	if stats.ResponsesByKind["text"] != 1 || stats.ResponsesByKind["image"] != 1 || stats.ResponsesByKind["error"] != 1 {
		t.Errorf("unexpected kind breakdown: %+v", stats.ResponsesByKind)
	}
	if cs := stats.ChatStats[1]; cs.Turns != 2 || cs.ResponsesByKind["image"] != 1 {
		t.Errorf("unexpected chat 1 stats: %+v", cs)
	}
}

func TestSummaryMentionsTotals(t *testing.T) {
	testDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	events := []storage.Event{
		{Timestamp: testDate.Add(time.Hour), ChatID: 1, UserMessage: "q", ResponseKind: "text"},
	}
	summary := AnalyzeDailyLogs(events, testDate).Summary()
	if !strings.Contains(summary, "2024-03-01") || !strings.Contains(summary, "Total turns: 1") {
		t.Fatalf("summary missing totals: %q", summary)
	}
}

func TestToJSON(t *testing.T) {
	stats := AnalyzeDailyLogs(nil, time.Now())
	out, err := stats.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(out, "\"total_turns\": 0") {
		t.Fatalf("unexpected json: %s", out)
	}
}
