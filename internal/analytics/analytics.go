package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"study-buddy/internal/storage"
)

// DailyStats aggregates recorded turns for one day.
type DailyStats struct {
	Date            string              `json:"date"`
	TotalTurns      int                 `json:"total_turns"`
	UniqueChats     int                 `json:"unique_chats"`
	ResponsesByKind map[string]int      `json:"responses_by_kind"`
	ChatStats       map[int64]ChatStats `json:"chat_stats"`
}

// ChatStats aggregates turns of a single chat.
type ChatStats struct {
	ChatID          int64          `json:"chat_id"`
	Turns           int            `json:"turns"`
	ResponsesByKind map[string]int `json:"responses_by_kind"`
}

// AnalyzeDailyLogs aggregates the events that fall on the target date.
func AnalyzeDailyLogs(events []storage.Event, targetDate time.Time) *DailyStats {
	startOfDay := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), 0, 0, 0, 0, targetDate.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	stats := &DailyStats{
		Date:            startOfDay.Format("2006-01-02"),
		ResponsesByKind: make(map[string]int),
		ChatStats:       make(map[int64]ChatStats),
	}

	uniqueChats := make(map[int64]bool)

	for _, event := range events {
		if event.Timestamp.Before(startOfDay) || !event.Timestamp.Before(endOfDay) {
			continue
		}
		if event.UserMessage == "" {
			continue
		}

		stats.TotalTurns++
		uniqueChats[event.ChatID] = true
		if event.ResponseKind != "" {
			stats.ResponsesByKind[event.ResponseKind]++
		}

		chatStat, exists := stats.ChatStats[event.ChatID]
		if !exists {
			chatStat = ChatStats{
				ChatID:          event.ChatID,
				ResponsesByKind: make(map[string]int),
			}
		}
		chatStat.Turns++
		if event.ResponseKind != "" {
			chatStat.ResponsesByKind[event.ResponseKind]++
		}
		stats.ChatStats[event.ChatID] = chatStat
	}

	stats.UniqueChats = len(uniqueChats)
	return stats
}

// Summary renders a plain-text report suitable for the admin chat.
func (ds *DailyStats) Summary() string {
	summary := fmt.Sprintf(`Study Buddy usage for %s:

- Total turns: %d
- Unique chats: %d
`, ds.Date, ds.TotalTurns, ds.UniqueChats)

	if len(ds.ResponsesByKind) > 0 {
		summary += "\nResponses by kind:\n"
		for kind, count := range ds.ResponsesByKind {
			summary += fmt.Sprintf("- %s: %d\n", kind, count)
		}
	}

	return summary
}

// ToJSON serializes the stats for the inspection endpoint.
func (ds *DailyStats) ToJSON() (string, error) {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
