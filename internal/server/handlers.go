package server

import (
	"strconv"
	"strings"

	"mindease/backend/internal/wellness"
)

type chatRespondRequest struct {
	Message   string `json:"message"`
	Mode      string `json:"mode"`
	SessionID string `json:"session_id"`
}

type moodPlanRequest struct {
	Mood string `json:"mood" form:"mood"`
	Note string `json:"note" form:"note"`
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// parseLimit reads a positive limit query value, clamped to maxListLimit.
func parseLimit(raw string) int {
	limit := defaultListLimit
	if trimmed := strings.TrimSpace(raw); trimmed != "" {
		if parsed, err := strconv.Atoi(trimmed); err == nil && parsed > 0 {
			if parsed > maxListLimit {
				parsed = maxListLimit
			}
			limit = parsed
		}
	}
	return limit
}

func topicNames(topics []wellness.Topic) []string {
	names := make([]string, 0, len(topics))
	for _, topic := range topics {
		names = append(names, string(topic))
	}
	return names
}

func sectionNames(sections []wellness.Section) []string {
	names := make([]string, 0, len(sections))
	for _, section := range sections {
		names = append(names, string(section.Name))
	}
	return names
}

func normalizeRequestMode(raw string) string {
	mode := strings.TrimSpace(raw)
	if mode == "" {
		return string(wellness.ModeAuto)
	}
	return mode
}
