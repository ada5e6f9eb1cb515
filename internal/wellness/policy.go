package wellness

import "strings"

type Mode string

const (
	ModeAuto      Mode = "auto"
	ModeDetailed  Mode = "detailed"
	ModeTimetable Mode = "timetable"
)

const detailWordThreshold = 8

// ParseMode maps caller input to a Mode. Anything unrecognized is auto.
func ParseMode(input string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(input))) {
	case ModeDetailed:
		return ModeDetailed
	case ModeTimetable:
		return ModeTimetable
	default:
		return ModeAuto
	}
}

func (m Mode) forcesDetail() bool {
	return m == ModeDetailed || m == ModeTimetable
}

// NeedsDetailed decides between the detailed and short response paths.
// lower must already be lowercased.
func NeedsDetailed(lower string, mode Mode, topics []Topic) bool {
	if mode.forcesDetail() {
		return true
	}
	if containsAnyKeyword(lower, detailTriggerKeywords) {
		return true
	}
	if mode == ModeAuto && (len(topics) > 0 || len(strings.Fields(lower)) >= detailWordThreshold) {
		return true
	}
	return false
}
