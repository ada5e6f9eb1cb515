package wellness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeDetailed, ParseMode("detailed"))
	assert.Equal(t, ModeTimetable, ParseMode("  TimeTable "))
	assert.Equal(t, ModeAuto, ParseMode("auto"))
	assert.Equal(t, ModeAuto, ParseMode(""))
	assert.Equal(t, ModeAuto, ParseMode("quick"))
}

func TestNeedsDetailed(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		mode   Mode
		topics []Topic
		want   bool
	}{
		{name: "explicit detailed", text: "hi", mode: ModeDetailed, want: true},
		{name: "explicit timetable", text: "hi", mode: ModeTimetable, want: true},
		{name: "trigger keyword", text: "need a routine", mode: ModeAuto, want: true},
		{name: "trigger inside word", text: "replanting", mode: ModeAuto, want: true},
		{name: "topic in auto", text: "so lonely", mode: ModeAuto, topics: []Topic{TopicLoneliness}, want: true},
		{name: "eight words in auto", text: "one two three four five six seven eight", mode: ModeAuto, want: true},
		{name: "seven words in auto", text: "one two three four five six seven", mode: ModeAuto, want: false},
		{name: "extra whitespace does not count", text: "  one   two\tthree \n four  ", mode: ModeAuto, want: false},
		{name: "short plain", text: "thanks", mode: ModeAuto, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NeedsDetailed(tc.text, tc.mode, tc.topics))
		})
	}
}

func TestNeedsDetailedExplicitModesNeverReduceDetail(t *testing.T) {
	samples := []string{
		"",
		"thanks",
		"i feel sad",
		"give me a weekly schedule",
		"i really do not know what is going on with me today",
		"my boss is a problem",
	}
	for _, text := range samples {
		lower := strings.ToLower(text)
		topics := detectTopics(lower)
		if NeedsDetailed(lower, ModeAuto, topics) {
			assert.True(t, NeedsDetailed(lower, ModeDetailed, topics), "text %q", text)
			assert.True(t, NeedsDetailed(lower, ModeTimetable, topics), "text %q", text)
		}
	}
}
