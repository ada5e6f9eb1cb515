package wellness

import (
	"math/rand"
	"strings"
)

// Picker chooses an index in [0, n). Tests swap in a fixed sequence.
type Picker interface {
	Intn(n int) int
}

type randomPicker struct{}

func (randomPicker) Intn(n int) int {
	return rand.Intn(n)
}

type SectionName string

const (
	SectionUnderstanding   SectionName = "understanding"
	SectionMemory          SectionName = "memory"
	SectionDepressionPlan  SectionName = "depression_plan"
	SectionWeeklyTimetable SectionName = "weekly_timetable"
	SectionNextSteps       SectionName = "next_steps"
	SectionCrisisResources SectionName = "crisis_resources"
)

type Section struct {
	Name SectionName
	Body string
}

const (
	sectionSeparator       = "\n\n"
	understandingRuneLimit = 120
)

const depressionSupportPlan = "💙 Detailed Support Plan for Low/Depressed Mood:\n" +
	"1) 🧘 Stabilize now (next 10 minutes): drink water, sit upright, and take 8 slow breaths.\n" +
	"2) 📝 Name the thought: write one painful thought and one kinder alternative.\n" +
	"3) 🚶 Move for 10-15 minutes: walk, stretch, or sunlight exposure.\n" +
	"4) 🍲 Basic reset: eat something simple and protein-rich; avoid skipping meals.\n" +
	"5) 📞 Connection step: message one trusted person with: 'I'm having a hard day, can we talk?'\n" +
	"6) 🎯 Micro-goal: complete one tiny task (2-5 minutes) to build momentum.\n" +
	"7) 🌙 Night care: reduce screen use 30 minutes before sleep and do breathing rounds."

const weeklyTimetableBody = "🗓️ Weekly Recovery Timetable (repeatable):\n" +
	"Mon: 🌅 10-min walk | 📚 45-min focus block | 🌙 Fixed sleep time\n" +
	"Tue: 🧘 Breathing 6 min | 🤝 Talk to one trusted person | 📝 Journal 5 lines\n" +
	"Wed: 🚶 20-min movement | 🎯 3 micro tasks | 🌿 Gratitude note\n" +
	"Thu: 🌞 Morning sunlight | 🍲 Balanced meals | 📵 30-min digital break\n" +
	"Fri: 🎵 Relaxation time | ✅ Review weekly wins | 💬 Emotional check-in\n" +
	"Sat: 🧹 Space reset 15 min | ❤️ Hobby time | 😴 Early wind-down\n" +
	"Sun: 📊 Mood review | 🗂 Plan next week | ☕ Gentle self-care\n"

const (
	focusStudy   = "Focus of this week: low-pressure study blocks + mental recovery."
	focusWork    = "Focus of this week: stress-safe productivity + recovery breaks."
	focusGeneral = "Focus of this week: calm body, structure day, reconnect with people."
)

const nextStepsBody = "🧩 Next Best 3 Steps (today):\n" +
	"1) Complete one 5-minute task now.\n" +
	"2) Message one trusted person.\n" +
	"3) Follow one calm routine tonight (breathing + fixed sleep)."

const crisisFooterBody = "🆘 If things feel unsafe or unbearable:\n" +
	"US & Canada: Call or text 988\n" +
	"India: Tele-MANAS 14416 or 1-800-891-4416"

type Composer struct {
	picker Picker
}

// NewComposer returns a Composer that picks pool lines with picker. A nil
// picker falls back to math/rand.
func NewComposer(picker Picker) *Composer {
	if picker == nil {
		picker = randomPicker{}
	}
	return &Composer{picker: picker}
}

// ComposeShort picks one line from the first category whose keywords appear
// in lower and prefixes it with the category marker.
func (c *Composer) ComposeShort(lower string) string {
	category := defaultCategory
	for _, candidate := range shortCategories {
		if containsAnyKeyword(lower, candidate.Keywords) {
			category = candidate
			break
		}
	}
	return category.Marker + " " + c.pick(category.Pool)
}

func (c *Composer) pick(pool []string) string {
	if len(pool) == 1 {
		return pool[0]
	}
	idx := c.picker.Intn(len(pool))
	if idx < 0 || idx >= len(pool) {
		idx = 0
	}
	return pool[idx]
}

// DetailedSections builds the detailed answer in output order. lastSummary
// is the most recent memory entry, if any.
func (c *Composer) DetailedSections(message, lower string, mode Mode, topics []Topic, lastSummary string, hasSummary bool) []Section {
	sections := make([]Section, 0, 6)
	sections = append(sections, Section{
		Name: SectionUnderstanding,
		Body: "🔎 What I Understood:\n" + summarizeUnderstanding(topics, message),
	})
	if hasSummary {
		sections = append(sections, Section{
			Name: SectionMemory,
			Body: "🧠 Context Memory:\nBased on earlier chat, I also remember concern about: " + lastSummary + ".",
		})
	}
	if hasTopic(topics, TopicDepression) {
		sections = append(sections, Section{Name: SectionDepressionPlan, Body: depressionSupportPlan})
	}
	if mode.forcesDetail() || containsAnyKeyword(lower, timetableTriggerKeywords) {
		sections = append(sections, Section{Name: SectionWeeklyTimetable, Body: weeklyTimetable(topics)})
	}
	sections = append(sections,
		Section{Name: SectionNextSteps, Body: nextStepsBody},
		Section{Name: SectionCrisisResources, Body: crisisFooterBody},
	)
	return sections
}

// JoinSections renders sections with a blank line between each.
func JoinSections(sections []Section) string {
	bodies := make([]string, 0, len(sections))
	for _, section := range sections {
		bodies = append(bodies, section.Body)
	}
	return strings.Join(bodies, sectionSeparator)
}

func summarizeUnderstanding(topics []Topic, message string) string {
	if len(topics) > 0 {
		return "I understood that you're dealing with: " + joinTopics(topics) + "."
	}
	return "I understood your concern as: '" + truncateRunes(message, understandingRuneLimit) + "'."
}

func weeklyTimetable(topics []Topic) string {
	focus := focusGeneral
	switch {
	case hasTopic(topics, TopicStudy):
		focus = focusStudy
	case hasTopic(topics, TopicWork):
		focus = focusWork
	}
	return weeklyTimetableBody + focus
}

func truncateRunes(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
