package wellness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodScheduleStressedIsExact(t *testing.T) {
	want := "🗓️ Mood-Based Schedule (Stress Relief):\n" +
		"Morning: 5-minute breathing + light breakfast + top 1 task.\n" +
		"Afternoon: 45-minute focused work + 10-minute break + hydration.\n" +
		"Evening: 20-minute walk + no-conflict zone for 30 minutes.\n" +
		"Night: screen-off 30 minutes before bed + body scan relaxation."
	assert.Equal(t, want, MoodSchedule("I feel stressed", ""))
}

func TestMoodScheduleFinancialNote(t *testing.T) {
	got := ScheduleFor("okay I guess", "worried about financial stuff")
	assert.Equal(t, PlanFinancialStress, got.Plan)
	assert.Equal(t, scheduleTexts[PlanFinancialStress], got.Text)
}

func TestScheduleForDecisionOrder(t *testing.T) {
	cases := []struct {
		name string
		mood string
		note string
		want SchedulePlan
	}{
		{name: "frustrated", mood: "Frustrated", want: PlanStressRelief},
		{name: "stressed beats low", mood: "stressed and low", want: PlanStressRelief},
		{name: "low", mood: "LOW", want: PlanLowMoodRecovery},
		{name: "low inside word", mood: "mellow", want: PlanLowMoodRecovery},
		{name: "hopeful", mood: "hopeful", want: PlanMomentum},
		{name: "mood beats financial note", mood: "hopeful", note: "financial mess", want: PlanMomentum},
		{name: "financial only in note", mood: "financial", want: PlanDailyBalance},
		{name: "note case insensitive", mood: "meh", note: "FINANCIAL worries", want: PlanFinancialStress},
		{name: "fallback", mood: "", note: "", want: PlanDailyBalance},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ScheduleFor(tc.mood, tc.note).Plan)
		})
	}
}

func TestScheduleTextsCoverEveryPlan(t *testing.T) {
	for _, plan := range []SchedulePlan{
		PlanStressRelief, PlanLowMoodRecovery, PlanMomentum, PlanFinancialStress, PlanDailyBalance,
	} {
		text, ok := scheduleTexts[plan]
		require.True(t, ok, "plan %q", plan)
		assert.NotEmpty(t, text)
	}
}

func TestDefaultTemplates(t *testing.T) {
	templates, err := DefaultTemplates()
	require.NoError(t, err)
	require.Len(t, templates, 3)
	assert.Equal(t, "Relationship Stress", templates[0].Title)
	assert.Equal(t, "💸", templates[2].Emoji)

	for _, item := range templates {
		reply := NewEngine(nil).Respond(NewMemory(), item.ChatPrompt, "auto")
		assert.Equal(t, ReplyDetailed, reply.Kind, "template %q", item.Title)
	}
}

func TestParseTemplatesRejectsIncomplete(t *testing.T) {
	_, err := ParseTemplates([]byte("templates:\n  - title: Missing prompt\n"))
	assert.Error(t, err)

	_, err = ParseTemplates([]byte("templates: ["))
	assert.Error(t, err)
}
