package wellness

import "strings"

type SchedulePlan string

const (
	PlanStressRelief    SchedulePlan = "stress_relief"
	PlanLowMoodRecovery SchedulePlan = "low_mood_recovery"
	PlanMomentum        SchedulePlan = "momentum"
	PlanFinancialStress SchedulePlan = "financial_stress"
	PlanDailyBalance    SchedulePlan = "daily_balance"
)

type Schedule struct {
	Plan SchedulePlan
	Text string
}

var scheduleTexts = map[SchedulePlan]string{
	PlanStressRelief: "🗓️ Mood-Based Schedule (Stress Relief):\n" +
		"Morning: 5-minute breathing + light breakfast + top 1 task.\n" +
		"Afternoon: 45-minute focused work + 10-minute break + hydration.\n" +
		"Evening: 20-minute walk + no-conflict zone for 30 minutes.\n" +
		"Night: screen-off 30 minutes before bed + body scan relaxation.",
	PlanLowMoodRecovery: "🗓️ Mood-Based Schedule (Low Mood Recovery):\n" +
		"Morning: open curtains + water + 10-minute sunlight.\n" +
		"Afternoon: one small productive task + one connection message.\n" +
		"Evening: gentle movement + warm meal + gratitude note.\n" +
		"Night: calming audio + fixed sleep time.",
	PlanMomentum: "🗓️ Mood-Based Schedule (Momentum Plan):\n" +
		"Morning: plan top 3 priorities.\n" +
		"Afternoon: deep work block + check-in break.\n" +
		"Evening: social or family connection + hobby.\n" +
		"Night: review wins and prep tomorrow.",
	PlanFinancialStress: "🗓️ Mood + Financial Stress Schedule:\n" +
		"Mon/Wed/Fri: 20-minute budget review and expense tracking.\n" +
		"Tue/Thu: 30-minute skill or job search block.\n" +
		"Daily: avoid money doom-scrolling; focus only on planned actions.",
	PlanDailyBalance: "🗓️ Mood-Based Daily Balance Schedule:\n" +
		"Morning: hydration + intention.\n" +
		"Afternoon: one focused block + one reset break.\n" +
		"Evening: light movement + supportive conversation.\n" +
		"Night: low-screen routine + fixed sleep window.",
}

// ScheduleFor picks a daily schedule. Mood words are checked first; the note
// only matters when no mood word matched.
func ScheduleFor(mood, note string) Schedule {
	plan := selectPlan(strings.ToLower(mood), strings.ToLower(note))
	return Schedule{Plan: plan, Text: scheduleTexts[plan]}
}

func selectPlan(mood, note string) SchedulePlan {
	switch {
	case strings.Contains(mood, "stressed") || strings.Contains(mood, "frustrated"):
		return PlanStressRelief
	case strings.Contains(mood, "low"):
		return PlanLowMoodRecovery
	case strings.Contains(mood, "hopeful"):
		return PlanMomentum
	case strings.Contains(note, "financial"):
		return PlanFinancialStress
	default:
		return PlanDailyBalance
	}
}
