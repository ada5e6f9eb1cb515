package wellness

type Topic string

const (
	TopicStress     Topic = "stress"
	TopicAnxiety    Topic = "anxiety"
	TopicDepression Topic = "depression"
	TopicSleep      Topic = "sleep"
	TopicLoneliness Topic = "loneliness"
	TopicStudy      Topic = "study"
	TopicWork       Topic = "work"
)

type topicKeywords struct {
	Topic    Topic
	Keywords []string
}

// topicTable is scanned in declaration order; matched topics keep that order.
var topicTable = []topicKeywords{
	{Topic: TopicStress, Keywords: []string{"stress", "overwhelm", "pressure", "burnout", "tension"}},
	{Topic: TopicAnxiety, Keywords: []string{"anxiety", "anxious", "panic", "nervous", "fear", "worried"}},
	{Topic: TopicDepression, Keywords: []string{"depressed", "depression", "hopeless", "worthless", "empty", "no energy", "low"}},
	{Topic: TopicSleep, Keywords: []string{"sleep", "insomnia", "night", "tired"}},
	{Topic: TopicLoneliness, Keywords: []string{"alone", "lonely", "isolated", "nobody"}},
	{Topic: TopicStudy, Keywords: []string{"exam", "study", "college", "school", "marks"}},
	{Topic: TopicWork, Keywords: []string{"job", "office", "deadline", "boss", "career"}},
}

var crisisPhrases = []string{
	"suicide", "kill myself", "end my life", "die", "self harm", "self-harm",
	"i want to disappear", "i cannot go on", "hurt myself", "no reason to live",
}

var detailTriggerKeywords = []string{
	"detailed", "plan", "solution", "weekly", "timetable", "routine", "schedule",
}

// timetableTriggerKeywords gates the weekly timetable section. It is kept
// apart from detailTriggerKeywords so either list can change on its own.
var timetableTriggerKeywords = []string{
	"plan", "detailed", "solution", "timetable", "weekly", "routine", "schedule",
}

// Topics returns every known topic in table order.
func Topics() []Topic {
	out := make([]Topic, 0, len(topicTable))
	for _, entry := range topicTable {
		out = append(out, entry.Topic)
	}
	return out
}

type shortCategory struct {
	Name     string
	Marker   string
	Keywords []string
	Pool     []string
}

var (
	stressLines = []string{
		"You're carrying a lot right now. Let's shrink this moment: inhale 4, hold 4, exhale 6. Repeat 3 rounds.",
		"Stress can feel loud, but this step matters: drink water, unclench your jaw, drop your shoulders, breathe slowly.",
		"Let's do a 60-second reset. Place your feet on the ground and name 3 things you can see right now.",
	}
	sadLines = []string{
		"I'm here with you. You don't need to explain perfectly. What has felt heaviest today?",
		"Thank you for opening up. Even sharing this is a strong step. Want to tell me what triggered this feeling?",
		"You deserve care and rest, not pressure. We can take this one thought at a time.",
	}
	anxietyLines = []string{
		"Try the 5-4-3-2-1 grounding exercise: 5 things you see, 4 you feel, 3 you hear, 2 you smell, 1 you taste.",
		"Anxiety rises like a wave. Breathe in slowly through your nose, out longer through your mouth. You're safe in this moment.",
		"Let's focus on control: pick one tiny task you can finish in 2 minutes. Small wins calm the mind.",
	}
	sleepLines = []string{
		"If sleep is hard, try a wind-down: dim lights, no scrolling for 20 minutes, and slow breathing.",
		"Racing thoughts at night are exhausting. Keep a note nearby and park thoughts on paper before bed.",
		"Try body scan relaxation: relax forehead, jaw, shoulders, chest, arms, and legs one by one.",
	}
	lonelyLines = []string{
		"Feeling alone can be painful. Is there one person you can text: 'I need a little support today'?",
		"You matter to people, even when the mind says otherwise. Want to plan one low-pressure connection step?",
		"Let's reduce the isolation gently: a short walk, a familiar song, and one kind message to someone you trust.",
	}
	defaultLines = []string{
		"Thank you for sharing this. I'm listening without judgment. Tell me a little more.",
		"You're not alone in this conversation. We can work through this step by step.",
		"Your feelings are valid. If you want, we can focus on one thing that's hardest right now.",
	}
)

// shortCategories is checked top to bottom; the first keyword hit wins.
var shortCategories = []shortCategory{
	{Name: "stress", Marker: "🫶", Keywords: []string{"stress", "overwhelm", "pressure", "burnout"}, Pool: stressLines},
	{Name: "sadness", Marker: "🌧️", Keywords: []string{"sad", "cry"}, Pool: sadLines},
	{Name: "anxiety", Marker: "🌿", Keywords: []string{"anxiety", "panic", "nervous", "fear", "worried"}, Pool: anxietyLines},
	{Name: "sleep", Marker: "🌙", Keywords: []string{"sleep", "insomnia", "tired", "night"}, Pool: sleepLines},
	{Name: "loneliness", Marker: "🤝", Keywords: []string{"alone", "lonely", "isolated", "nobody"}, Pool: lonelyLines},
	{Name: "gratitude", Marker: "💛", Keywords: []string{"thanks", "thank you"}, Pool: []string{"You're welcome. I'm proud of you for reaching out today."}},
	{Name: "hope", Marker: "✨", Keywords: []string{"hope"}, Pool: []string{"You are still here, and that means strength. One gentle step today is enough."}},
}

var defaultCategory = shortCategory{Name: "default", Marker: "💬", Pool: defaultLines}

const (
	PromptForInput = "I'm here whenever you're ready. You can type how you're feeling in one line. 💬"

	CrisisResponse = "🚨 You are not alone, and your life matters. Please reach immediate support now.\n" +
		"US & Canada: Call or text 988 (24/7 Suicide & Crisis Lifeline)\n" +
		"India: Tele-MANAS 14416 or 1-800-891-4416\n" +
		"If you are in immediate danger, call emergency services now."
)
