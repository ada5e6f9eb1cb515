package wellness

import "strings"

type ReplyKind string

const (
	ReplyCrisis   ReplyKind = "crisis"
	ReplyDetailed ReplyKind = "detailed"
	ReplyShort    ReplyKind = "short"
)

type Reply struct {
	Text     string
	Kind     ReplyKind
	Mode     Mode
	Topics   []Topic
	Sections []Section
}

// Engine runs the chat pipeline. It holds no conversation state; callers
// pass the Memory to read and update on every call.
type Engine struct {
	composer *Composer
}

func NewEngine(picker Picker) *Engine {
	return &Engine{composer: NewComposer(picker)}
}

// Respond classifies message and composes the reply. A crisis match returns
// CrisisResponse and leaves mem untouched. Otherwise the reply is composed
// against the prior memory and mem then records the matched topics.
//
// Blank messages are not special-cased here; callers answer them with
// PromptForInput.
func (e *Engine) Respond(mem *Memory, message, rawMode string) Reply {
	message = strings.TrimSpace(message)
	mode := ParseMode(rawMode)
	lower := normalizeMessage(message)

	if isCrisis(lower) {
		return Reply{Text: CrisisResponse, Kind: ReplyCrisis, Mode: mode}
	}

	topics := detectTopics(lower)
	reply := Reply{Mode: mode, Topics: topics}
	if NeedsDetailed(lower, mode, topics) {
		var last string
		var hasLast bool
		if mem != nil {
			last, hasLast = mem.LastSummary()
		}
		reply.Kind = ReplyDetailed
		reply.Sections = e.composer.DetailedSections(message, lower, mode, topics, last, hasLast)
		reply.Text = JoinSections(reply.Sections)
	} else {
		reply.Kind = ReplyShort
		reply.Text = e.composer.ComposeShort(lower)
	}

	if mem != nil {
		mem.Record(topics)
	}
	return reply
}

func (e *Engine) ClassifyAndRespond(mem *Memory, message, mode string) string {
	return e.Respond(mem, message, mode).Text
}

// MoodSchedule is the mood pipeline entry point.
func MoodSchedule(mood, note string) string {
	return ScheduleFor(mood, note).Text
}
