package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindease/backend/internal/wellness"
)

type zeroPicker struct{}

func (zeroPicker) Intn(int) int { return 0 }

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(wellness.NewEngine(zeroPicker{}))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestChatSingleMessage(t *testing.T) {
	out, err := execute(t, "", "chat", "thanks")
	require.NoError(t, err)
	assert.Equal(t, "💛 You're welcome. I'm proud of you for reaching out today.\n", out)
}

func TestChatWithoutMessagePrompts(t *testing.T) {
	out, err := execute(t, "", "chat")
	require.NoError(t, err)
	assert.Equal(t, wellness.PromptForInput+"\n", out)
}

func TestChatCrisis(t *testing.T) {
	out, err := execute(t, "", "chat", "--mode", "timetable", "I", "want", "to", "die")
	require.NoError(t, err)
	assert.Equal(t, wellness.CrisisResponse+"\n", out)
}

func TestChatSessionKeepsMemoryUntilExit(t *testing.T) {
	input := "my boss is awful\n\nI can't sleep\nexit\nthanks\n"
	out, err := execute(t, input, "chat", "--session")
	require.NoError(t, err)

	assert.Contains(t, out, "I also remember concern about: work.")
	assert.NotContains(t, out, "You're welcome")
	assert.Equal(t, 1, strings.Count(out, "Context Memory"))
}

func TestMoodCommand(t *testing.T) {
	out, err := execute(t, "", "mood", "feeling", "low", "--note", "financial worries")
	require.NoError(t, err)
	assert.Equal(t, wellness.MoodSchedule("feeling low", "financial worries")+"\n", out)
	assert.Contains(t, out, "Low Mood Recovery")
}

func TestMoodCommandRequiresMood(t *testing.T) {
	_, err := execute(t, "", "mood")
	assert.Error(t, err)
}

func TestTemplatesCommand(t *testing.T) {
	out, err := execute(t, "", "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "💞 Relationship Stress")
	assert.Contains(t, out, "😰 Anxiety Overload")
	assert.Contains(t, out, "💸 Financial Pressure")
	assert.Equal(t, 3, strings.Count(out, "Try:"))
}
