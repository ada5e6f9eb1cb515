package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mindease/backend/internal/wellness"
)

func main() {
	if err := newRootCmd(wellness.NewEngine(nil)).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(engine *wellness.Engine) *cobra.Command {
	root := &cobra.Command{
		Use:          "mindease",
		Short:        "MindEase wellness chat from the terminal",
		SilenceUsage: true,
	}
	root.AddCommand(newChatCmd(engine), newMoodCmd(), newTemplatesCmd())
	return root
}

func newChatCmd(engine *wellness.Engine) *cobra.Command {
	var mode string
	var session bool

	cmd := &cobra.Command{
		Use:   "chat [message...]",
		Short: "Get a response to a message",
		Long: "Get a response to a message. With --session, read one message per line " +
			"from stdin and remember topics across lines until EOF or \"exit\".",
		RunE: func(cmd *cobra.Command, args []string) error {
			mem := wellness.NewMemory()
			if session {
				return runChatSession(cmd.InOrStdin(), cmd.OutOrStdout(), engine, mem, mode)
			}
			fmt.Fprintln(cmd.OutOrStdout(), respond(engine, mem, strings.Join(args, " "), mode))
			return nil
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(wellness.ModeAuto), "response mode: auto, detailed or timetable")
	cmd.Flags().BoolVarP(&session, "session", "s", false, "interactive session reading messages from stdin")
	return cmd
}

func respond(engine *wellness.Engine, mem *wellness.Memory, message, mode string) string {
	if strings.TrimSpace(message) == "" {
		return wellness.PromptForInput
	}
	return engine.Respond(mem, message, mode).Text
}

func runChatSession(in io.Reader, out io.Writer, engine *wellness.Engine, mem *wellness.Memory, mode string) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "exit", "quit":
			return nil
		case "":
			continue
		}
		fmt.Fprintln(out, respond(engine, mem, line, mode))
		fmt.Fprintln(out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read session input: %w", err)
	}
	return nil
}

func newMoodCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "mood <mood...>",
		Short: "Print a daily schedule for a mood",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood := strings.TrimSpace(strings.Join(args, " "))
			if mood == "" {
				return fmt.Errorf("mood is required")
			}
			fmt.Fprintln(cmd.OutOrStdout(), wellness.MoodSchedule(mood, strings.TrimSpace(note)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&note, "note", "n", "", "optional note, e.g. what is weighing on you")
	return cmd
}

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the starter problem templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			templates, err := wellness.DefaultTemplates()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, tpl := range templates {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s %s\n", tpl.Emoji, tpl.Title)
				fmt.Fprintf(out, "  Problem:  %s\n", tpl.Problem)
				fmt.Fprintf(out, "  Solution: %s\n", tpl.Solution)
				fmt.Fprintf(out, "  Try:      mindease chat %q\n", tpl.ChatPrompt)
			}
			return nil
		},
	}
}
