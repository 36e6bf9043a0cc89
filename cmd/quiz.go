package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/adaptiq/internal/profile"
	"github.com/abhisek/adaptiq/internal/quizgen"
	"github.com/abhisek/adaptiq/internal/session"
	"github.com/abhisek/adaptiq/internal/store"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run an adaptive quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		child, err := childID(cmd)
		if err != nil {
			return err
		}
		subject, questions, err := composeArgs(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		p, err := e.service.InitializeProfile(ctx, child, e.cfg.FamilyID)
		if err != nil {
			return err
		}
		lastSession, err := e.service.LastSessionEnd(ctx, child, subject)
		if err != nil {
			return err
		}

		now := time.Now()
		rng := rand.New(rand.NewSource(now.UnixNano()))
		plan := session.BuildPlan(p, subject, questions, lastSession, true, now, rng)
		if len(plan.Slots) == 0 {
			fmt.Println("Nothing to quiz on yet.")
			return nil
		}

		generated, err := quizgen.StaticGenerator{}.Generate(ctx, quizgen.Request{
			Topics:         plan.Topics(),
			Difficulty:     plan.Difficulties(),
			MasteryPercent: p.MasteryPercent(),
		})
		if err != nil {
			return fmt.Errorf("generate questions: %w", err)
		}

		state := session.New(child, plan, now)
		runQuizLoop(state, generated)

		summary := state.Summarize(time.Now())
		_, err = e.service.ProcessQuizResult(ctx, quizResultFrom(state, summary, string(subject), e.cfg.FamilyID))
		if err != nil {
			return err
		}

		fmt.Printf("\nSession over (%s): %d/%d correct in %s.\n",
			summary.EndReason, summary.Correct, summary.Questions, summary.Duration.Round(time.Second))
		if state.Encouragement != "" {
			fmt.Println(state.Encouragement)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().String("subject", "math", "Subject to quiz on")
	quizCmd.Flags().Int("questions", 10, "Number of questions")
}

// runQuizLoop serves questions until the session reaches a terminal
// state. EOF on stdin abandons the session.
func runQuizLoop(state *session.State, questions []quizgen.Question) {
	reader := bufio.NewReader(os.Stdin)

	for !state.Finished {
		slot := state.CurrentSlot()
		if slot == nil {
			break
		}
		idx := state.NextSlot
		if idx >= len(questions) {
			state.Abandon()
			break
		}
		q := questions[idx]

		fmt.Printf("\n[%d/%d] %s\n", idx+1, len(questions), q.Prompt)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}

		started := time.Now()
		choice, ok := readChoice(reader, len(q.Options))
		if !ok {
			state.Abandon()
			break
		}
		state.SubmitAnswer(q.Check(choice), int(time.Since(started).Milliseconds()))
	}
}

// readChoice reads a 1-based option number, reprompting on bad input.
// Returns ok=false on EOF.
func readChoice(reader *bufio.Reader, options int) (int, bool) {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= options {
			return n - 1, true
		}
		fmt.Printf("Enter a number between 1 and %d.\n", options)
	}
}

// quizResultFrom converts a finished session into the ingestion shape.
func quizResultFrom(state *session.State, summary session.Summary, subjectID, familyID string) profile.QuizResult {
	res := profile.QuizResult{
		SessionID:   summary.SessionID,
		ChildID:     summary.ChildID,
		FamilyID:    familyID,
		SubjectID:   subjectID,
		Probes:      summary.ProbeResults,
		EndReason:   string(summary.EndReason),
		EarlyExit:   summary.EarlyExit,
		ReviewMode:  state.Plan.ReviewMode,
		Duration:    summary.Duration,
		CompletedAt: time.Now(),
	}
	for _, slot := range state.Plan.Slots {
		res.Plan = append(res.Plan, store.PlanSlotSummary{
			Topic:      slot.Topic,
			Difficulty: string(slot.Difficulty),
			Probe:      slot.Probe,
		})
	}
	for _, ans := range summary.GradedAnswers {
		res.Answers = append(res.Answers, profile.QuizAnswer{
			Topic:      ans.Topic,
			Difficulty: difficultyOf(state.Plan, ans.Topic),
			Correct:    ans.Correct,
			TimeMs:     ans.ElapsedMs,
		})
	}
	for i, ans := range state.Answers {
		if i < len(state.Plan.Slots) && state.Plan.Slots[i].Probe {
			res.ProbeAnswers = append(res.ProbeAnswers, profile.QuizAnswer{
				Topic:      ans.Topic,
				Difficulty: string(quizgen.DifficultyReview),
				Correct:    ans.Correct,
				TimeMs:     ans.ElapsedMs,
			})
		}
	}
	return res
}

func difficultyOf(plan session.Plan, topic string) string {
	for _, slot := range plan.Slots {
		if slot.Topic == topic && !slot.Probe {
			return string(slot.Difficulty)
		}
	}
	return string(quizgen.DifficultyTarget)
}
