package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/llm"
	"github.com/obrev/obrev/internal/questiongen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a topic (no database)",
	Long: `Generate and interactively answer questions for a module topic.

This is a stateless developer tool — no database, no progress tracking, no
events. Useful for evaluating question quality against the curriculum.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("module", "", "Module ID (required)")
	previewCmd.Flags().String("topic", "", "Topic ID within the module")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("module")
}

func runPreview(cmd *cobra.Command, args []string) error {
	moduleID, _ := cmd.Flags().GetString("module")
	topicID, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")

	mod := content.ModuleByID(moduleID)
	if mod == nil {
		return fmt.Errorf("unknown module %q", moduleID)
	}
	topic := &mod.Topics[0]
	if topicID != "" {
		topic = mod.Topic(topicID)
		if topic == nil {
			return fmt.Errorf("module %q has no topic %q", moduleID, topicID)
		}
	}

	// No EventRepo — request logging is skipped.
	ctx := context.Background()
	cfg, ok := discoverLLM()
	if !ok {
		return fmt.Errorf("no LLM provider configured: set an API key or OBREV_LLM_PROVIDER")
	}
	provider, err := llm.NewProvider(ctx, cfg, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := questiongen.New(provider, questiongen.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Topic: %s — %s\n", mod.Title, topic.Title)
	fmt.Printf("Generating %d questions...\n\n", count)

	var correct int
	var priorPrompts []string

	for i := 1; i <= count; i++ {
		q, err := gen.Generate(ctx, questiongen.GenerateInput{
			Module:       mod,
			Topic:        topic,
			PriorPrompts: priorPrompts,
		})
		if err != nil {
			fmt.Printf("Question %d: generation failed: %v\n\n", i, err)
			continue
		}
		priorPrompts = append(priorPrompts, q.Prompt)

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		choice, err := strconv.Atoi(answer)
		if err == nil && choice-1 == q.Answer {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Options[q.Answer])
		}
		if q.Rationale != "" {
			fmt.Printf("Rationale: %s\n", q.Rationale)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
