package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a nursing instructor writing NCLEX-style practice questions for an obstetric nursing course.

Rules:
- Generate a single multiple-choice question for the given module and topic.
- Ground the question in the listed key points. Do not drift into other specialties.
- Use plain ASCII text. Spell out units (mL, mmHg, bpm are fine as-is).
- Provide exactly 4 options where exactly one is correct. Distractors should reflect plausible clinical errors, not random statements.
- The rationale must explain both why the correct answer is right and why the distractors are wrong.
- Prioritize assessment-first and safety-first reasoning, as the NCLEX does.
- Do not repeat any question from the "already asked" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Module: %s\n", input.Module.Title)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic.Title)
	fmt.Fprintf(&b, "Topic description: %s\n", input.Topic.Description)
	if input.Difficulty != "" {
		fmt.Fprintf(&b, "Target difficulty: %s\n", input.Difficulty)
	}

	b.WriteString("\nKey points to draw from:\n")
	for _, kp := range input.Topic.KeyPoints {
		fmt.Fprintf(&b, "- %s\n", kp)
	}

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorPrompts, cfg.MaxPriorPrompts))

	return b.String()
}

// buildDedup formats prior prompts for the prompt, respecting the max
// limit. Returns "None" if there are no prior prompts.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}

	// Keep only the most recent N prompts.
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}

	var b strings.Builder
	for i, p := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
