package questiongen

import "github.com/obrev/obrev/internal/content"

// GenerateInput provides the context for generating one question.
type GenerateInput struct {
	// Module is the curriculum module the question belongs to.
	Module *content.Module

	// Topic is the topic within the module. Its key points steer the
	// question toward the material actually covered.
	Topic *content.Topic

	// Difficulty is the student's difficulty preference. Empty means
	// unspecified; the generator then leaves it to the model.
	Difficulty string

	// PriorPrompts lists prompts already asked this session, so the
	// generator can avoid repeats.
	PriorPrompts []string
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxPriorPrompts is the maximum number of prior prompts to include
	// in the prompt for deduplication.
	MaxPriorPrompts int
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:       512,
		Temperature:     0.7,
		MaxPriorPrompts: 10,
	}
}
