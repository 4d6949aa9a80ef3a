package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/safenet-ai/safenet/internal/classify"
	"github.com/safenet-ai/safenet/internal/prompts"
)

// ComposePrompt builds a model prompt by combining tunable instructions,
// the immutable response specification, the submission language, and the
// content under analysis for a classification mode. The content is wrapped
// in a quoted block so the model treats it as data, not directives.
func ComposePrompt(
	ctx context.Context,
	ps prompts.System,
	mode prompts.Mode,
	req classify.Request,
) (string, error) {
	instructions, err := ps.Instructions(ctx, mode)
	if err != nil {
		return "", fmt.Errorf("%w: load instructions for %s: %w", ErrPromptFailed, mode, err)
	}

	spec, err := ps.Spec(ctx, mode)
	if err != nil {
		return "", fmt.Errorf("%w: load spec for %s: %w", ErrPromptFailed, mode, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(spec)
	sb.WriteString("\n\nSubmission language: ")
	sb.WriteString(languageName(req.Language))
	sb.WriteString("\n\nContent to analyze:\n\"\"\"\n")
	sb.WriteString(req.Text)
	sb.WriteString("\n\"\"\"")

	return sb.String(), nil
}

func languageName(code string) string {
	if classify.NormalizeLanguage(code) == classify.LanguageAmharic {
		return "Amharic"
	}
	return "English"
}
