package prompts

const evidenceSpec = `Respond ONLY with valid JSON in this exact format:

{
  "category": "harassment" | "threats" | "stalking" | "image_based_abuse" | "hate_speech" | "sexual_content" | "non_abusive",
  "severity": <number 0-100>,
  "confidence": <number 0-1>,
  "rationale": "<brief explanation>",
  "highlighted_phrases": ["<phrase1>", "<phrase2>"]
}

Field constraints:
- category: Exactly one value from the closed set above.
- severity: Integer matching the severity bands in the instructions.
- confidence: How certain you are of the category and severity.
- rationale: Brief explanation of the classification, referencing the
  specific content that drove it.
- highlighted_phrases: Verbatim substrings of the analyzed text that
  constitute evidence for the classification. Empty array when nothing
  stands out.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Do not include a risk level; risk is derived downstream
- Do not invent phrases that are not present in the text`

const conversationalSpec = `Respond ONLY with valid JSON in this exact format:

{
  "category": "harassment" | "threats" | "stalking" | "image_based_abuse" | "hate_speech" | "sexual_content" | "non_abusive" | "unclear",
  "severity": <number 0-100>,
  "confidence": <number 0-1>,
  "rationale": "<brief explanation>",
  "highlighted_phrases": ["<phrase1>", "<phrase2>"],
  "advice": "<supportive guidance>"
}

Field constraints:
- category: Exactly one value from the closed set above. Use "unclear"
  only when the text genuinely cannot be assessed.
- severity: Integer matching the severity bands in the instructions.
- confidence: How certain you are of the category and severity.
- rationale: Brief, non-judgmental explanation of the classification.
- highlighted_phrases: Verbatim substrings of the analyzed text that
  constitute evidence for the classification.
- advice: Two to four sentences of supportive, practical guidance for
  the person who submitted the content.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Do not include a risk level; risk is derived downstream
- Keep the advice warm and concrete; never blame the submitter`

var specs = map[Mode]string{
	ModeEvidence:       evidenceSpec,
	ModeConversational: conversationalSpec,
}

// Spec returns the hardcoded specification for a classification mode.
// Specifications define the expected output format and behavioral constraints.
// Returns ErrInvalidMode if the mode is not recognized.
func Spec(mode Mode) (string, error) {
	text, ok := specs[mode]
	if !ok {
		return "", ErrInvalidMode
	}
	return text, nil
}
