package prompts

import (
	"encoding/json"
	"slices"
)

// Mode represents a classification mode that a prompt override targets.
// Evidence mode analyzes text extracted from an uploaded screenshot;
// conversational mode analyzes self-reported text-only submissions.
type Mode string

// Valid classification modes.
const (
	ModeEvidence       Mode = "evidence"
	ModeConversational Mode = "conversational"
)

var modes = []Mode{
	ModeEvidence,
	ModeConversational,
}

// Modes returns the list of valid classification modes.
func Modes() []Mode {
	return modes
}

// UnmarshalJSON validates that the decoded string is a known mode value.
func (m *Mode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Mode(raw)
	if !slices.Contains(modes, v) {
		return ErrInvalidMode
	}
	*m = v
	return nil
}

// ParseMode validates a string as a known classification mode.
// Returns ErrInvalidMode if the value is not recognized.
func ParseMode(s string) (Mode, error) {
	v := Mode(s)
	if !slices.Contains(modes, v) {
		return "", ErrInvalidMode
	}
	return v, nil
}
