package classify

import "strings"

// Lexicons are static, language-mixed phrase sets. Matching is
// case-insensitive substring containment with no tokenization or
// word-boundary checks; severity weights are calibrated against
// substring semantics, so "kill" inside "killjoy" still matches.

var threatKeywords = []string{
	"kill", "murder", "die", "death", "attack", "hurt", "harm", "destroy",
	"burn", "rape", "assault", "beat", "stab", "shoot", "bomb",
	"ግደል", "ሞት", "አጥፋ", "አቃጥል", "ደፈረ",
}

var stalkingIndicators = []string{
	"watching you", "following", "i see you", "i know where",
	"your address", "your house", "your family", "your work",
	"እከታተልሃለሁ", "አውቃለሁ የት እንዳለህ",
}

// Immediate-danger phrases are consumed only by the risk aggregator.
var immediateDangerPhrases = []string{
	"i will kill", "going to kill", "will hurt you", "coming for you",
}

// ThreatKeywords returns the threat lexicon.
func ThreatKeywords() []string {
	return threatKeywords
}

// StalkingIndicators returns the stalking lexicon.
func StalkingIndicators() []string {
	return stalkingIndicators
}

// containsPhrase reports whether lowered (already case-folded text)
// contains phrase as a substring.
func containsPhrase(lowered, phrase string) bool {
	return strings.Contains(lowered, strings.ToLower(phrase))
}

// hasImmediateDanger reports whether any immediate-danger phrase appears
// in lowered. The first match short-circuits.
func hasImmediateDanger(lowered string) bool {
	for _, phrase := range immediateDangerPhrases {
		if containsPhrase(lowered, phrase) {
			return true
		}
	}
	return false
}
