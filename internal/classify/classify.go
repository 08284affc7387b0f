// Package classify decides whether a chat message states a goal, a mood, or
// neither. Everything here is pure; persistence happens in the services.
package classify

import (
	"regexp"
	"strings"

	"github.com/templui/aura/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var goalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bi want to\b`),
	regexp.MustCompile(`\bi'd like to\b`),
	regexp.MustCompile(`\bi would like to\b`),
	regexp.MustCompile(`\bmy goal is to\b`),
	regexp.MustCompile(`\bi plan to\b`),
	regexp.MustCompile(`\bi hope to\b`),
}

var goalPrefix = regexp.MustCompile(`^(i want to|i'd like to|i would like to)\s*`)

var moodIndicators = []string{"i feel", "i'm feeling", "i am feeling", "feeling", "i am", "i'm"}

var lower = cases.Lower(language.Und)

func fold(text string) string {
	return lower.String(text)
}

// IsGoalStatement reports whether text contains a goal-intent phrase.
func IsGoalStatement(text string) bool {
	folded := fold(text)
	for _, p := range goalPatterns {
		if p.MatchString(folded) {
			return true
		}
	}
	return false
}

// ExtractGoalText strips a leading "I want to"-style phrase and capitalizes
// what remains. The result is empty only when text is blank.
func ExtractGoalText(text string) string {
	trimmed := strings.TrimSpace(text)
	folded := fold(trimmed)
	goal := strings.TrimSpace(goalPrefix.ReplaceAllString(folded, ""))
	if goal == "" {
		goal = folded
	}
	return capitalize(goal)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(fold(s))
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// DetectMood returns the first taxonomy keyword found in text. Without a
// keyword, an indicator phrase such as "i feel" yields MoodOther.
func DetectMood(text string) (string, bool) {
	folded := fold(text)
	for _, m := range taxonomy {
		if strings.Contains(folded, m.mood) {
			return m.mood, true
		}
	}
	for _, phrase := range moodIndicators {
		if strings.Contains(folded, phrase) {
			return MoodOther, true
		}
	}
	return "", false
}

// ParseAnswer maps a check-in answer to a progress status. Anything that is
// not a yes or a no counts as maybe.
func ParseAnswer(input string) model.ProgressStatus {
	switch fold(strings.TrimSpace(input)) {
	case "yes", "y":
		return model.ProgressYes
	case "no", "n":
		return model.ProgressNo
	default:
		return model.ProgressMaybe
	}
}
