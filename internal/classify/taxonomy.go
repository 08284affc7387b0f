package classify

const (
	// MoodOther is logged when the user expresses a feeling that matches no known mood.
	MoodOther = "other"
	// MoodGeneral is logged for free-form check-in answers with no detectable mood.
	MoodGeneral = "general"
)

const DefaultResponse = "Thanks for sharing that. Remember, I'm here to keep you moving forward 💡."

type moodResponse struct {
	mood     string
	response string
}

// Declaration order decides which keyword wins when several appear.
var taxonomy = []moodResponse{
	{"tired", "I hear you. 💙 Maybe a quick rest or even a 5-minute stretch could help."},
	{"stressed", "That sounds tough 😔. How about taking things one step at a time?"},
	{"unmotivated", "I get it. Small wins count too! Try doing just one tiny task."},
	{"happy", "Love to hear that! 🎉 Keep riding that wave of positivity."},
	{"sad", "I understand that feeling 💙. It's okay to feel sad - your emotions are valid."},
	{"anxious", "Anxiety is really hard 😰. Try taking a few deep breaths with me."},
	{"overwhelmed", "That sounds really overwhelming 😓. Let's break it down into smaller pieces."},
	{"frustrated", "Frustration is tough 😤. Take a moment to breathe and reset."},
	{"lonely", "I'm here with you 🤗. You're not alone in this journey."},
	{"excited", "Your excitement is contagious! ✨ What's got you feeling so good?"},
	{"worried", "I can sense your worry 😟. Let's focus on what you can control right now."},
	{"confused", "Confusion is normal when learning something new 🤔. Take it step by step."},
}

// Moods returns the taxonomy keys in declaration order.
func Moods() []string {
	moods := make([]string, len(taxonomy))
	for i, m := range taxonomy {
		moods[i] = m.mood
	}
	return moods
}

// Response returns the canned reply for mood, or DefaultResponse for
// sentinels and unknown moods.
func Response(mood string) string {
	for _, m := range taxonomy {
		if m.mood == mood {
			return m.response
		}
	}
	return DefaultResponse
}

// IsKnownMood reports whether mood may be stored in a mood entry.
func IsKnownMood(mood string) bool {
	if mood == MoodOther || mood == MoodGeneral {
		return true
	}
	for _, m := range taxonomy {
		if m.mood == mood {
			return true
		}
	}
	return false
}
