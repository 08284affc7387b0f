package service

import (
	"context"
	"strings"

	"github.com/templui/aura/internal/classify"
	"github.com/templui/aura/internal/gateway"
	"github.com/templui/aura/internal/model"
)

// MoodClassification is the outcome of classifying a message as a mood.
// Mood is empty when no mood was detected.
type MoodClassification struct {
	Mood     string
	Response string
	Logged   bool
}

func (c MoodClassification) Detected() bool {
	return c.Mood != ""
}

type MoodService struct {
	store *gateway.Gateway
}

func NewMoodService(store *gateway.Gateway) *MoodService {
	return &MoodService{store: store}
}

// ClassifyMood detects a mood in text and logs it with the raw text.
// Text with no keyword and no feeling phrase is neither logged nor answered.
func (s *MoodService) ClassifyMood(ctx context.Context, text string) MoodClassification {
	mood, ok := classify.DetectMood(text)
	if !ok {
		return MoodClassification{}
	}

	return MoodClassification{
		Mood:     mood,
		Response: classify.Response(mood),
		Logged:   s.store.InsertMood(ctx, mood, text),
	}
}

// LogGeneral records a check-in answer that carried no recognizable mood.
func (s *MoodService) LogGeneral(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	return s.store.InsertMood(ctx, classify.MoodGeneral, text)
}

func (s *MoodService) Recent(ctx context.Context, limit int) []model.MoodEntry {
	return s.store.RecentMoods(ctx, limit)
}
