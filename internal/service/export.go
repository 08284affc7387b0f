package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/templui/aura/internal/gateway"
	"github.com/templui/aura/internal/model"
	"github.com/templui/aura/internal/storage"
)

var ErrExportStorageDisabled = errors.New("export storage not configured")

type ExportService struct {
	store     *gateway.Gateway
	analytics *AnalyticsService
	storage   storage.Storage
}

// NewExportService accepts a nil storage; Upload then fails with
// ErrExportStorageDisabled.
func NewExportService(store *gateway.Gateway, analytics *AnalyticsService, storage storage.Storage) *ExportService {
	return &ExportService{store: store, analytics: analytics, storage: storage}
}

func (s *ExportService) Snapshot(ctx context.Context) model.Snapshot {
	return model.Snapshot{
		GeneratedAt: model.Timestamp(s.store.Now()),
		Goals:       s.store.ListActiveGoalsWithIDs(ctx),
		Moods:       s.analytics.MoodAnalytics(ctx),
		Progress:    s.analytics.GoalProgressAnalytics(ctx),
	}
}

// Upload stores a JSON snapshot and returns its storage key.
func (s *ExportService) Upload(ctx context.Context) (string, error) {
	if s.storage == nil {
		return "", ErrExportStorageDisabled
	}

	snapshot := s.Snapshot(ctx)
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	stamp := strings.NewReplacer(":", "", ".", "").Replace(snapshot.GeneratedAt)
	key := path.Join("exports", fmt.Sprintf("aura-%s-%s.json", stamp, uuid.New().String()[:8]))

	err = s.storage.Save(ctx, key, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to save snapshot: %w", err)
	}

	slog.Info("snapshot exported", "key", key, "goals", len(snapshot.Goals))
	return key, nil
}

// DownloadURL returns a time-limited link to an uploaded snapshot.
func (s *ExportService) DownloadURL(ctx context.Context, key string) (string, error) {
	if s.storage == nil {
		return "", ErrExportStorageDisabled
	}
	return s.storage.URL(ctx, key)
}
