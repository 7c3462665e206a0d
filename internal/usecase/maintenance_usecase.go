package usecase

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"

	"github.com/google/uuid"
)

// MaintenanceUsecase bundles the operational tasks on the article store:
// retention purge, duplicate checks and backup/restore snapshots.
type MaintenanceUsecase interface {
	// PurgeOlderThan deletes articles published more than the given number
	// of days ago. Non-positive days falls back to the default retention.
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	IsDuplicate(ctx context.Context, url string) (bool, error)
	// Backup writes every stored article as one JSON document per line and
	// returns the number of articles written.
	Backup(ctx context.Context, w io.Writer) (int, error)
	// Restore reads a backup stream and bulk-inserts articles that are not
	// already present. Already-stored URLs are skipped before the bulk
	// path, which performs no duplicate handling of its own.
	Restore(ctx context.Context, r io.Reader) (int, error)
}

type maintenanceUsecase struct {
	repo   domain.ArticleRepository
	now    func() time.Time
	logger *slog.Logger
}

func NewMaintenanceUsecase(repo domain.ArticleRepository, logger *slog.Logger) MaintenanceUsecase {
	return &maintenanceUsecase{
		repo:   repo,
		now:    time.Now,
		logger: logger.With("component", "maintenance_usecase"),
	}
}

func (u *maintenanceUsecase) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = domain.DefaultRetentionDays
	}
	cutoff := u.now().AddDate(0, 0, -days)

	deleted, err := u.repo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge articles older than %d days: %w", days, err)
	}
	u.logger.Info("retention purge completed", "days", days, "cutoff", cutoff, "deleted", deleted)
	return deleted, nil
}

func (u *maintenanceUsecase) IsDuplicate(ctx context.Context, url string) (bool, error) {
	if url == "" {
		return false, nil
	}
	exists, err := u.repo.ExistsByURL(ctx, url)
	if err != nil {
		return false, fmt.Errorf("failed to check duplicate for %s: %w", url, err)
	}
	return exists, nil
}

func (u *maintenanceUsecase) Backup(ctx context.Context, w io.Writer) (int, error) {
	snapshotID := uuid.New().String()

	articles, err := u.repo.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read articles for backup: %w", err)
	}

	encoder := json.NewEncoder(w)
	for _, article := range articles {
		if err := encoder.Encode(article); err != nil {
			return 0, fmt.Errorf("failed to encode article %s: %w", article.ID, err)
		}
	}

	u.logger.Info("backup written", "snapshot_id", snapshotID, "articles", len(articles))
	return len(articles), nil
}

func (u *maintenanceUsecase) Restore(ctx context.Context, r io.Reader) (int, error) {
	var pending []domain.ClassifiedArticle

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var article domain.ClassifiedArticle
		if err := json.Unmarshal(raw, &article); err != nil {
			return 0, fmt.Errorf("malformed backup line %d: %w", line, err)
		}
		if article.URL != "" {
			exists, err := u.repo.ExistsByURL(ctx, article.URL)
			if err != nil {
				return 0, fmt.Errorf("failed duplicate check on restore: %w", err)
			}
			if exists {
				continue
			}
		}
		pending = append(pending, article)
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("failed to read backup stream: %w", err)
	}

	if len(pending) == 0 {
		return 0, nil
	}

	inserted, err := u.repo.BulkInsert(ctx, pending)
	if err != nil {
		return 0, fmt.Errorf("failed to restore articles: %w", err)
	}
	u.logger.Info("restore completed", "restored", inserted, "skipped", line-len(pending))
	return inserted, nil
}
