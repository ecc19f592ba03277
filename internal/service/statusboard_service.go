package service

import (
	"context"
	"time"

	"go-hostel-pms/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	statusBoardKey     = "beds:statusboard"
	statusBoardTimeout = 2 * time.Second
)

// StatusBoardService keeps a redis snapshot of every bed's current status for
// the reception dashboard. It is a cache, never a source of truth: writes
// happen after the database transaction commits and are best-effort, so a
// redis outage degrades the dashboard but never a booking operation.
type StatusBoardService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewStatusBoardService(redisClient *redis.Client, log *logrus.Logger) *StatusBoardService {
	return &StatusBoardService{
		redisClient: redisClient,
		log:         log,
	}
}

// Publish records the bed's new status on the board. Call after commit.
func (s *StatusBoardService) Publish(bedID uuid.UUID, status entity.BedStatus) {
	ctx, cancel := context.WithTimeout(context.Background(), statusBoardTimeout)
	defer cancel()

	if err := s.redisClient.HSet(ctx, statusBoardKey, bedID.String(), string(status)).Err(); err != nil {
		s.log.Warnf("Failed to publish status board update for bed %s (non-fatal): %+v", bedID, err)
	}
}

// Snapshot returns the cached bed-id -> status map. Empty when the cache is
// cold; callers fall back to the database.
func (s *StatusBoardService) Snapshot(ctx context.Context) (map[string]string, error) {
	return s.redisClient.HGetAll(ctx, statusBoardKey).Result()
}

// Rebuild replaces the whole board, used on startup to warm the cache.
func (s *StatusBoardService) Rebuild(ctx context.Context, beds []entity.Bed) error {
	pipe := s.redisClient.TxPipeline()
	pipe.Del(ctx, statusBoardKey)
	for i := range beds {
		pipe.HSet(ctx, statusBoardKey, beds[i].ID.String(), string(beds[i].Status))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}
	return nil
}
