package job

import (
	"Lighthouse/internal/pkg/logger"
	"Lighthouse/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// MediaCleanupJob 回收上传后超过 ttl 仍未被帖子引用的对象
type MediaCleanupJob struct {
	registry service.UploadRegistry
	storage  service.ObjectStorage
	ttl      time.Duration
	now      func() time.Time
}

func NewMediaCleanupJob(registry service.UploadRegistry, storage service.ObjectStorage, ttl time.Duration) *MediaCleanupJob {
	return &MediaCleanupJob{
		registry: registry,
		storage:  storage,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MediaCleanupJob) Run() {
	traceID := "job-media-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)
	s.Cleanup(ctx)
}

// Cleanup 返回清理的对象数
func (s *MediaCleanupJob) Cleanup(ctx context.Context) int {
	log.InfoContext(ctx, "start media cleanup job")

	allMedia, err := s.registry.Pending(ctx)
	if err != nil {
		log.ErrorContext(ctx, "failed to get media temp hash", "err", err)
		return 0
	}

	deadline := s.now().Add(-s.ttl).Unix()
	count := 0

	for fileKey, meta := range allMedia {
		if meta.CreatedAt > deadline {
			continue
		}

		if err = s.storage.Delete(ctx, fileKey); err != nil {
			log.ErrorContext(ctx, "failed to delete expired file from storage", "fileKey", fileKey, "err", err)
			continue
		}

		if err = s.registry.Claim(ctx, fileKey); err != nil {
			log.ErrorContext(ctx, "failed to remove media entry from redis", "fileKey", fileKey, "err", err)
		}

		count++
		log.InfoContext(ctx, "cleanup expired media resource", "fileKey", fileKey, "mime", meta.MimeType)
	}

	if count > 0 {
		log.InfoContext(ctx, "media cleanup job finished", "cleaned_count", count)
	}
	return count
}
