package render

import (
	"context"

	"go.uber.org/zap"
)

// LogBackend is a headless backend that reports each frame to a logger.
type LogBackend struct {
	log *zap.Logger
}

func NewLogBackend(log *zap.Logger) *LogBackend {
	return &LogBackend{log: log}
}

func (b *LogBackend) Submit(ctx context.Context, f *Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.log.Debug("frame",
		zap.Uint64("frame", f.Number),
		zap.Int("draws", len(f.Draws)),
		zap.Int("triangles", f.Triangles()),
		zap.Int("skipped", f.Skipped),
	)
	return nil
}
