// Package worker runs background audio generation from the job queue.
package worker

import (
	"context"
	"errors"
	"fmt"

	"vocal-feed/internal/audio"
	"vocal-feed/internal/entity"
	"vocal-feed/pkg/logger"
	"vocal-feed/pkg/queue"
)

// Generator is the part of the post flow a worker drives.
type Generator interface {
	GenerateAndAttachAudio(ctx context.Context, text, instructions, postID string) (audio.Result, error)
}

// Consumer delivers queued jobs to a handler.
type Consumer interface {
	ConsumeTTSJobs(ctx context.Context, handler func(ctx context.Context, job queue.TTSJob) error) error
}

type TTSWorker struct {
	generator Generator
	consumer  Consumer
	logger    *logger.Logger
}

func NewTTSWorker(generator Generator, consumer Consumer, logger *logger.Logger) *TTSWorker {
	return &TTSWorker{
		generator: generator,
		consumer:  consumer,
		logger:    logger,
	}
}

// Start registers the consumer; jobs are handled until ctx is cancelled.
func (w *TTSWorker) Start(ctx context.Context) error {
	w.logger.Info("Starting TTS queue worker...")
	return w.consumer.ConsumeTTSJobs(ctx, w.Handle)
}

// Handle processes one job. A post deleted before its job ran is not an
// error worth redelivering, so it is logged and dropped.
func (w *TTSWorker) Handle(ctx context.Context, job queue.TTSJob) error {
	w.logger.Info("[TTS WORKER] Processing job: post=%q, requested_by=%q", job.PostID, job.RequestedBy)

	result, err := w.generator.GenerateAndAttachAudio(ctx, job.Text, job.Instructions, job.PostID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			w.logger.Warn("[TTS WORKER] Post %q no longer exists, dropping job", job.PostID)
			return nil
		}
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid tts job: %w", err)
		}
		return fmt.Errorf("failed to process tts job: %w", err)
	}

	w.logger.Info("[TTS WORKER] Job done: post=%q, audio=%s, created=%t", job.PostID, result.URL, result.Created)
	return nil
}
