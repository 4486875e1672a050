package digest

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/example/thaivocab/pkg/models"
)

// StatsSource provides the learner's current statistics
type StatsSource interface {
	Stats(ctx context.Context) models.Stats
}

// Notifier interface for delivering digests
type Notifier interface {
	SendDigest(stats models.Stats) error
}

// Digest periodically reports how many items are waiting for review
type Digest struct {
	scheduler *gocron.Scheduler
	source    StatsSource
	notifier  Notifier
	interval  time.Duration
	log       *zap.Logger
}

// New creates a digest job that runs every interval
func New(source StatsSource, notifier Notifier, interval time.Duration, log *zap.Logger) *Digest {
	return &Digest{
		scheduler: gocron.NewScheduler(time.UTC),
		source:    source,
		notifier:  notifier,
		interval:  interval,
		log:       log,
	}
}

// Start runs the job once right away and then on every interval
func (d *Digest) Start() error {
	if _, err := d.scheduler.Every(d.interval).Do(d.check); err != nil {
		return fmt.Errorf("failed to schedule digest: %w", err)
	}
	d.scheduler.StartAsync()
	return nil
}

// Stop terminates the scheduled job
func (d *Digest) Stop() {
	d.scheduler.Stop()
}

func (d *Digest) check() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := d.RunManualCheck(ctx); err != nil {
		d.log.Error("failed to send digest", zap.Error(err))
	}
}

// RunManualCheck sends a digest now if anything is due
func (d *Digest) RunManualCheck(ctx context.Context) error {
	stats := d.source.Stats(ctx)
	if stats.WordsForReview == 0 {
		d.log.Debug("nothing due, skipping digest")
		return nil
	}
	return d.notifier.SendDigest(stats)
}

// WriterNotifier prints digests as text lines
type WriterNotifier struct {
	W   io.Writer
	Now func() time.Time
}

func (n *WriterNotifier) SendDigest(stats models.Stats) error {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	_, err := fmt.Fprintf(n.W, "[%s] %d %s due for review, streak %d, mastered %d\n",
		now().Format("2006-01-02 15:04"), stats.WordsForReview, plural(stats.WordsForReview, "word", "words"),
		stats.ReviewStreak, stats.MasteredWords)
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
