package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"book_themes/internal/classify"
	"book_themes/internal/density"
	"book_themes/internal/metrics"
	"book_themes/internal/pipeline"
	"book_themes/internal/segment"
	"book_themes/internal/terms"
)

type Options struct {
	Workers int
	Markers segment.Markers
}

// Result is one classification run. Chapters, Pairs and Labels are index
// aligned.
type Result struct {
	RunID       string
	StartedAt   time.Time
	CompletedAt time.Time
	Chapters    []segment.Chapter
	Pairs       []density.Pair
	Labels      []classify.Label
}

func (r *Result) Densities() classify.Densities {
	d := classify.Densities{
		War:   make([]float64, len(r.Pairs)),
		Peace: make([]float64, len(r.Pairs)),
	}
	for i, p := range r.Pairs {
		d.War[i] = p.War
		d.Peace[i] = p.Peace
	}
	return d
}

func (r *Result) Tokens() int {
	total := 0
	for _, ch := range r.Chapters {
		total += ch.Len()
	}
	return total
}

type Analyzer struct {
	opts     Options
	logger   *zap.Logger
	observer *metrics.Observer
}

func New(opts Options, logger *zap.Logger, observer *metrics.Observer) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Markers.Chapter == "" {
		opts.Markers = segment.DefaultMarkers()
	}
	return &Analyzer{opts: opts, logger: logger, observer: observer}
}

// Run segments lines into chapters, scores every chapter against both
// vocabularies in parallel and labels them. A density/chapter count mismatch
// aborts the run before any label is produced.
func (a *Analyzer) Run(ctx context.Context, lines []string, war, peace terms.Vocabulary) (*Result, error) {
	res := &Result{RunID: uuid.NewString(), StartedAt: time.Now()}
	log := a.logger.With(zap.String("run_id", res.RunID))

	res.Chapters = segment.Chapters(lines, a.opts.Markers)
	log.Debug("segmented book",
		zap.Int("lines", len(lines)),
		zap.Int("chapters", len(res.Chapters)),
	)
	if len(res.Chapters) == 0 {
		log.Warn("no chapter marker found", zap.String("marker", a.opts.Markers.Chapter))
	}

	pairs, err := pipeline.ScoreChapters(ctx, res.Chapters, a.opts.Workers, func(ch segment.Chapter) (density.Pair, error) {
		start := time.Now()
		pair := density.ScoreChapter(ch, war, peace)
		a.observer.RecordChapter(time.Since(start), ch.Len())
		return pair, nil
	})
	if err != nil {
		a.observer.RecordRun(err)
		return nil, fmt.Errorf("score chapters: %w", err)
	}
	res.Pairs = pairs
	log.Debug("scored chapters", zap.Int("workers", pipeline.Workers(a.opts.Workers)))

	labels, err := classify.Classify(res.Densities(), len(res.Chapters))
	if err != nil {
		log.Error("density size mismatch", zap.Error(err))
		a.observer.RecordRun(err)
		return nil, err
	}
	res.Labels = labels
	res.CompletedAt = time.Now()

	warCount, peaceCount := classify.Tally(labels)
	log.Info("classified chapters",
		zap.Int("chapters", len(labels)),
		zap.Int("war_related", warCount),
		zap.Int("peace_related", peaceCount),
		zap.Duration("elapsed", res.CompletedAt.Sub(res.StartedAt)),
	)
	a.observer.RecordLabels(labels)
	a.observer.RecordRun(nil)
	return res, nil
}
