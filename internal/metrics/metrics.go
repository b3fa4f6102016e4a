package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"book_themes/internal/classify"
)

// Observer records classification telemetry. A nil *Observer is a no-op.
type Observer struct {
	registry      *prometheus.Registry
	chapterTime   prometheus.Histogram
	chapterTokens prometheus.Counter
	labels        *prometheus.CounterVec
	runs          *prometheus.CounterVec
}

func NewObserver(namespace string, reg *prometheus.Registry) (*Observer, error) {
	if namespace == "" {
		namespace = "book_themes"
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	o := &Observer{
		registry: reg,
		chapterTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chapter_score_duration_seconds",
			Help:      "Time spent scoring one chapter against both vocabularies.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		chapterTokens: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chapter_tokens_total",
			Help:      "Tokens scored across all chapters.",
		}),
		labels: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chapters_labelled_total",
			Help:      "Chapters labelled, by label.",
		}, []string{"label"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Classification runs, by outcome.",
		}, []string{"status"}),
	}
	collectors := []prometheus.Collector{o.chapterTime, o.chapterTokens, o.labels, o.runs}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return o, nil
}

func (o *Observer) RecordChapter(duration time.Duration, tokens int) {
	if o == nil {
		return
	}
	o.chapterTime.Observe(duration.Seconds())
	o.chapterTokens.Add(float64(tokens))
}

func (o *Observer) RecordLabels(labels []classify.Label) {
	if o == nil {
		return
	}
	for _, l := range labels {
		o.labels.WithLabelValues(string(l)).Inc()
	}
}

func (o *Observer) RecordRun(err error) {
	if o == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "failed"
	}
	o.runs.WithLabelValues(status).Inc()
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (o *Observer) WriteTextfile(path string) error {
	if o == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, o.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
