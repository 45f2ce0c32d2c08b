package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"math-quiz-game/internal/domain"
)

const namespace = "mathgame"

// Recorder holds the game's Prometheus collectors. It implements app.RoundObserver.
type Recorder struct {
	registry *prometheus.Registry

	QuestionsAnswered *prometheus.CounterVec
	RoundsFinished    *prometheus.CounterVec
	RoundScore        *prometheus.HistogramVec
	RoundDuration     *prometheus.HistogramVec
}

// NewRecorder registers the collectors on a private registry so repeated
// construction (tests, multiple sessions) never collides with the default one.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		QuestionsAnswered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "questions_answered_total",
				Help:      "Questions answered, by operation, difficulty and outcome",
			},
			[]string{"operation", "difficulty", "result"},
		),
		RoundsFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rounds_finished_total",
				Help:      "Rounds played to completion",
			},
			[]string{"mode", "difficulty"},
		),
		RoundScore: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "round_score",
				Help:      "Final score of finished rounds",
				Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
			},
			[]string{"difficulty"},
		),
		RoundDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "round_duration_seconds",
				Help:      "Elapsed time of finished rounds",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
			},
			[]string{"difficulty"},
		),
	}
	r.registry.MustRegister(r.QuestionsAnswered, r.RoundsFinished, r.RoundScore, r.RoundDuration)
	return r
}

func (r *Recorder) QuestionAnswered(op domain.Operation, difficulty domain.Difficulty, correct bool) {
	result := "wrong"
	if correct {
		result = "correct"
	}
	r.QuestionsAnswered.WithLabelValues(op.String(), difficulty.String(), result).Inc()
}

func (r *Recorder) RoundFinished(record domain.RoundRecord) {
	difficulty := record.Difficulty.String()
	r.RoundsFinished.WithLabelValues(record.Mode.String(), difficulty).Inc()
	r.RoundScore.WithLabelValues(difficulty).Observe(float64(record.Score))
	r.RoundDuration.WithLabelValues(difficulty).Observe(record.ElapsedTime.Seconds())
}

// WriteTextfile dumps the registry in the text exposition format, for the
// node_exporter textfile collector. An empty path is a no-op.
func (r *Recorder) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
