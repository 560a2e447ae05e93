package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	Topic string    // exact topic match ("" = any)
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// QuizResultData captures one completed quiz.
type QuizResultData struct {
	SessionID string
	Topic     string
	Score     int
	Total     int
	Tier      string
}

// QuizResult is a stored quiz completion.
type QuizResult struct {
	QuizResultData
	ID        int64
	Sequence  int64
	Timestamp time.Time
}

// Accuracy returns Score / Total.
func (r QuizResult) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}

// Session actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionEventData captures the start or end of a presentation run.
type SessionEventData struct {
	SessionID        string
	Action           string
	SlidesVisited    int
	QuizzesCompleted int
	DurationSecs     int
}

// SessionEvent is a stored session event.
type SessionEvent struct {
	SessionEventData
	ID        int64
	Sequence  int64
	Timestamp time.Time
}

// TopicStat aggregates quiz results for one topic.
type TopicStat struct {
	Topic        string
	Attempts     int
	BestAccuracy float64
	MeanAccuracy float64
	LastAttempt  time.Time
}

// ResetCounts reports how many rows Reset removed.
type ResetCounts struct {
	QuizResults   int64
	SessionEvents int64
}

// EventRepo provides append and query access to presentation events.
type EventRepo interface {
	// AppendQuizResult records a completed quiz.
	AppendQuizResult(ctx context.Context, data QuizResultData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryQuizResults returns quiz results, newest first.
	QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResult, error)

	// QuerySessionEvents returns session events, newest first.
	QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error)

	// TopicStats aggregates quiz results per topic, ordered by topic.
	TopicStats(ctx context.Context) ([]TopicStat, error)

	// Reset deletes all recorded events.
	Reset(ctx context.Context) (ResetCounts, error)
}
