package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	switch data.Action {
	case ActionStart, ActionEnd:
	default:
		return fmt.Errorf("save session event: unknown action %q", data.Action)
	}

	err := r.appendEvent(ctx, "session_events",
		[]string{"session_id", "action", "slides_visited", "quizzes_completed", "duration_secs"},
		data.SessionID, data.Action, data.SlidesVisited, data.QuizzesCompleted, data.DurationSecs,
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionEvents(ctx context.Context, opts QueryOpts) ([]SessionEvent, error) {
	w, args := where(opts, "")
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, session_id, action, slides_visited, quizzes_completed, duration_secs, timestamp
		 FROM session_events`+w+` ORDER BY sequence DESC`+limit(opts), args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var out []SessionEvent
	for rows.Next() {
		var ev SessionEvent
		var ts int64
		if err := rows.Scan(&ev.ID, &ev.Sequence, &ev.SessionID, &ev.Action,
			&ev.SlidesVisited, &ev.QuizzesCompleted, &ev.DurationSecs, &ts); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		ev.Timestamp = time.UnixMilli(ts)
		out = append(out, ev)
	}
	return out, rows.Err()
}
