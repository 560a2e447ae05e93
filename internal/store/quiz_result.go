package store

import (
	"context"
	"fmt"
	"time"
)

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultData) error {
	if data.Total <= 0 {
		return fmt.Errorf("save quiz result: total must be > 0, got %d", data.Total)
	}
	err := r.appendEvent(ctx, "quiz_results",
		[]string{"session_id", "topic", "score", "total", "tier"},
		data.SessionID, data.Topic, data.Score, data.Total, data.Tier,
	)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResult, error) {
	w, args := where(opts, "topic")
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, sequence, session_id, topic, score, total, tier, timestamp FROM quiz_results`+
			w+` ORDER BY sequence DESC`+limit(opts), args...)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var out []QuizResult
	for rows.Next() {
		var qr QuizResult
		var ts int64
		if err := rows.Scan(&qr.ID, &qr.Sequence, &qr.SessionID, &qr.Topic, &qr.Score, &qr.Total, &qr.Tier, &ts); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		qr.Timestamp = time.UnixMilli(ts)
		out = append(out, qr)
	}
	return out, rows.Err()
}

func (r *eventRepo) TopicStats(ctx context.Context) ([]TopicStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT topic,
		       COUNT(*),
		       MAX(CAST(score AS REAL) / total),
		       AVG(CAST(score AS REAL) / total),
		       MAX(timestamp)
		FROM quiz_results
		GROUP BY topic
		ORDER BY topic`)
	if err != nil {
		return nil, fmt.Errorf("query topic stats: %w", err)
	}
	defer rows.Close()

	var out []TopicStat
	for rows.Next() {
		var st TopicStat
		var last int64
		if err := rows.Scan(&st.Topic, &st.Attempts, &st.BestAccuracy, &st.MeanAccuracy, &last); err != nil {
			return nil, fmt.Errorf("scan topic stats: %w", err)
		}
		st.LastAttempt = time.UnixMilli(last)
		out = append(out, st)
	}
	return out, rows.Err()
}

func (r *eventRepo) Reset(ctx context.Context) (ResetCounts, error) {
	var counts ResetCounts
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return counts, fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM quiz_results`)
	if err != nil {
		return counts, fmt.Errorf("delete quiz results: %w", err)
	}
	counts.QuizResults, _ = res.RowsAffected()

	res, err = tx.ExecContext(ctx, `DELETE FROM session_events`)
	if err != nil {
		return counts, fmt.Errorf("delete session events: %w", err)
	}
	counts.SessionEvents, _ = res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return ResetCounts{}, fmt.Errorf("commit reset: %w", err)
	}
	return counts, nil
}
