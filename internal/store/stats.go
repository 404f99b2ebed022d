package store

import (
	"context"
	"os"
)

// Stats holds intake log statistics.
type Stats struct {
	DBPath           string       `json:"db_path"`
	DBSizeBytes      int64        `json:"db_size_bytes"`
	TotalSubmissions int          `json:"total_submissions"`
	Degraded         int          `json:"degraded"`
	BySource         []GroupCount `json:"by_source"`
	ByGoal           []GroupCount `json:"by_goal"`
}

// GroupCount is the number of submissions sharing a value.
type GroupCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Stats returns intake log statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&st.TotalSubmissions); err != nil {
		return st, err
	}
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM submissions WHERE meal_status != 'ok' OR workout_status != 'ok'`).Scan(&st.Degraded); err != nil {
		return st, err
	}

	var err error
	if st.BySource, err = s.groupCount(ctx, "source"); err != nil {
		return st, err
	}
	if st.ByGoal, err = s.groupCount(ctx, "goal"); err != nil {
		return st, err
	}
	return st, nil
}

// groupCount counts submissions per value of column, which must be a fixed
// column name.
func (s *SQLiteStore) groupCount(ctx context.Context, column string) ([]GroupCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+column+`, COUNT(*) AS cnt FROM submissions GROUP BY `+column+` ORDER BY cnt DESC, `+column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GroupCount
	for rows.Next() {
		var g GroupCount
		if err := rows.Scan(&g.Value, &g.Count); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
