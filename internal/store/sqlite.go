package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/fitplan/internal/model"
)

// ErrNotFound is returned when a submission ID is unknown.
var ErrNotFound = errors.New("submission not found")

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// newID returns a ULID. IDs created in the same millisecond still sort in
// creation order.
func (s *SQLiteStore) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS submissions (
		id             TEXT PRIMARY KEY,
		created_at     TEXT NOT NULL,
		sex            TEXT NOT NULL,
		goal           TEXT NOT NULL,
		profile        TEXT NOT NULL,
		source         TEXT NOT NULL,
		meal_status    TEXT NOT NULL,
		workout_status TEXT NOT NULL,
		meal_error     TEXT,
		workout_error  TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_submissions_created ON submissions(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_submissions_goal ON submissions(goal);
	CREATE INDEX IF NOT EXISTS idx_submissions_source ON submissions(source);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Record(ctx context.Context, p RecordParams) (*model.Submission, error) {
	now := time.Now().UTC()
	id := s.newID(now)

	profile, err := json.Marshal(p.Profile)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}

	pv := p.Provenance
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, created_at, sex, goal, profile, source, meal_status, workout_status, meal_error, workout_error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, now.Format(time.RFC3339Nano), string(p.Profile.Sex), string(p.Profile.Goal), string(profile),
		string(pv.Source), string(pv.MealStatus), string(pv.WorkoutStatus),
		nullable(pv.MealError), nullable(pv.WorkoutError))
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}

	return &model.Submission{
		ID:         id,
		CreatedAt:  now,
		Profile:    p.Profile,
		Provenance: pv,
	}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, id string) (*model.Submission, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, profile, source, meal_status, workout_status, meal_error, workout_error
		 FROM submissions WHERE id = ?`, id)
	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SQLiteStore) List(ctx context.Context, p ListParams) ([]model.Submission, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1 = 1"}
	var args []interface{}
	if p.Source != "" {
		where = append(where, "source = ?")
		args = append(args, string(p.Source))
	}
	if p.Goal != "" {
		where = append(where, "goal = ?")
		args = append(args, string(p.Goal))
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, profile, source, meal_status, workout_status, meal_error, workout_error
		FROM submissions
		WHERE %s
		ORDER BY id DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSubmission(row scanner) (model.Submission, error) {
	var sub model.Submission
	var createdAt, profile, source, mealStatus, workoutStatus string
	var mealErr, workoutErr sql.NullString

	err := row.Scan(&sub.ID, &createdAt, &profile, &source, &mealStatus, &workoutStatus, &mealErr, &workoutErr)
	if err != nil {
		return sub, err
	}

	sub.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if err := json.Unmarshal([]byte(profile), &sub.Profile); err != nil {
		return sub, fmt.Errorf("decode profile %s: %w", sub.ID, err)
	}
	sub.Provenance = model.Provenance{
		Source:        model.Source(source),
		MealStatus:    model.Status(mealStatus),
		WorkoutStatus: model.Status(workoutStatus),
		MealError:     mealErr.String,
		WorkoutError:  workoutErr.String,
	}
	return sub, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
