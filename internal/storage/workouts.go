package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/chrono/internal/models"
)

// RecordWorkout stores a completed interval workout. It satisfies the timer
// core's journal.
func (s *Storage) RecordWorkout(w models.Workout) error {
	_, err := s.SaveWorkout(context.Background(), w)
	return err
}

// SaveWorkout inserts the workout and its laps in one transaction and returns
// the workout id.
func (s *Storage) SaveWorkout(ctx context.Context, w models.Workout) (string, error) {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workouts
        (id, preset, rounds, work_seconds, rest_seconds, started_at, finished_at, total_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		string(w.Config.Preset),
		w.Config.Rounds,
		w.Config.Work,
		w.Config.Rest,
		w.StartedAt.UTC().Format(time.RFC3339),
		w.FinishedAt.UTC().Format(time.RFC3339),
		w.Total.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("Failed to create workout: %w", err)
	}

	// Laps are stored oldest first so position matches the lap number.
	for i := range w.Laps {
		lap := w.Laps[len(w.Laps)-1-i]
		_, err = tx.ExecContext(ctx,
			`INSERT INTO workout_laps
            (id, workout_id, position, total_ms, split_ms)
            VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(),
			w.ID,
			i+1,
			lap.Total.Milliseconds(),
			lap.Split.Milliseconds(),
		)
		if err != nil {
			return "", fmt.Errorf("Failed to save lap: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return w.ID, nil
}

// GetAllWorkouts returns every workout, newest first, without laps.
func (s *Storage) GetAllWorkouts() ([]models.Workout, error) {
	return s.queryWorkouts(`
        SELECT id, preset, rounds, work_seconds, rest_seconds, started_at, finished_at, total_ms
        FROM workouts
        ORDER BY started_at DESC`)
}

// GetWorkoutsBetween returns the workouts started in [from, to), newest first.
func (s *Storage) GetWorkoutsBetween(from, to time.Time) ([]models.Workout, error) {
	return s.queryWorkouts(`
        SELECT id, preset, rounds, work_seconds, rest_seconds, started_at, finished_at, total_ms
        FROM workouts
        WHERE started_at >= ? AND started_at < ?
        ORDER BY started_at DESC`,
		from.UTC().Format(time.RFC3339),
		to.UTC().Format(time.RFC3339),
	)
}

// GetWorkoutsByDate returns the workouts of one local calendar day, given as
// "DD/MM/YY".
func (s *Storage) GetWorkoutsByDate(dateStr string) ([]models.Workout, error) {
	day, err := time.ParseInLocation("02/01/06", dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse date: %w", err)
	}
	return s.GetWorkoutsBetween(day, day.AddDate(0, 0, 1))
}

// GetWorkoutByID returns a workout with its laps (newest first). A prefix of
// the id is accepted as long as it is unambiguous.
func (s *Storage) GetWorkoutByID(id string) (*models.Workout, error) {
	workouts, err := s.queryWorkouts(`
        SELECT id, preset, rounds, work_seconds, rest_seconds, started_at, finished_at, total_ms
        FROM workouts
        WHERE id LIKE ? || '%'
        LIMIT 2`, id)
	if err != nil {
		return nil, err
	}
	switch len(workouts) {
	case 0:
		return nil, sql.ErrNoRows
	case 2:
		return nil, fmt.Errorf("workout id %q is ambiguous", id)
	}
	w := workouts[0]

	rows, err := s.DB.Query(`
        SELECT total_ms, split_ms
        FROM workout_laps
        WHERE workout_id = ?
        ORDER BY position DESC`, w.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var totalMs, splitMs int64
		if err := rows.Scan(&totalMs, &splitMs); err != nil {
			return nil, err
		}
		w.Laps = append(w.Laps, models.Lap{
			Total: time.Duration(totalMs) * time.Millisecond,
			Split: time.Duration(splitMs) * time.Millisecond,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &w, nil
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func (s *Storage) queryWorkouts(query string, args ...any) ([]models.Workout, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var (
			w                   models.Workout
			preset              string
			startedAt, finished string
			totalMs             int64
		)
		if err := rows.Scan(&w.ID, &preset, &w.Config.Rounds, &w.Config.Work, &w.Config.Rest, &startedAt, &finished, &totalMs); err != nil {
			return nil, err
		}
		w.Config.Preset = models.Preset(preset)
		w.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		w.FinishedAt, _ = time.Parse(time.RFC3339, finished)
		w.Total = time.Duration(totalMs) * time.Millisecond
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}
