package models

import "time"

// Workout is a completed interval run, as stored in the history database.
type Workout struct {
	ID         string        `json:"id"`
	Config     TimerConfig   `json:"config"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Total      time.Duration `json:"total"`
	Laps       []Lap         `json:"laps"` // Newest first, like the live lap list.
}

// Duration is the wall-clock length of the run, pauses included.
func (w Workout) Duration() time.Duration {
	if w.FinishedAt.Before(w.StartedAt) {
		return 0
	}
	return w.FinishedAt.Sub(w.StartedAt)
}
