package store

import (
	"database/sql"
	"errors"
	"time"
)

// Session records usage statistics for one pipeline run.
type Session struct {
	ID           string     `json:"id"`
	ProfileID    string     `json:"profile_id,omitempty"`
	StartedAt    time.Time  `json:"started_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	Frames       int64      `json:"frames"`
	LeftClicks   int64      `json:"left_clicks"`
	RightClicks  int64      `json:"right_clicks"`
	ScrollEvents int64      `json:"scroll_events"`
}

// SessionRepository provides operations for session statistics.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Create inserts a new open session.
func (r *SessionRepository) Create(sess *Session) error {
	if sess.StartedAt.IsZero() {
		sess.StartedAt = time.Now()
	}

	var profileID any
	if sess.ProfileID != "" {
		profileID = sess.ProfileID
	}

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, profile_id, started_at, frames, left_clicks, right_clicks, scroll_events)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.ID, profileID, sess.StartedAt, sess.Frames, sess.LeftClicks, sess.RightClicks, sess.ScrollEvents,
	)
	return err
}

// Finish stamps the end time and writes the final counters for a session.
func (r *SessionRepository) Finish(id string, frames, leftClicks, rightClicks, scrollEvents int64) error {
	result, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ?, frames = ?, left_clicks = ?, right_clicks = ?, scroll_events = ?
		 WHERE id = ?`,
		time.Now(), frames, leftClicks, rightClicks, scrollEvents, id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	sess := &Session{}
	var profileID sql.NullString
	var endedAt sql.NullTime

	err := r.db.QueryRow(
		`SELECT id, profile_id, started_at, ended_at, frames, left_clicks, right_clicks, scroll_events
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &profileID, &sess.StartedAt, &endedAt,
		&sess.Frames, &sess.LeftClicks, &sess.RightClicks, &sess.ScrollEvents)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if profileID.Valid {
		sess.ProfileID = profileID.String
	}
	if endedAt.Valid {
		t := endedAt.Time
		sess.EndedAt = &t
	}
	return sess, nil
}

// List retrieves all sessions, most recent first.
func (r *SessionRepository) List() ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, profile_id, started_at, ended_at, frames, left_clicks, right_clicks, scroll_events
		 FROM sessions ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		sess := &Session{}
		var profileID sql.NullString
		var endedAt sql.NullTime

		err := rows.Scan(&sess.ID, &profileID, &sess.StartedAt, &endedAt,
			&sess.Frames, &sess.LeftClicks, &sess.RightClicks, &sess.ScrollEvents)
		if err != nil {
			return nil, err
		}

		if profileID.Valid {
			sess.ProfileID = profileID.String
		}
		if endedAt.Valid {
			t := endedAt.Time
			sess.EndedAt = &t
		}
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
