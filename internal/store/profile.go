package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Profile is a named controller tuning preset. Camera and screen dimensions
// live outside the profile: they describe the machine, not the user's hand.
type Profile struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Smoothing         float64 `json:"smoothing"`
	Margin            int     `json:"margin"`
	LeftThreshold     float64 `json:"left_threshold"`
	RightThreshold    float64 `json:"right_threshold"`
	ScrollSensitivity float64 `json:"scroll_sensitivity"`
	InvertScroll      bool    `json:"invert_scroll"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DefaultProfile returns the stock tuning under the given name.
func DefaultProfile(id, name string) *Profile {
	return &Profile{
		ID:                id,
		Name:              name,
		Smoothing:         0.25,
		Margin:            120,
		LeftThreshold:     0.035,
		RightThreshold:    0.04,
		ScrollSensitivity: 35,
	}
}

// ProfileRepository provides CRUD operations for profiles.
type ProfileRepository struct {
	db *sql.DB
}

// Profiles returns the profile repository for this store.
func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{db: s.db}
}

// Create inserts a new profile into the database.
func (r *ProfileRepository) Create(p *Profile) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO profiles (id, name, smoothing, margin, left_threshold, right_threshold,
		                       scroll_sensitivity, invert_scroll, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Smoothing, p.Margin, p.LeftThreshold, p.RightThreshold,
		p.ScrollSensitivity, boolToInt(p.InvertScroll), p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by its ID.
func (r *ProfileRepository) GetByID(id string) (*Profile, error) {
	return r.get(`SELECT id, name, smoothing, margin, left_threshold, right_threshold,
	                     scroll_sensitivity, invert_scroll, created_at, updated_at
	              FROM profiles WHERE id = ?`, id)
}

// GetByName retrieves a profile by its unique name.
func (r *ProfileRepository) GetByName(name string) (*Profile, error) {
	return r.get(`SELECT id, name, smoothing, margin, left_threshold, right_threshold,
	                     scroll_sensitivity, invert_scroll, created_at, updated_at
	              FROM profiles WHERE name = ?`, name)
}

func (r *ProfileRepository) get(query string, arg any) (*Profile, error) {
	p := &Profile{}
	var invert int

	err := r.db.QueryRow(query, arg).Scan(
		&p.ID, &p.Name, &p.Smoothing, &p.Margin, &p.LeftThreshold, &p.RightThreshold,
		&p.ScrollSensitivity, &invert, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.InvertScroll = invert != 0
	return p, nil
}

// List retrieves all profiles from the database.
func (r *ProfileRepository) List() ([]*Profile, error) {
	rows, err := r.db.Query(
		`SELECT id, name, smoothing, margin, left_threshold, right_threshold,
		        scroll_sensitivity, invert_scroll, created_at, updated_at
		 FROM profiles ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p := &Profile{}
		var invert int

		err := rows.Scan(&p.ID, &p.Name, &p.Smoothing, &p.Margin, &p.LeftThreshold,
			&p.RightThreshold, &p.ScrollSensitivity, &invert, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}

		p.InvertScroll = invert != 0
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update updates an existing profile in the database.
func (r *ProfileRepository) Update(p *Profile) error {
	p.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE profiles SET name = ?, smoothing = ?, margin = ?, left_threshold = ?,
		        right_threshold = ?, scroll_sensitivity = ?, invert_scroll = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.Smoothing, p.Margin, p.LeftThreshold, p.RightThreshold,
		p.ScrollSensitivity, boolToInt(p.InvertScroll), p.UpdatedAt, p.ID,
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

// Delete removes a profile from the database by its ID.
func (r *ProfileRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
