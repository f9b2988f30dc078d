package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Profiles table - controller tuning presets
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			smoothing REAL NOT NULL DEFAULT 0.25,
			margin INTEGER NOT NULL DEFAULT 120,
			left_threshold REAL NOT NULL DEFAULT 0.035,
			right_threshold REAL NOT NULL DEFAULT 0.04,
			scroll_sensitivity REAL NOT NULL DEFAULT 35,
			invert_scroll INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Sessions table - usage statistics per pipeline run
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			profile_id TEXT REFERENCES profiles(id) ON DELETE SET NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			frames INTEGER NOT NULL DEFAULT 0,
			left_clicks INTEGER NOT NULL DEFAULT 0,
			right_clicks INTEGER NOT NULL DEFAULT 0,
			scroll_events INTEGER NOT NULL DEFAULT 0
		)`,

		`CREATE INDEX IF NOT EXISTS idx_sessions_profile_id ON sessions(profile_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
