package journal

import "fmt"

// migrate runs database migrations.
func (j *Journal) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS batches (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			kind        TEXT NOT NULL CHECK(kind IN ('paste', 'edit')),
			applied     INTEGER NOT NULL,
			recorded_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS batch_updates (
			batch_id INTEGER NOT NULL REFERENCES batches(id) ON DELETE CASCADE,
			seq      INTEGER NOT NULL,
			row      INTEGER NOT NULL,
			col      INTEGER NOT NULL,
			value    TEXT NOT NULL,
			PRIMARY KEY (batch_id, seq)
		);

		CREATE INDEX IF NOT EXISTS idx_batches_recorded ON batches(recorded_at);
	`

	if _, err := j.db.Exec(query); err != nil {
		return fmt.Errorf("creating journal tables: %w", err)
	}

	return nil
}
