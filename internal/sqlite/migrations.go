package sqlite

func (s Storage) RunMigrations() error {
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id VARCHAR NOT NULL PRIMARY KEY,
		auth TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS meetings (
		account_id VARCHAR NOT NULL,
		event_id VARCHAR NOT NULL,
		summary VARCHAR NOT NULL,
		starts_at VARCHAR NOT NULL,
		ends_at VARCHAR NOT NULL,
		attendees VARCHAR NOT NULL DEFAULT "",
		html_link VARCHAR NOT NULL DEFAULT "",
		created_at VARCHAR NOT NULL,
		PRIMARY KEY (account_id, event_id),
		FOREIGN KEY (account_id) REFERENCES accounts (id)
	)`,
}
