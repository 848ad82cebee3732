package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/quizbee-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite. Every Put writes
// through, so crashes lose at most the classification in flight.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite database at the given path,
// configures WAL mode, and applies the schema.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	if _, err := db.Exec(sqliteMigration); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "sqlite: migrate")
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS classifications (
	question_id    TEXT PRIMARY KEY,
	regions        TEXT NOT NULL,
	time_periods   TEXT NOT NULL,
	answer_type    TEXT NOT NULL,
	subject_themes TEXT NOT NULL,
	updated_at     DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS progress (
	id              INTEGER PRIMARY KEY CHECK (id = 1),
	total_questions INTEGER NOT NULL DEFAULT 0,
	categorized     INTEGER NOT NULL DEFAULT 0,
	last_updated    DATETIME
);
`

func (s *SQLiteStore) Get(ctx context.Context, id string) (model.Classification, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT regions, time_periods, answer_type, subject_themes FROM classifications WHERE question_id = ?`,
		id,
	)

	var cls model.Classification
	var regionsJSON, periodsJSON, themesJSON string
	err := row.Scan(&regionsJSON, &periodsJSON, &cls.AnswerType, &themesJSON)
	if err == sql.ErrNoRows {
		return model.Classification{}, false, nil
	}
	if err != nil {
		return model.Classification{}, false, eris.Wrapf(err, "sqlite: get %s", id)
	}

	if err := decodeLabels(regionsJSON, &cls.Regions); err != nil {
		return model.Classification{}, false, eris.Wrapf(err, "sqlite: decode regions for %s", id)
	}
	if err := decodeLabels(periodsJSON, &cls.TimePeriods); err != nil {
		return model.Classification{}, false, eris.Wrapf(err, "sqlite: decode time periods for %s", id)
	}
	if err := decodeLabels(themesJSON, &cls.SubjectThemes); err != nil {
		return model.Classification{}, false, eris.Wrapf(err, "sqlite: decode themes for %s", id)
	}
	return cls, true, nil
}

func (s *SQLiteStore) Put(ctx context.Context, id string, cls model.Classification) error {
	regionsJSON, err := encodeLabels(cls.Regions)
	if err != nil {
		return eris.Wrapf(err, "sqlite: encode regions for %s", id)
	}
	periodsJSON, err := encodeLabels(cls.TimePeriods)
	if err != nil {
		return eris.Wrapf(err, "sqlite: encode time periods for %s", id)
	}
	themesJSON, err := encodeLabels(cls.SubjectThemes)
	if err != nil {
		return eris.Wrapf(err, "sqlite: encode themes for %s", id)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO classifications (question_id, regions, time_periods, answer_type, subject_themes, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(question_id) DO UPDATE SET
			regions = excluded.regions,
			time_periods = excluded.time_periods,
			answer_type = excluded.answer_type,
			subject_themes = excluded.subject_themes,
			updated_at = excluded.updated_at
	`, id, regionsJSON, periodsJSON, cls.AnswerType, themesJSON, time.Now().UTC())
	return eris.Wrapf(err, "sqlite: put %s", id)
}

func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM classifications WHERE question_id = ?`, id)
	return eris.Wrapf(err, "sqlite: delete %s", id)
}

func (s *SQLiteStore) All(ctx context.Context) (map[string]model.Classification, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, regions, time_periods, answer_type, subject_themes FROM classifications`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list classifications")
	}
	defer rows.Close()

	out := make(map[string]model.Classification)
	for rows.Next() {
		var id, regionsJSON, periodsJSON, themesJSON string
		var cls model.Classification
		if err := rows.Scan(&id, &regionsJSON, &periodsJSON, &cls.AnswerType, &themesJSON); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan classification")
		}
		if err := decodeLabels(regionsJSON, &cls.Regions); err != nil {
			return nil, eris.Wrapf(err, "sqlite: decode regions for %s", id)
		}
		if err := decodeLabels(periodsJSON, &cls.TimePeriods); err != nil {
			return nil, eris.Wrapf(err, "sqlite: decode time periods for %s", id)
		}
		if err := decodeLabels(themesJSON, &cls.SubjectThemes); err != nil {
			return nil, eris.Wrapf(err, "sqlite: decode themes for %s", id)
		}
		out[id] = cls
	}
	return out, eris.Wrap(rows.Err(), "sqlite: iterate classifications")
}

func (s *SQLiteStore) Progress(ctx context.Context) (model.Progress, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT total_questions, categorized, last_updated FROM progress WHERE id = 1`,
	)

	var p model.Progress
	var last sql.NullTime
	err := row.Scan(&p.TotalQuestions, &p.Categorized, &last)
	if err == sql.ErrNoRows {
		return model.Progress{}, nil
	}
	if err != nil {
		return model.Progress{}, eris.Wrap(err, "sqlite: get progress")
	}
	if last.Valid {
		t := last.Time
		p.LastUpdated = &t
	}
	return p, nil
}

func (s *SQLiteStore) SetProgress(ctx context.Context, p model.Progress) error {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO progress (id, total_questions, categorized, last_updated)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			total_questions = excluded.total_questions,
			categorized = excluded.categorized,
			last_updated = excluded.last_updated
	`, p.TotalQuestions, p.Categorized, now)
	return eris.Wrap(err, "sqlite: set progress")
}

// Flush is a no-op: every Put writes through.
func (s *SQLiteStore) Flush(context.Context) error {
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func encodeLabels(labels []string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	data, err := json.Marshal(labels)
	return string(data), err
}

func decodeLabels(data string, dst *[]string) error {
	return json.Unmarshal([]byte(data), dst)
}
