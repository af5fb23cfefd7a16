package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo over a SQLite database. The
// profile is stored as a single JSON row; the schema version column lets
// readers reject payloads written by an incompatible release.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(dbtx db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: dbtx}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	var (
		payload       string
		schemaVersion int
	)
	row := r.db.QueryRowContext(ctx, `SELECT payload, schema_version FROM profiles WHERE id = 1`)
	if err := row.Scan(&payload, &schemaVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	if schemaVersion != domain.ProfileSchemaVersion {
		return nil, fmt.Errorf("profile schema version %d not supported", schemaVersion)
	}

	var p domain.Profile
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Save(ctx context.Context, p *domain.Profile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	query := `INSERT INTO profiles (id, payload, analyzed_at, schema_version)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			payload = excluded.payload,
			analyzed_at = excluded.analyzed_at,
			schema_version = excluded.schema_version`
	_, err = r.db.ExecContext(ctx, query,
		string(payload),
		p.AnalyzedAt.UTC().Format(time.RFC3339),
		p.SchemaVersion,
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
