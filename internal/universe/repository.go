package universe

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/errors"
)

// UniverseRecord is a persisted universe: the seed it was generated from and
// the full snapshot stored as a JSONB document.
type UniverseRecord struct {
	ID        int               `json:"id"`
	Seed      string            `json:"seed"`
	Snapshot  *UniverseSnapshot `json:"snapshot"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// UniverseSummary is the listing projection: everything but the snapshot
// document, plus a couple of counts pulled out of it.
type UniverseSummary struct {
	ID        int       `json:"id"`
	Seed      string    `json:"seed"`
	BodyCount int       `json:"body_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	logger := slog.With("component", "universe_repository", "operation", "init")
	logger.Debug("Initializing universe repository")
	return &Repository{db: db}
}

func (r *Repository) CreateUniverse(seed string, snapshot *UniverseSnapshot) (*UniverseRecord, error) {
	logger := slog.With(
		"component", "universe_repository",
		"operation", "create_universe",
		"seed", seed,
	)
	logger.Info("Creating universe")

	doc, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.WrapInternal("failed to encode snapshot", err)
	}

	query := `
		INSERT INTO universes (seed, snapshot)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	record := UniverseRecord{Seed: seed, Snapshot: snapshot}
	err = r.db.QueryRow(query, seed, doc).Scan(
		&record.ID,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		logger.Error("Failed to create universe", "error", err)
		return nil, errors.WrapInternal("failed to create universe", err)
	}

	logger.Info("Universe created successfully", "universe_id", record.ID)
	return &record, nil
}

func (r *Repository) GetUniverse(id int) (*UniverseRecord, error) {
	logger := slog.With("component", "universe_repository", "operation", "get_universe", "universe_id", id)
	logger.Debug("Getting universe by ID")

	query := `
		SELECT id, seed, snapshot, created_at, updated_at
		FROM universes
		WHERE id = $1
	`

	var record UniverseRecord
	var doc []byte
	err := r.db.QueryRow(query, id).Scan(
		&record.ID,
		&record.Seed,
		&doc,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			logger.Debug("Universe not found")
			return nil, errors.NotFoundf("universe %d not found", id)
		}
		logger.Error("Database error getting universe", "error", err)
		return nil, errors.WrapInternal("database error", err)
	}

	if err := json.Unmarshal(doc, &record.Snapshot); err != nil {
		logger.Error("Failed to decode stored snapshot", "error", err)
		return nil, errors.WrapInternal("failed to decode stored snapshot", err)
	}

	logger.Debug("Universe retrieved", "seed", record.Seed)
	return &record, nil
}

func (r *Repository) ListUniverses() ([]UniverseSummary, error) {
	logger := slog.With("component", "universe_repository", "operation", "list_universes")
	logger.Debug("Listing universes")

	query := `
		SELECT id, seed,
			(SELECT count(*)::int FROM jsonb_object_keys(snapshot->'bodies')),
			created_at, updated_at
		FROM universes
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		logger.Error("Database error listing universes", "error", err)
		return nil, errors.WrapInternal("database error", err)
	}
	defer rows.Close()

	summaries := []UniverseSummary{}
	for rows.Next() {
		var s UniverseSummary
		if err := rows.Scan(&s.ID, &s.Seed, &s.BodyCount, &s.CreatedAt, &s.UpdatedAt); err != nil {
			logger.Error("Failed to scan universe row", "error", err)
			return nil, errors.WrapInternal("failed to scan universe row", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapInternal("database error", err)
	}

	logger.Debug("Universes listed", "count", len(summaries))
	return summaries, nil
}

func (r *Repository) UpdateSnapshot(id int, snapshot *UniverseSnapshot) (*UniverseRecord, error) {
	logger := slog.With("component", "universe_repository", "operation", "update_snapshot", "universe_id", id)
	logger.Info("Replacing universe snapshot")

	doc, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.WrapInternal("failed to encode snapshot", err)
	}

	query := `
		UPDATE universes
		SET snapshot = $2, seed = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, seed, created_at, updated_at
	`

	record := UniverseRecord{Snapshot: snapshot}
	err = r.db.QueryRow(query, id, doc, snapshot.Seed).Scan(
		&record.ID,
		&record.Seed,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("universe %d not found", id)
		}
		logger.Error("Failed to replace snapshot", "error", err)
		return nil, errors.WrapInternal("failed to replace snapshot", err)
	}

	logger.Info("Snapshot replaced successfully")
	return &record, nil
}

func (r *Repository) DeleteUniverse(id int) error {
	logger := slog.With("component", "universe_repository", "operation", "delete_universe", "universe_id", id)
	logger.Info("Deleting universe")

	result, err := r.db.Exec(`DELETE FROM universes WHERE id = $1`, id)
	if err != nil {
		logger.Error("Failed to delete universe", "error", err)
		return errors.WrapInternal("failed to delete universe", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.WrapInternal("failed to read delete result", err)
	}
	if affected == 0 {
		return errors.NotFoundf("universe %d not found", id)
	}

	logger.Info("Universe deleted successfully")
	return nil
}
