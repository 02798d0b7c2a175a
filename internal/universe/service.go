package universe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/config"
)

// GenerateRequest is the payload for creating a universe. Seed and Config
// are both optional: a missing seed falls back to the configured default or
// a random one, and a missing config falls back to the env-tuned defaults.
type GenerateRequest struct {
	Seed   string            `json:"seed"`
	Config *GenerationConfig `json:"config,omitempty"`
}

// GenerateResult pairs the stored record with any invariant findings the
// post-generation validation produced.
type GenerateResult struct {
	Universe *UniverseRecord `json:"universe"`
	Findings []Finding       `json:"findings"`
}

type Service struct {
	repo   *Repository
	cache  *Cache
	logger *slog.Logger
}

func NewService(repo *Repository, cache *Cache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// buildConfig resolves the effective generation config for a request: the
// request config when supplied, otherwise the library defaults with the
// env-driven feature toggles applied.
func (s *Service) buildConfig(req GenerateRequest) GenerationConfig {
	var cfg GenerationConfig
	if req.Config != nil {
		cfg = *req.Config
	} else {
		cfg = DefaultConfig()
		gen := config.GlobalConfig.Generation
		cfg.MaxSystems = gen.MaxSystems
		if cfg.MinSystems > cfg.MaxSystems {
			cfg.MinSystems = cfg.MaxSystems
		}
		cfg.Belts.Enabled = gen.EnableAsteroidBelts
		cfg.Rings.Enabled = gen.EnableRings
		cfg.Comets.Enabled = gen.EnableComets
		cfg.BlackHoles.Enabled = gen.EnableBlackHoles
		cfg.Lagrange.Enabled = gen.EnableLagrangePoints
		cfg.Disks.Enabled = gen.EnableDisks
		cfg.Nebulae.Enabled = gen.EnableNebulae
		cfg.Groups.Enabled = gen.EnableGroups
	}

	if req.Seed != "" {
		cfg.Seed = req.Seed
	}
	if cfg.Seed == "" {
		cfg.Seed = config.GlobalConfig.Generation.DefaultSeed
	}
	if cfg.Seed == "" {
		cfg.Seed = uuid.NewString()
	}
	return cfg
}

// CreateUniverse generates a snapshot from the request and persists it.
func (s *Service) CreateUniverse(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	cfg := s.buildConfig(req)
	s.logger.Info("Creating universe", "seed", cfg.Seed)

	snapshot, findings, err := NewGenerator(cfg, s.logger).Generate()
	if err != nil {
		return nil, err
	}

	record, err := s.repo.CreateUniverse(cfg.Seed, snapshot)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, record)
	return &GenerateResult{Universe: record, Findings: findings}, nil
}

// GetUniverse retrieves a universe, preferring the cache.
func (s *Service) GetUniverse(ctx context.Context, id int) (*UniverseRecord, error) {
	if record := s.cache.Get(ctx, id); record != nil {
		return record, nil
	}

	record, err := s.repo.GetUniverse(id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, record)
	return record, nil
}

// ListUniverses retrieves summaries of all stored universes.
func (s *Service) ListUniverses() ([]UniverseSummary, error) {
	return s.repo.ListUniverses()
}

// ReplaceSnapshot overwrites a stored snapshot with a caller-supplied one.
// The replacement is re-validated and the findings are returned so callers
// learn about broken invariants in what they stored; the write itself only
// fails on infrastructure errors.
func (s *Service) ReplaceSnapshot(ctx context.Context, id int, snapshot *UniverseSnapshot) (*GenerateResult, error) {
	s.logger.Info("Replacing universe snapshot", "universe_id", id)

	findings := ValidateSnapshot(snapshot)
	if len(findings) > 0 {
		s.logger.Warn("Replacement snapshot has findings", "universe_id", id, "count", len(findings))
	}

	record, err := s.repo.UpdateSnapshot(id, snapshot)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return &GenerateResult{Universe: record, Findings: findings}, nil
}

// DeleteUniverse removes a stored universe.
func (s *Service) DeleteUniverse(ctx context.Context, id int) error {
	s.logger.Info("Deleting universe", "universe_id", id)

	if err := s.repo.DeleteUniverse(id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

// mutateSnapshot loads a universe, applies fn to its snapshot and writes the
// result back, invalidating the cache.
func (s *Service) mutateSnapshot(ctx context.Context, id int, fn func(*UniverseSnapshot) error) (*UniverseRecord, error) {
	record, err := s.repo.GetUniverse(id)
	if err != nil {
		return nil, err
	}

	if err := fn(record.Snapshot); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateSnapshot(id, record.Snapshot)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return updated, nil
}

// PatchBody applies a partial update to one body of a stored universe.
func (s *Service) PatchBody(ctx context.Context, id int, bodyID string, patch *BodyPatch) (*UniverseRecord, error) {
	s.logger.Info("Patching body", "universe_id", id, "body_id", bodyID)
	return s.mutateSnapshot(ctx, id, func(snap *UniverseSnapshot) error {
		return snap.PatchBody(bodyID, patch)
	})
}

// ReparentBody moves a body under a new parent in a stored universe.
func (s *Service) ReparentBody(ctx context.Context, id int, bodyID, newParentID string) (*UniverseRecord, error) {
	s.logger.Info("Reparenting body", "universe_id", id, "body_id", bodyID, "new_parent_id", newParentID)
	return s.mutateSnapshot(ctx, id, func(snap *UniverseSnapshot) error {
		return snap.ReparentBody(bodyID, newParentID)
	})
}

// PatchGroup applies a partial update to one group of a stored universe.
func (s *Service) PatchGroup(ctx context.Context, id int, groupID string, patch *GroupPatch) (*UniverseRecord, error) {
	s.logger.Info("Patching group", "universe_id", id, "group_id", groupID)
	return s.mutateSnapshot(ctx, id, func(snap *UniverseSnapshot) error {
		return snap.PatchGroup(groupID, patch)
	})
}

// ReparentGroup moves a group under a new parent group, or to the root when
// newParentID is nil.
func (s *Service) ReparentGroup(ctx context.Context, id int, groupID string, newParentID *string) (*UniverseRecord, error) {
	s.logger.Info("Reparenting group", "universe_id", id, "group_id", groupID)
	return s.mutateSnapshot(ctx, id, func(snap *UniverseSnapshot) error {
		return snap.ReparentGroup(groupID, newParentID)
	})
}
