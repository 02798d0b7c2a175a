package universe

import (
	"fmt"
	"log/slog"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"

	"github.com/google/uuid"
)

// Generator produces complete universe snapshots from a seed and a
// configuration. Generation is a synchronous pure computation over an
// explicitly-owned random stream; every secondary feature generator works on
// its own labelled fork, so feature draws never interleave and branches stay
// independent of evaluation order.
type Generator struct {
	cfg       GenerationConfig
	namespace uuid.UUID
	logger    *slog.Logger
}

// NewGenerator copies the config so later mutations by the caller cannot
// leak into a run.
func NewGenerator(cfg GenerationConfig, logger *slog.Logger) *Generator {
	return &Generator{
		cfg:       cfg,
		namespace: uuid.NewSHA1(uuid.NameSpaceOID, []byte("solar-system-constructor:"+cfg.Seed)),
		logger:    logger.With("component", "generator", "seed", cfg.Seed),
	}
}

// newID derives a reproducible UUIDv5 from the run namespace and a stable
// structural label, so the same seed always yields the same entity ids.
func (g *Generator) newID(format string, args ...any) string {
	return uuid.NewSHA1(g.namespace, []byte(fmt.Sprintf(format, args...))).String()
}

// Generate validates the configuration, builds every system, runs the
// secondary feature generators on their own forks, assembles the snapshot
// and re-validates the aggregate invariants.
//
// A configuration error aborts before any sampling; validation findings are
// returned alongside the snapshot and are never fatal here.
func (g *Generator) Generate() (*UniverseSnapshot, []Finding, error) {
	cfg := g.cfg
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	root := rng.NewSampler(rng.NewStream(cfg.Seed))
	snap := newSnapshot(cfg.Seed)

	systemCount := root.Fork("topology").UniformInt(cfg.MinSystems, cfg.MaxSystems)
	g.logger.Debug("Expanding systems", "count", systemCount)

	systems := make([]*systemContext, 0, systemCount)
	for i := 0; i < systemCount; i++ {
		systems = append(systems, g.buildSystem(snap, &cfg, root, i))
	}

	// Each feature forks by kind and host id, never by call order, so the
	// per-system loops below could run in any order without changing output.
	for _, sys := range systems {
		g.generateBelts(snap, &cfg, root.Fork("belt:"+sys.root.ID), sys)
	}
	for _, sys := range systems {
		g.generateRings(&cfg, root.Fork("ring:"+sys.root.ID), sys)
	}
	for _, sys := range systems {
		g.generateComets(snap, &cfg, root.Fork("comet:"+sys.root.ID), sys)
	}
	for _, sys := range systems {
		g.generateBlackHole(&cfg, root.Fork("blackhole:"+sys.root.ID), sys)
	}
	for _, sys := range systems {
		g.generateLagrangePoints(snap, &cfg, root.Fork("lagrange:"+sys.root.ID), sys)
	}
	for _, sys := range systems {
		g.generateDisk(snap, &cfg, root.Fork("disk:"+sys.root.ID), sys)
	}
	for _, sys := range systems {
		g.generateRogue(snap, &cfg, root.Fork("rogue:"+sys.root.ID), sys)
	}

	g.generateGroups(snap, &cfg, root.Fork("groups"))
	g.generateNebulae(snap, &cfg, root.Fork("nebulae"))

	findings := ValidateSnapshot(snap)
	if len(findings) > 0 {
		g.logger.Warn("Snapshot validation produced findings", "count", len(findings))
	}

	g.logger.Info("Universe generated",
		"systems", systemCount,
		"bodies", len(snap.Bodies),
		"groups", len(snap.Groups),
		"belts", len(snap.Belts),
		"disks", len(snap.Disks),
		"nebulae", len(snap.Nebulae),
	)

	return snap, findings, nil
}
