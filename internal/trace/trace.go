// Package trace provides structured verbose logging for cmd/lolli's -v
// flag: one zap.Logger per CLI invocation, tagged with a correlation ID
// so concurrent invocations' log lines (proof search depth, cache hits,
// rule applied) can be told apart when grepped from a shared terminal or
// log aggregator.
package trace

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ibrahimcesar/lolli/pkg/logic"
)

// Tracer wraps a zap.Logger pre-tagged with a per-invocation correlation
// ID.
type Tracer struct {
	logger *zap.Logger
	id     string
}

// New builds a Tracer. verbose selects debug-level output; otherwise
// only warnings and above are logged.
func New(verbose bool) (*Tracer, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	return &Tracer{logger: logger.With(zap.String("invocation", id)), id: id}, nil
}

// ID returns this Tracer's correlation ID.
func (t *Tracer) ID() string { return t.id }

// SequentExplored logs one sequent the prover visited during search.
func (t *Tracer) SequentExplored(depth int, sequent string) {
	t.logger.Debug("sequent explored", zap.Int("depth", depth), zap.String("sequent", sequent))
}

// CacheHit logs a failure-cache hit that pruned a branch.
func (t *Tracer) CacheHit(sequent string) {
	t.logger.Debug("cache hit", zap.String("sequent", sequent))
}

// RuleApplied logs the rule the prover chose at a given depth.
func (t *Tracer) RuleApplied(depth int, rule string) {
	t.logger.Debug("rule applied", zap.Int("depth", depth), zap.String("rule", rule))
}

// SearchResult logs the final outcome of a prove invocation.
func (t *Tracer) SearchResult(provable bool, stats logic.ProverStats) {
	t.logger.Info("search complete",
		zap.Bool("provable", provable),
		zap.Int("sequents_explored", stats.SequentsExplored),
		zap.Int("cache_hits", stats.CacheHits),
		zap.Int("max_depth_reached", stats.MaxDepthReached))
}

// Sync flushes any buffered log entries. Callers should defer Sync
// after New succeeds.
func (t *Tracer) Sync() error {
	return t.logger.Sync()
}
