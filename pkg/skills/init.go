package skills

import (
	"context"

	"github.com/skillet-ai/skillet/pkg/config"
	"github.com/skillet-ai/skillet/pkg/logger"
)

// Initialize discovers skills according to configuration. It returns
// the snapshot and whether skills are enabled; a disabled skills
// system yields (nil, false).
func Initialize(ctx context.Context, cfg config.SkillsConfig) (*Snapshot, bool) {
	if !cfg.Enabled {
		return nil, false
	}

	opts := []Option{}
	if cfg.UserDir != "" || cfg.ProjectDir != "" {
		roots := []Root{}
		if cfg.UserDir != "" {
			roots = append(roots, Root{Dir: cfg.UserDir, Source: SourceUser})
		}
		if cfg.ProjectDir != "" {
			roots = append(roots, Root{Dir: cfg.ProjectDir, Source: SourceProject})
		}
		opts = append(opts, WithRoots(roots...))
	}

	discovery, err := NewDiscovery(opts...)
	if err != nil {
		logger.G(ctx).WithError(err).Debug("Failed to create skill discovery")
		return nil, false
	}

	snapshot := discovery.Scan(ctx)
	if len(cfg.Allowed) > 0 {
		snapshot = snapshot.Filter(cfg.Allowed)
	}

	logger.G(ctx).WithFields(map[string]interface{}{
		"snapshot": snapshot.ID(),
		"skills":   snapshot.Len(),
		"excluded": len(snapshot.Diagnostics()),
	}).Debug("Skill scan complete")

	return snapshot, true
}
