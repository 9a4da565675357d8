package scheduler

import (
	"github.com/luis6156/coopsched/schedconfig"
	"github.com/luis6156/coopsched/schedlog"
)

// FromConfig translates a schedconfig.Config into the (quantum, io, opts)
// triple Init expects, so callers that load configuration from YAML don't
// have to hand-assemble Options themselves.
func FromConfig(cfg *schedconfig.Config) (quantum uint, io uint, opts []Option) {
	opts = []Option{
		WithMaxPriority(cfg.MaxPriority),
		WithMaxEvents(cfg.MaxEvents),
	}

	if cfg.LogConfig != nil {
		logger, err := schedlog.New(schedlog.Config{
			UseJSON:        cfg.LogConfig.UseJSON,
			Level:          cfg.LogConfig.Level,
			File:           cfg.LogConfig.File,
			FileMaxSizeMB:  cfg.LogConfig.FileMaxSizeMB,
			FileMaxBackups: cfg.LogConfig.FileMaxBackups,
		})
		if err == nil {
			opts = append(opts, WithLogger(logger))
		}
	}

	return cfg.Quantum, cfg.IO, opts
}
