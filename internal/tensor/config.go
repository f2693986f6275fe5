package tensor

import (
	"sync/atomic"

	"github.com/born-ml/ndarray/internal/parallel"
)

var parallelCfg atomic.Pointer[parallel.Config]

func init() {
	cfg := parallel.DefaultConfig()
	parallelCfg.Store(&cfg)
}

// SetParallelConfig replaces the configuration used by elementwise loops and
// batched matmul.
func SetParallelConfig(cfg parallel.Config) {
	parallelCfg.Store(&cfg)
}

// ParallelConfig returns the configuration currently in effect.
func ParallelConfig() parallel.Config {
	return *parallelCfg.Load()
}
