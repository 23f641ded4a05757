package warmup

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/koushikbethu/aud-isl-convo/internal/core/tables"
	"github.com/koushikbethu/aud-isl-convo/internal/ports"
)

// Config defines configuration for warming up the system before serving.
type Config struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultConfig returns the default warmup configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  1000,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles system warmup operations.
type Manager struct {
	logger      ports.Logger
	normalizers []ports.Normalizer
	resolvers   []ports.Resolver
	config      Config
}

// NewManager creates a new warmup manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// RegisterResolver adds a resolver to be warmed up.
func (wm *Manager) RegisterResolver(res ports.Resolver) {
	wm.resolvers = append(wm.resolvers, res)
}

// WarmUp runs the warmup process for all registered components. Sample
// inputs cover both lookup tiers: phrase-table hits and spelled-out text.
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.normalizers)+len(wm.resolvers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	samples := warmupSamples()

	wm.warmUpNormalizers(warmupCtx, samples)
	wm.warmUpResolvers(warmupCtx, samples)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

func (wm *Manager) warmUpNormalizers(ctx context.Context, samples []string) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(samples[j%len(samples)])
				}
			}
		}()
	}

	wg.Wait()
}

func (wm *Manager) warmUpResolvers(ctx context.Context, samples []string) {
	if len(wm.resolvers) == 0 {
		return
	}

	wm.logger.Debug("Warming up resolvers", "count", len(wm.resolvers))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, resolver := range wm.resolvers {
					_, _ = resolver.Resolve(ctx, samples[j%len(samples)])
				}
			}
		}()
	}

	wg.Wait()
}

// warmupSamples returns normalized sample inputs exercising both the phrase
// hit path and the letter sequence fallback.
func warmupSamples() []string {
	phrases := tables.Phrases()
	if len(phrases) > 8 {
		phrases = phrases[:8]
	}
	return append(phrases, "warmup", "xyz", "spelled out text")
}
