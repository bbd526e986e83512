package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/blurhash-go/internal/encoder"
	"github.com/AnyUserName/blurhash-go/internal/manifest"
	"github.com/AnyUserName/blurhash-go/internal/profile"
)

// DefaultSampleResolution is the sampler shorter-edge resolution used
// when a profile doesn't pin one.
const DefaultSampleResolution = 32

// Config holds all parameters for a build pipeline run.
type Config struct {
	InputDir      string
	OutputDir     string
	Profile       profile.Profile
	Workers       int
	Verbose       bool
	NoRegressSize bool // skip variants larger than original
}

// Pipeline orchestrates image processing.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

// Run executes the full build pipeline and returns the manifest.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	// Log encoder availability.
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[blurctl] %s\n", p.registry.String())
	}

	// Step 1: Scan for images.
	sources, err := ScanImages(p.cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}

	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[blurctl] found %d images\n", len(sources))
	}

	// Step 2: Process images in parallel.
	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		wg.Add(1)
		go func(idx int, s Source) {
			defer wg.Done()
			sem <- struct{}{} // acquire
			defer func() { <-sem }() // release

			if p.cfg.Verbose {
				fmt.Fprintf(os.Stderr, "[blurctl] processing: %s\n", s.Key)
			}

			results[idx] = processImage(s, p.cfg, p.registry)

			if p.cfg.Verbose && results[idx].err == nil {
				fmt.Fprintf(os.Stderr, "[blurctl] done: %s (%d variants)\n",
					s.Key, len(results[idx].asset.Variants))
			}
		}(i, src)
	}
	wg.Wait()

	// Step 3: Collect results into manifest.
	m := manifest.New(p.cfg.Profile.Name)

	var errs []error
	var totalSkipped int
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Assets[r.key] = r.asset
		totalSkipped += r.skippedRegress
	}

	// Report errors but don't fail the entire build for partial failures.
	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[blurctl] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[blurctl] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	resolution := p.cfg.Profile.Resolution
	if resolution <= 0 {
		resolution = DefaultSampleResolution
	}
	m.BuildInfo = &manifest.BuildInfo{
		Workers:          p.cfg.Workers,
		SampleResolution: resolution,
	}
	m.ComputeStats()
	m.Stats.SkippedRegress = totalSkipped
	return m, nil
}
