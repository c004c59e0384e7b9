package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlandau/wavetrace/pkg/cache"
	"github.com/mlandau/wavetrace/pkg/diagram"
	"github.com/mlandau/wavetrace/pkg/errors"
	"github.com/mlandau/wavetrace/pkg/render/bitfield"
	"github.com/mlandau/wavetrace/pkg/render/nodelink"
	"github.com/mlandau/wavetrace/pkg/render/timing"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Render runs the complete decode → dispatch → render pipeline with
// caching.
func (r *Runner) Render(ctx context.Context, source []byte, opts Options) (*Result, error) {
	start := time.Now()

	doc, err := diagram.Decode(source)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Kind:       doc.Kind(),
		SourceHash: cache.Hash(source),
	}

	key := r.Keyer.RenderKey(result.SourceHash, cache.RenderKeyOpts{
		Kind:   result.Kind.String(),
		Skin:   opts.Skin,
		Strict: opts.Strict,
	})

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			result.SVG = data
			result.CacheHit = true
			result.Duration = time.Since(start)
			r.Logger.Debug("artifact cache hit", "kind", result.Kind, "hash", result.SourceHash[:12])
			return result, nil
		}
	}

	svg, err := r.dispatch(doc, opts)
	if err != nil {
		return nil, err
	}
	result.SVG = svg
	result.Duration = time.Since(start)

	_ = r.Cache.Set(ctx, key, svg, cache.TTLArtifact)

	r.Logger.Info("rendered diagram",
		"kind", result.Kind,
		"bytes", len(svg),
		"duration", result.Duration)

	return result, nil
}

// dispatch selects the renderer from the document's selector.
func (r *Runner) dispatch(doc *diagram.Document, opts Options) ([]byte, error) {
	switch doc.Kind() {
	case diagram.KindSignal:
		var topts []timing.Option
		if opts.Skin != "" {
			topts = append(topts, timing.WithSkin(opts.Skin))
		}
		if opts.Strict {
			topts = append(topts, timing.WithStrictCompat())
		}
		return timing.New(topts...).Render(doc)
	case diagram.KindReg:
		return bitfield.New().Render(doc)
	case diagram.KindAssign:
		return nil, errors.New(errors.ErrCodeUnsupported, "assign documents are not supported")
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "document selects no known diagram type")
	}
}

// Inspect renders the document's signal hierarchy as a node-link
// diagram. When dotOnly is true the Graphviz DOT source is returned
// instead of SVG.
func (r *Runner) Inspect(ctx context.Context, source []byte, detailed, dotOnly bool) ([]byte, error) {
	doc, err := diagram.Decode(source)
	if err != nil {
		return nil, err
	}
	dot, err := nodelink.ToDOT(doc, nodelink.Options{Detailed: detailed})
	if err != nil {
		return nil, err
	}
	if dotOnly {
		return []byte(dot), nil
	}
	return nodelink.RenderSVG(ctx, dot)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
