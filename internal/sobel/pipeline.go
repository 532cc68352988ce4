package sobel

import (
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/edgetools/sobel-mcp/internal/pixel"
)

// Options configures a Pipeline.
type Options struct {
	// Workers is the number of goroutines each stage partitions its rows
	// across. Values below 1 select runtime.NumCPU(). Exactly 1 runs every
	// stage sequentially.
	Workers int

	// Logger receives per-stage timing at debug level. nil disables logging.
	// Stages log from concurrent goroutines, so the writer behind the
	// logger must be safe for concurrent use.
	Logger *zerolog.Logger
}

// Result holds every intermediate buffer of one pipeline run. Callers pick
// the stages they want to encode or persist; the pipeline itself performs
// no I/O.
type Result struct {
	// Source is the buffer the pipeline ran on.
	Source *pixel.Buffer

	// Grayscale is the luminance conversion of Source.
	Grayscale *pixel.Buffer

	// Horizontal and Vertical are the two gradient responses over Grayscale.
	Horizontal *pixel.Buffer
	Vertical   *pixel.Buffer

	// Edges is the combined gradient magnitude.
	Edges *pixel.Buffer

	// SideBySide is Source and Edges composited on one canvas.
	SideBySide *pixel.Buffer
}

// Pipeline runs the full edge detection sequence: grayscale conversion, the
// two gradient filters, magnitude combination, and side-by-side compositing.
//
// # Concurrency Model
//
// Each stage partitions its rows into contiguous chunks and processes the
// chunks on separate goroutines, joining them before the next stage starts,
// so a stage only ever reads fully written buffers. The two gradient filters
// share the read-only grayscale buffer and run in flight together. Stage
// outputs never alias stage inputs, which keeps every write disjoint from
// every concurrent read.
type Pipeline struct {
	workers int
	log     zerolog.Logger
}

// NewPipeline creates a pipeline with the given options. The zero Options
// value selects one worker per CPU and no logging.
func NewPipeline(opts Options) *Pipeline {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Pipeline{workers: workers, log: log}
}

// Run executes all stages on src and returns every intermediate buffer.
// src is never modified; each stage writes a fresh buffer.
//
// The combining stages surface ErrDimensionMismatch as the sequential
// functions do. For buffers Run itself produced the sizes always agree, so
// a non-nil error from Run means the pipeline wiring is broken, not the
// input.
func (p *Pipeline) Run(src *pixel.Buffer) (*Result, error) {
	start := time.Now()

	gray := pixel.NewLike(src)
	p.stage("grayscale", src.Height(), func(y0, y1 int) {
		grayscaleRows(src, gray, y0, y1)
	})

	horizontal := gray.Clone()
	vertical := gray.Clone()
	var g errgroup.Group
	g.Go(func() error {
		p.stage("gradient_horizontal", gray.Height(), func(y0, y1 int) {
			gradientRows(gray, horizontal, Horizontal, y0, y1)
		})
		return nil
	})
	g.Go(func() error {
		p.stage("gradient_vertical", gray.Height(), func(y0, y1 int) {
			gradientRows(gray, vertical, Vertical, y0, y1)
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := sameSize(horizontal, vertical, "horizontal", "vertical"); err != nil {
		return nil, err
	}
	edges := pixel.NewLike(gray)
	p.stage("magnitude", edges.Height(), func(y0, y1 int) {
		magnitudeRows(horizontal, vertical, edges, y0, y1)
	})

	if err := sameSize(src, edges, "source", "edges"); err != nil {
		return nil, err
	}
	canvas, err := pixel.New(src.Width()+edges.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	p.stage("composite", canvas.Height(), func(y0, y1 int) {
		compositeRows(src, edges, canvas, y0, y1)
	})

	p.log.Debug().
		Int("width", src.Width()).
		Int("height", src.Height()).
		Int("workers", p.workers).
		Dur("elapsed", time.Since(start)).
		Msg("pipeline complete")

	return &Result{
		Source:     src,
		Grayscale:  gray,
		Horizontal: horizontal,
		Vertical:   vertical,
		Edges:      edges,
		SideBySide: canvas,
	}, nil
}

// stage runs fn over the row ranges of [0, rows) partitioned across the
// pipeline's workers and waits for every chunk before returning; that wait
// is the barrier between stages.
func (p *Pipeline) stage(name string, rows int, fn func(y0, y1 int)) {
	start := time.Now()
	if p.workers <= 1 || rows < 2 {
		fn(0, rows)
	} else {
		chunk := (rows + p.workers - 1) / p.workers
		var g errgroup.Group
		for y := 0; y < rows; y += chunk {
			y0, y1 := y, min(y+chunk, rows)
			g.Go(func() error {
				fn(y0, y1)
				return nil
			})
		}
		_ = g.Wait() // row chunks cannot fail; Wait only joins them
	}
	p.log.Debug().
		Str("stage", name).
		Int("rows", rows).
		Dur("elapsed", time.Since(start)).
		Msg("stage complete")
}
