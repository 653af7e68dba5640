package batch

import (
	"runtime"
	"slices"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"MNEM2ENT/internal/decode"
)

// Result tags an outcome with the position of its phrase in the input.
type Result struct {
	Index int
	decode.Outcome
}

type options struct {
	workers  int
	progress func(done, total int)
	logger   *zap.Logger
}

// Option configures Run.
type Option func(*options)

// WithWorkers sets the pool size. Values below 1 select runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithProgress registers a callback invoked once per finished phrase. It may be
// called concurrently from several workers.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) { o.progress = fn }
}

// WithLogger sets the logger for batch start and finish entries. The default discards them.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Why(中文): 解码顺序由调度决定，但输出必须按输入下标稳定排序，调用方看到的第 i 项永远对应第 i 条助记词。
// Why(English): Completion order is up to the scheduler; results are stably sorted by input index before return.
func Run(dec *decode.Decoder, phrases []string, cfg decode.Config, opts ...Option) []Result {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	workers := o.workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > len(phrases) {
		workers = len(phrases)
	}
	o.logger.Debug("batch start",
		zap.Int("phrases", len(phrases)),
		zap.Int("workers", workers),
		zap.Stringer("mode", cfg.Mode),
		zap.Bool("fallback", cfg.Fallback))

	jobs := make(chan int)
	results := make(chan Result, len(phrases))
	var done atomic.Int64

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for i := range jobs {
				results <- Result{Index: i, Outcome: dec.Apply(phrases[i], cfg)}
				n := done.Add(1)
				if o.progress != nil {
					o.progress(int(n), len(phrases))
				}
			}
			return nil
		})
	}
	for i := range phrases {
		jobs <- i
	}
	close(jobs)
	_ = g.Wait()
	close(results)

	out := make([]Result, 0, len(phrases))
	for r := range results {
		out = append(out, r)
	}
	slices.SortStableFunc(out, func(a, b Result) int { return a.Index - b.Index })
	o.logger.Debug("batch done", zap.Int("phrases", len(out)))
	return out
}
