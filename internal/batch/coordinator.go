// internal/batch/coordinator.go
package batch

import (
	"context"
	"runtime"
	"sync"

	"dnaetl/internal/etl"
)

// Runner is the minimal capability the coordinator needs. Any pipeline
// runner (including fakes in tests) can satisfy this.
type Runner interface {
	Run(ctx context.Context, job etl.Job) etl.Outcome
}

// Coordinator fans a batch of independent jobs into a Runner and
// collects one outcome per started job, in submission order. One
// record's failure never cancels or blocks another's processing.
// Cancellation is observed between records: jobs not yet started when
// the context is done are never run and contribute no outcome.
type Coordinator struct {
	Runner  Runner
	Workers int // concurrent pool size; <=0 means all CPUs
}

// RunSequential processes jobs one at a time on the calling goroutine.
// Execution and completion order match submission order.
func (c *Coordinator) RunSequential(ctx context.Context, jobs []etl.Job) etl.BatchReport {
	report := make(etl.BatchReport, 0, len(jobs))
	for _, j := range jobs {
		if ctx.Err() != nil {
			break
		}
		report = append(report, c.Runner.Run(ctx, j))
	}
	return report
}

// RunConcurrent processes jobs on a bounded worker pool. Completion
// order is unspecified; the report is ordered by the submission index
// carried alongside each job, and the only shared sink is the indexed
// result slice filled by a single collector goroutine.
func (c *Coordinator) RunConcurrent(ctx context.Context, jobs []etl.Job) etl.BatchReport {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if len(jobs) == 0 {
		return etl.BatchReport{}
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	type indexed struct {
		idx int
		job etl.Job
	}
	type completed struct {
		idx int
		out etl.Outcome
	}
	in := make(chan indexed, workers*2)
	results := make(chan completed, workers*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range in {
				results <- completed{idx: j.idx, out: c.Runner.Run(ctx, j.job)}
			}
		}()
	}

	// Collector: sole writer into the report slice.
	report := make(etl.BatchReport, len(jobs))
	var cwg sync.WaitGroup
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for d := range results {
			report[d.idx] = d.out
		}
	}()

	// Feed work until done or cancelled. Jobs already fed always run
	// to completion; unfed jobs are dropped from the report.
	fed := len(jobs)
feed:
	for i, j := range jobs {
		if ctx.Err() != nil {
			fed = i
			break
		}
		select {
		case in <- indexed{idx: i, job: j}:
		case <-ctx.Done():
			fed = i
			break feed
		}
	}
	close(in)
	wg.Wait()
	close(results)
	cwg.Wait()

	return report[:fed]
}
