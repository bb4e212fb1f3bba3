package audit

import (
	"context"
	"sync"
)

// Document is one raw invoice entering a batch run.
type Document struct {
	ID      string
	RawText string
}

// RunBatch audits documents independently on a bounded worker pool. Audits
// share no mutable state, so failures stay local to their own record.
// With ordered=false results arrive in completion order; ordered=true
// preserves input order.
func (w *Workflow) RunBatch(ctx context.Context, docs []Document, workers int, ordered bool) []*Record {
	if len(docs) == 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	type indexed struct {
		i   int
		rec *Record
	}

	jobs := make(chan int)
	results := make(chan indexed)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results <- indexed{i: i, rec: w.Run(ctx, docs[i].ID, docs[i].RawText)}
			}
		}()
	}

	go func() {
		for i := range docs {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	if ordered {
		out := make([]*Record, len(docs))
		for r := range results {
			out[r.i] = r.rec
		}
		return out
	}
	out := make([]*Record, 0, len(docs))
	for r := range results {
		out = append(out, r.rec)
	}
	return out
}
