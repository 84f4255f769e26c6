package validate

import (
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/variantlab/varcheck/internal/variant"
)

// Item holds a variant record queued for validation.
type Item struct {
	Seq    int
	Record *variant.Record
	Extra  any // caller-specific data carried through untouched
}

// Outcome holds the validation result for a single record. Err is nil
// for accepted records and a *Error for rejected ones.
type Outcome struct {
	Seq    int
	Record *variant.Record
	Err    error
	Extra  any
}

// ParallelCheck validates items using a pool of workers. Record checks
// are pure functions of their inputs, so records fan out with no locking
// and no ordering constraint between them. Results arrive on the
// returned channel in completion order; use OrderedCollect to consume
// them in sequence-number order. If workers is 0, runtime.NumCPU() is
// used.
func (v *Validator) ParallelCheck(items <-chan Item, workers int) <-chan Outcome {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make(chan Outcome, 2*workers)

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for item := range items {
				err := v.CheckRecord(item.Record)
				if err != nil {
					v.logger.Debug("record rejected",
						zap.String("variant", item.Record.String()),
						zap.String("kind", KindOf(err).String()),
						zap.Error(err))
				}
				results <- Outcome{
					Seq:    item.Seq,
					Record: item.Record,
					Err:    err,
					Extra:  item.Extra,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// OrderedCollect calls fn for each outcome in sequence-number order.
// Out-of-order outcomes are buffered in a pending map and emitted as
// soon as the next expected sequence number is available. Blocks until
// the results channel is closed.
func OrderedCollect(results <-chan Outcome, fn func(Outcome) error) error {
	pending := make(map[int]Outcome)
	nextSeq := 0

	for r := range results {
		pending[r.Seq] = r

		for {
			rr, ok := pending[nextSeq]
			if !ok {
				break
			}
			delete(pending, nextSeq)
			nextSeq++
			if err := fn(rr); err != nil {
				// Drain remaining results to unblock workers.
				for range results {
				}
				return err
			}
		}
	}

	return nil
}
