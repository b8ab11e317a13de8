package processor

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hireflow/docscan/internal/entity"
)

// BatchOutcome is one batch entry. Review is the routing decision computed
// from the result's confidence figures; Err records pre-flight problems
// (missing document, unsupported type) that never reached the pipeline.
type BatchOutcome struct {
	Result *entity.OCRResult
	Review bool
	Err    error
}

// ProcessBatch fans the document ids out over a bounded worker pool and
// returns one outcome per id. A failing item never aborts the batch: stage
// errors surface as failed results, pre-flight errors as failed results
// with Err set, and a worker panic is captured the same way.
func (p *Processor) ProcessBatch(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]BatchOutcome {
	outcomes := make(map[uuid.UUID]BatchOutcome, len(ids))
	if len(ids) == 0 {
		return outcomes
	}

	workers := p.workers
	if workers > len(ids) {
		workers = len(ids)
	}

	jobs := make(chan uuid.UUID)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for id := range jobs {
				out := p.processBatchItem(ctx, workerID, id)
				mu.Lock()
				outcomes[id] = out
				mu.Unlock()
			}
		}(i + 1)
	}

	for _, id := range ids {
		jobs <- id
	}
	close(jobs)
	wg.Wait()

	p.logger.Info("processor.batch.done", "total", len(ids), "workers", workers)
	return outcomes
}

func (p *Processor) processBatchItem(ctx context.Context, workerID int, id uuid.UUID) (out BatchOutcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic processing document %s: %v", id, r)
			p.logger.Error("processor.batch.panic", "worker_id", workerID, "document_id", id, "panic", r)
			out = BatchOutcome{Result: entity.FailedResult(err.Error()), Review: true, Err: err}
		}
	}()

	itemCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	res, err := p.ProcessDocument(itemCtx, id)
	if err != nil {
		p.logger.Error("processor.batch.item_failed", "worker_id", workerID, "document_id", id, "error", err)
		return BatchOutcome{Result: entity.FailedResult(err.Error()), Review: true, Err: err}
	}

	review := RequiresManualReview(res)
	if res.RequiresReview != review {
		res.RequiresReview = review
		// Best effort: the outcome already carries the flag even if the
		// store update fails.
		if saveErr := p.store.SaveResult(itemCtx, id, res); saveErr != nil {
			p.logger.Warn("processor.batch.review_flag_not_saved", "document_id", id, "error", saveErr)
		}
	}
	p.logger.Info("processor.batch.item_done",
		"worker_id", workerID,
		"document_id", id,
		"status", res.ProcessingStatus,
		"confidence", res.Confidence,
		"review", review,
	)
	return BatchOutcome{Result: res, Review: review}
}
