package classify

import (
	"log/slog"
	"sync"

	"github.com/bouwdoc/viewtype/models"
	"github.com/bouwdoc/viewtype/pkg/classify"
)

// Job defines one page classification task for a worker to perform.
type Job struct {
	Index int
	Page  models.PageInput
}

// Result holds the outcome of a processed job.
type Result struct {
	Index int
	Entry models.PageEntry
}

// worker is a goroutine that processes jobs from the jobs channel and
// sends results to the results channel. Pages are independent, so
// workers need no coordination beyond the channels.
func worker(id int, engine *classify.Engine, logger *slog.Logger, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		logger.Debug("worker classifying page", "worker", id, "page", job.Page.PageNumber)

		result, err := engine.ClassifyPage(job.Page)
		if err != nil {
			logger.Error("page classification failed", "worker", id, "page", job.Page.PageNumber, "error", err)
			results <- Result{
				Index: job.Index,
				Entry: models.PageEntry{PageNumber: job.Page.PageNumber, Error: err.Error()},
			}
			continue
		}

		results <- Result{Index: job.Index, Entry: models.EntryFromResult(result)}
	}
}

// RunPool classifies pages with workerCount concurrent workers and
// returns the entries in input order.
func RunPool(engine *classify.Engine, logger *slog.Logger, pages []models.PageInput, workerCount int) []models.PageEntry {
	if workerCount < 1 {
		workerCount = 4
	}
	if workerCount > len(pages) && len(pages) > 0 {
		workerCount = len(pages)
	}

	var wg sync.WaitGroup
	jobs := make(chan Job, len(pages))
	results := make(chan Result, len(pages))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, engine, logger, &wg, jobs, results)
	}

	for i, page := range pages {
		jobs <- Job{Index: i, Page: page}
	}
	close(jobs)

	wg.Wait()
	close(results)

	entries := make([]models.PageEntry, len(pages))
	for result := range results {
		entries[result.Index] = result.Entry
	}
	return entries
}
