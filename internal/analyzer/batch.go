package analyzer

import (
	"context"
	"sort"
	"sync"
)

// defaultWorkers bounds concurrent pipeline runs in a batch.
const defaultWorkers = 4

// AnalyzeBatch runs the full pipeline for each URL concurrently and
// returns the completed analyses ranked by overall rating, best first.
// Individual failures (cancellation aside, only persistence can fail)
// are logged; the analysis still ranks. Ranking happens only after
// every run completes.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, urls []string, workers int) []JobRanking {
	if workers <= 0 {
		workers = defaultWorkers
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []JobRanking
	)
	sem := make(chan struct{}, workers)

	for i, url := range urls {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(rank int, url string) {
			defer wg.Done()
			defer func() { <-sem }()

			analysis, err := a.Analyze(ctx, url)
			if err != nil && analysis.JobID == "" {
				// Cancelled before producing a result.
				return
			}

			mu.Lock()
			results = append(results, JobRanking{Position: rank, Analysis: analysis})
			mu.Unlock()
		}(i, url)
	}

	wg.Wait()

	// Rank by overall rating descending; input order breaks ties so
	// repeated batches are stable.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Analysis.OverallRating != results[j].Analysis.OverallRating {
			return results[i].Analysis.OverallRating > results[j].Analysis.OverallRating
		}
		return results[i].Position < results[j].Position
	})
	for i := range results {
		results[i].Position = i + 1
	}

	return results
}
