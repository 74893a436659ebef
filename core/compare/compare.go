// Package compare computes many listings side by side and ranks them by
// effective monthly cost.
package compare

import (
	"context"
	"sync"

	"rent-cost/core/catalog"
	"rent-cost/core/cost"
	"rent-cost/core/determinism"
	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

// Entry is one listing in a comparison
type Entry struct {
	// Rank is 1 for the cheapest listing; 0 when the listing failed
	Rank int `json:"rank" yaml:"rank"`

	// Estimate holds the computed figures; nil when Err is set
	Estimate *cost.Estimate `json:"estimate,omitempty" yaml:"estimate,omitempty"`

	// DeltaFromCheapest is the effective monthly cost above the rank 1 listing
	DeltaFromCheapest int64 `json:"delta_from_cheapest" yaml:"delta_from_cheapest"`

	// Issues are advisory catalog findings
	Issues []catalog.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`

	// Name identifies the listing even when it failed
	Name string `json:"name" yaml:"name"`

	// Err is set when the listing could not be computed
	Err error `json:"-" yaml:"-"`
}

// Result is a ranked comparison. Successful entries come first in rank order,
// followed by failures in input order.
type Result struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// Succeeded returns the ranked entries
func (r *Result) Succeeded() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Err == nil {
			out = append(out, e)
		}
	}
	return out
}

// Failed returns the entries that could not be computed
func (r *Result) Failed() []Entry {
	var out []Entry
	for _, e := range r.Entries {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}

// Err returns the first failure, if any
func (r *Result) Err() error {
	for _, e := range r.Entries {
		if e.Err != nil {
			return e.Err
		}
	}
	return nil
}

// Comparer runs listings through an engine with a bounded number of workers
type Comparer struct {
	engine     *cost.Engine
	catalog    *catalog.Catalog
	maxWorkers int
}

// New creates a comparer. maxWorkers below 1 is treated as 1.
func New(engine *cost.Engine, c *catalog.Catalog, maxWorkers int) *Comparer {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if c == nil {
		c = catalog.Default()
	}
	return &Comparer{engine: engine, catalog: c, maxWorkers: maxWorkers}
}

// Run computes every listing and ranks the results. It only returns an error
// when ctx is cancelled; per-listing failures are recorded on their entries.
func (c *Comparer) Run(ctx context.Context, listings []types.Listing) (*Result, error) {
	entries := make([]Entry, len(listings))

	sem := make(chan struct{}, c.maxWorkers)
	var wg sync.WaitGroup

	for i := range listings {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, errors.Canceled("comparison cancelled", err)
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return nil, errors.Canceled("comparison cancelled", ctx.Err())
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			entries[i] = c.compute(listings[i])
		}(i)
	}
	wg.Wait()

	return &Result{Entries: rank(entries)}, nil
}

func (c *Comparer) compute(listing types.Listing) Entry {
	entry := Entry{Name: listing.Name}
	est, err := c.engine.Estimate(listing)
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Estimate = est
	entry.Issues = c.catalog.Check(listing.Fees)
	return entry
}

// rank orders successful entries by effective monthly cost, then total cost.
// Equal listings keep their input order.
func rank(entries []Entry) []Entry {
	ok := make([]Entry, 0, len(entries))
	var failed []Entry
	for _, e := range entries {
		if e.Err != nil {
			failed = append(failed, e)
			continue
		}
		ok = append(ok, e)
	}

	determinism.SortSlice(ok, func(a, b Entry) bool {
		ra, rb := a.Estimate.Result, b.Estimate.Result
		if ra.AverageMonthlyCost != rb.AverageMonthlyCost {
			return ra.AverageMonthlyCost < rb.AverageMonthlyCost
		}
		return ra.TotalCost < rb.TotalCost
	})

	for i := range ok {
		ok[i].Rank = i + 1
		ok[i].DeltaFromCheapest = ok[i].Estimate.Result.AverageMonthlyCost - ok[0].Estimate.Result.AverageMonthlyCost
	}
	return append(ok, failed...)
}
