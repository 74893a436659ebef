package compare

import (
	"context"
	"fmt"
	"testing"

	"rent-cost/core/catalog"
	"rent-cost/core/cost"
	"rent-cost/core/types"
	"rent-cost/internal/errors"
)

func listing(name string, rent, keyMoney int64) types.Listing {
	fees := catalog.Default().Defaults()
	fees = fees.With(types.SlotRent, types.Monthly(rent))
	fees = fees.With(types.SlotKeyMoney, types.OneShot(keyMoney))
	return types.Listing{Name: name, Fees: fees}
}

func TestRunRanksByEffectiveMonthlyCost(t *testing.T) {
	listings := []types.Listing{
		listing("pricey", 70000, 70000),
		listing("cheap rent, high key money", 60000, 240000),
		listing("cheapest", 62000, 0),
	}

	result, err := New(cost.NewEngine(false), nil, 2).Run(context.Background(), listings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(result.Entries))
	}

	// 60000 + 240000/24 = 70000 per month of rent-related cost vs 62000 with no key money
	expectedOrder := []string{"cheapest", "cheap rent, high key money", "pricey"}
	for i, name := range expectedOrder {
		e := result.Entries[i]
		if e.Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, e.Name)
		}
		if e.Rank != i+1 {
			t.Errorf("%s: expected rank %d, got %d", name, i+1, e.Rank)
		}
	}
	if result.Entries[0].DeltaFromCheapest != 0 {
		t.Errorf("cheapest has non-zero delta %d", result.Entries[0].DeltaFromCheapest)
	}
	if result.Entries[2].DeltaFromCheapest <= 0 {
		t.Errorf("expected positive delta, got %d", result.Entries[2].DeltaFromCheapest)
	}
}

func TestRunKeepsFailuresLast(t *testing.T) {
	broken := listing("broken", 50000, 0)
	broken.Fees = broken.Fees.With(types.SlotLeasePeriod, types.Months(0))

	listings := []types.Listing{broken, listing("fine", 50000, 0)}
	result, err := New(cost.NewEngine(true), nil, 4).Run(context.Background(), listings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(result.Succeeded()); got != 1 {
		t.Fatalf("expected 1 success, got %d", got)
	}
	failed := result.Failed()
	if len(failed) != 1 || failed[0].Name != "broken" || failed[0].Rank != 0 {
		t.Fatalf("unexpected failures %+v", failed)
	}
	if result.Entries[1].Name != "broken" {
		t.Errorf("failure not sorted last")
	}
	if !errors.IsType(result.Err(), errors.TypeInvalidDuration) {
		t.Errorf("expected INVALID_DURATION, got %v", result.Err())
	}
}

func TestRunPreservesInputOrderOnTies(t *testing.T) {
	var listings []types.Listing
	for i := 0; i < 20; i++ {
		listings = append(listings, listing(fmt.Sprintf("same-%02d", i), 50000, 0))
	}

	result, err := New(cost.NewEngine(false), nil, 3).Run(context.Background(), listings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, e := range result.Entries {
		if e.Name != listings[i].Name {
			t.Fatalf("position %d: expected %s, got %s", i, listings[i].Name, e.Name)
		}
	}
}

func TestRunRecordsIssues(t *testing.T) {
	odd := listing("odd", 50000, 0)
	odd.Fees = odd.Fees.With(types.SlotRent, types.OneShot(1200000))

	result, err := New(cost.NewEngine(false), nil, 1).Run(context.Background(), []types.Listing{odd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries[0].Issues) != 1 {
		t.Errorf("expected one issue, got %v", result.Entries[0].Issues)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(cost.NewEngine(false), nil, 1).Run(ctx, []types.Listing{listing("a", 1, 0), listing("b", 1, 0)})
	if !errors.IsType(err, errors.TypeCanceled) {
		t.Fatalf("expected CANCELED, got %v", err)
	}
}

func TestRunEmpty(t *testing.T) {
	result, err := New(cost.NewEngine(false), nil, 0).Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Entries) != 0 || result.Err() != nil {
		t.Errorf("expected empty result, got %+v", result)
	}
}
