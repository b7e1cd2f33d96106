package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"ridehail/internal/config"
)

func newSearchService(delay Delay) *LocationSearchService {
	return NewLocationSearchService(config.NewDefaultConfig().Latency, delay)
}

func TestSearchShortQueriesResolveEmpty(t *testing.T) {
	delayed := false
	service := newSearchService(func(time.Duration) { delayed = true })
	ctx := context.Background()

	for _, q := range []string{"", "a", "x"} {
		got := service.Search(ctx, q)
		if len(got) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", q, len(got))
		}
	}
	if delayed {
		t.Error("short queries must not incur simulated latency")
	}
}

func TestSearchDhanmondi(t *testing.T) {
	service := newSearchService(NoDelay)

	got := service.Search(context.Background(), "dhanmondi")
	if len(got) != 1 {
		t.Fatalf("Search(dhanmondi) returned %d results, want 1", len(got))
	}
	if !strings.Contains(strings.ToLower(got[0].Address), "dhanmondi") {
		t.Errorf("result address %q does not contain the query", got[0].Address)
	}
	if got[0].Latitude != 23.7461 || got[0].Longitude != 90.3742 {
		t.Errorf("unexpected coordinates: %v, %v", got[0].Latitude, got[0].Longitude)
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	service := newSearchService(NoDelay)
	ctx := context.Background()

	lower := service.Search(ctx, "gulshan")
	upper := service.Search(ctx, "GULSHAN")
	if len(lower) != 1 || len(upper) != 1 {
		t.Fatalf("case variants differ: %d vs %d", len(lower), len(upper))
	}
	if lower[0] != upper[0] {
		t.Error("case variants returned different entries")
	}
}

func TestSearchPreservesGazetteerOrder(t *testing.T) {
	service := newSearchService(NoDelay)

	// Every entry contains "Dhaka"; the result must be the whole gazetteer
	// in its original order.
	got := service.Search(context.Background(), "dhaka")
	if len(got) != 10 {
		t.Fatalf("Search(dhaka) returned %d results, want 10", len(got))
	}
	for i := range gazetteer {
		if got[i] != gazetteer[i] {
			t.Errorf("result %d = %q, want %q", i, got[i].Address, gazetteer[i].Address)
		}
	}
}

func TestSearchUnmatchedAndOddInput(t *testing.T) {
	service := newSearchService(NoDelay)
	ctx := context.Background()

	for _, q := range []string{"chittagong", "  ", "%%&*", "\x00\x01"} {
		if got := service.Search(ctx, q); len(got) != 0 {
			t.Errorf("Search(%q) returned %d results, want 0", q, len(got))
		}
	}
}

func TestSearchIsRestartable(t *testing.T) {
	service := newSearchService(NoDelay)
	ctx := context.Background()

	first := service.Search(ctx, "mirpur")
	second := service.Search(ctx, "mirpur")
	if len(first) != len(second) {
		t.Fatalf("repeated search differs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Error("repeated search returned different entries")
		}
	}
}
