package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/placera/placera/pkg/catalog"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("closing store: %v", err)
		}
	})
	return store
}

func seedSubjects(t *testing.T, store *Store, subjects []catalog.Subject) {
	t.Helper()

	if err := store.ImportSubjects(context.Background(), subjects); err != nil {
		t.Fatalf("importing subjects: %v", err)
	}
}

func testCatalog() []catalog.Subject {
	return []catalog.Subject{
		{Name: "Joe's Diner", Type: "diner", City: "denver", AverageRating: 4.4, ReviewCount: 312},
		{Name: "Alpine Steakhouse", Type: "steakhouse", City: "denver", AverageRating: 4.7, ReviewCount: 892},
		{Name: "Mile High Pies", Type: "pizzeria", City: "denver", AverageRating: 4.2, ReviewCount: 230},
		{Name: "Harbor Lights Bistro", Type: "bistro", City: "boston", AverageRating: 4.5, ReviewCount: 510},
		{Name: "Beacon Hill Bakery", Type: "bakery", City: "boston", AverageRating: 4.8, ReviewCount: 634},
		{Name: "Pike Street Tea House", Type: "tea house", City: "seattle", AverageRating: 4.7, ReviewCount: 198},
	}
}

func TestFilteredSearchNoFilter(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	subjects, total, err := store.FilteredSearch(context.Background(), catalog.Filter{}, 10, 0)
	if err != nil {
		t.Fatalf("FilteredSearch failed: %v", err)
	}
	if total != 6 || len(subjects) != 6 {
		t.Errorf("total/len = %d/%d, want 6/6", total, len(subjects))
	}
	// Ordered by rating desc, ties broken by review count desc.
	if subjects[0].Name != "Beacon Hill Bakery" {
		t.Errorf("first subject = %q, want %q", subjects[0].Name, "Beacon Hill Bakery")
	}
	if subjects[1].Name != "Alpine Steakhouse" {
		t.Errorf("second subject = %q, want %q", subjects[1].Name, "Alpine Steakhouse")
	}
}

func TestFilteredSearchByCity(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	subjects, total, err := store.FilteredSearch(context.Background(), catalog.Filter{City: "Denver"}, 10, 0)
	if err != nil {
		t.Fatalf("FilteredSearch failed: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3 (city match is case-insensitive)", total)
	}
	for _, s := range subjects {
		if s.City != "denver" {
			t.Errorf("subject %q has city %q, want denver", s.Name, s.City)
		}
	}
}

func TestFilteredSearchByTypes(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	filter := catalog.Filter{Types: []string{"diner", "bistro", "steakhouse", "pizzeria"}}
	_, total, err := store.FilteredSearch(context.Background(), filter, 10, 0)
	if err != nil {
		t.Fatalf("FilteredSearch failed: %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
}

func TestFilteredSearchConjunction(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	filter := catalog.Filter{
		City:       "denver",
		Types:      []string{"diner", "steakhouse"},
		RatingMin:  4.5,
		ReviewsMin: 100,
	}
	subjects, total, err := store.FilteredSearch(context.Background(), filter, 10, 0)
	if err != nil {
		t.Fatalf("FilteredSearch failed: %v", err)
	}
	if total != 1 || len(subjects) != 1 {
		t.Fatalf("total/len = %d/%d, want 1/1", total, len(subjects))
	}
	if subjects[0].Name != "Alpine Steakhouse" {
		t.Errorf("subject = %q, want %q", subjects[0].Name, "Alpine Steakhouse")
	}
}

func TestFilteredSearchByName(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	subjects, total, err := store.FilteredSearch(context.Background(), catalog.Filter{NameQuery: "pies"}, 10, 0)
	if err != nil {
		t.Fatalf("FilteredSearch failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if subjects[0].Name != "Mile High Pies" {
		t.Errorf("subject = %q, want %q", subjects[0].Name, "Mile High Pies")
	}
}

func TestFilteredSearchNameWildcardsAreLiteral(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, []catalog.Subject{
		{Name: "100% Juice", Type: "cafe", City: "denver"},
		{Name: "Fruit Juice Stand", Type: "cafe", City: "denver"},
	})

	_, total, err := store.FilteredSearch(context.Background(), catalog.Filter{NameQuery: "100%"}, 10, 0)
	if err != nil {
		t.Fatalf("FilteredSearch failed: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1 (percent must not act as a wildcard)", total)
	}
}

func TestFilteredSearchPagination(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	first, total, err := store.FilteredSearch(context.Background(), catalog.Filter{}, 4, 0)
	if err != nil {
		t.Fatalf("FilteredSearch failed: %v", err)
	}
	if total != 6 {
		t.Errorf("total = %d, want 6 regardless of page size", total)
	}
	if len(first) != 4 {
		t.Errorf("first page len = %d, want 4", len(first))
	}

	second, total, err := store.FilteredSearch(context.Background(), catalog.Filter{}, 4, 4)
	if err != nil {
		t.Fatalf("FilteredSearch failed: %v", err)
	}
	if total != 6 {
		t.Errorf("total = %d, want 6 on the second page too", total)
	}
	if len(second) != 2 {
		t.Errorf("second page len = %d, want 2", len(second))
	}
}

func TestFilteredSearchNoResults(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	subjects, total, err := store.FilteredSearch(context.Background(), catalog.Filter{City: "gotham"}, 10, 0)
	if err != nil {
		t.Fatalf("FilteredSearch failed: %v", err)
	}
	if total != 0 || len(subjects) != 0 {
		t.Errorf("total/len = %d/%d, want 0/0", total, len(subjects))
	}
}

func TestDistinctCities(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	cities, err := store.DistinctCities(context.Background())
	if err != nil {
		t.Fatalf("DistinctCities failed: %v", err)
	}

	want := []string{"boston", "denver", "seattle"}
	if len(cities) != len(want) {
		t.Fatalf("cities = %v, want %v", cities, want)
	}
	for i := range want {
		if cities[i] != want[i] {
			t.Errorf("cities[%d] = %q, want %q", i, cities[i], want[i])
		}
	}
}

func TestAllSubjects(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	all, err := store.AllSubjects(context.Background(), "")
	if err != nil {
		t.Fatalf("AllSubjects failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("len = %d, want 6", len(all))
	}
	// IDs are assigned in insert order and results come back id ascending.
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Errorf("subjects not ordered by id: %d after %d", all[i].ID, all[i-1].ID)
		}
	}

	boston, err := store.AllSubjects(context.Background(), "boston")
	if err != nil {
		t.Fatalf("AllSubjects failed: %v", err)
	}
	if len(boston) != 2 {
		t.Errorf("boston len = %d, want 2", len(boston))
	}
}

func TestImportSubjectsEmpty(t *testing.T) {
	store := testStore(t)

	if err := store.ImportSubjects(context.Background(), nil); err != nil {
		t.Fatalf("ImportSubjects with no subjects failed: %v", err)
	}
}

func TestImportSubjectsNullableFields(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, []catalog.Subject{
		{Name: "Nameless Corner", Type: "cafe"},
	})

	all, err := store.AllSubjects(context.Background(), "")
	if err != nil {
		t.Fatalf("AllSubjects failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1", len(all))
	}
	if all[0].Location != "" || all[0].City != "" {
		t.Errorf("location/city = %q/%q, want empty strings for NULL columns",
			all[0].Location, all[0].City)
	}
}

func TestStats(t *testing.T) {
	store := testStore(t)
	seedSubjects(t, store, testCatalog())

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}

	if got := stats["total_subjects"]; got != 6 {
		t.Errorf("total_subjects = %v, want 6", got)
	}
	if got := stats["total_cities"]; got != 3 {
		t.Errorf("total_cities = %v, want 3", got)
	}
	if got := stats["total_types"]; got != 6 {
		t.Errorf("total_types = %v, want 6", got)
	}
}

func TestIntegrityCheck(t *testing.T) {
	store := testStore(t)

	if err := store.IntegrityCheck(); err != nil {
		t.Errorf("IntegrityCheck on a fresh database failed: %v", err)
	}
}
