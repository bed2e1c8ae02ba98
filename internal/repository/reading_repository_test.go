package repository

import (
	"strconv"
	"sync"
	"testing"

	"structura/internal/models"
)

func mkReading(i int) models.Reading {
	return models.Reading{
		ID:           strconv.Itoa(i),
		Timestamp:    "2026-01-02 15:04:05",
		Strain:       float64(i),
		Vibration:    float64(i) * 2,
		Displacement: float64(i) * 3,
		Acceleration: float64(i) * 4,
	}
}

func TestInsert_NewestFirst(t *testing.T) {
	repo := NewReadingRepository(50)

	for i := 1; i <= 3; i++ {
		repo.Insert(mkReading(i))
	}

	all := repo.All()
	if len(all) != 3 {
		t.Fatalf("len=%d want 3", len(all))
	}
	for i, wantID := range []string{"3", "2", "1"} {
		if all[i].ID != wantID {
			t.Fatalf("all[%d].ID=%q want %q", i, all[i].ID, wantID)
		}
	}
}

func TestInsert_EvictsOldestAtCapacity(t *testing.T) {
	repo := NewReadingRepository(50)

	for i := 1; i <= 51; i++ {
		repo.Insert(mkReading(i))
	}

	all := repo.All()
	if len(all) != 50 {
		t.Fatalf("len=%d want 50", len(all))
	}
	if all[0].ID != "51" {
		t.Fatalf("newest ID=%q want 51", all[0].ID)
	}
	if all[49].ID != "2" {
		t.Fatalf("oldest retained ID=%q want 2 (reading 1 must be evicted)", all[49].ID)
	}
	// Остальные 49 на месте, в обратном порядке вставки
	for i, r := range all {
		want := strconv.Itoa(51 - i)
		if r.ID != want {
			t.Fatalf("all[%d].ID=%q want %q", i, r.ID, want)
		}
	}
}

func TestRecent_PrefixOfAll(t *testing.T) {
	repo := NewReadingRepository(50)
	for i := 1; i <= 20; i++ {
		repo.Insert(mkReading(i))
	}

	recent := repo.Recent(5)
	if len(recent) != 5 {
		t.Fatalf("len=%d want 5", len(recent))
	}

	all := repo.All()
	for i := range recent {
		if recent[i].ID != all[i].ID {
			t.Fatalf("recent[%d]=%q differs from all[%d]=%q", i, recent[i].ID, i, all[i].ID)
		}
	}
}

func TestRecent_LimitAboveSizeReturnsAll(t *testing.T) {
	repo := NewReadingRepository(50)
	for i := 1; i <= 7; i++ {
		repo.Insert(mkReading(i))
	}

	if got := len(repo.Recent(100)); got != 7 {
		t.Fatalf("len=%d want 7", got)
	}
}

func TestRecent_InvalidLimitFallsBackToDefault(t *testing.T) {
	repo := NewReadingRepository(50)
	for i := 1; i <= 20; i++ {
		repo.Insert(mkReading(i))
	}

	for _, limit := range []int{0, -3} {
		if got := len(repo.Recent(limit)); got != DefaultRecentLimit {
			t.Fatalf("Recent(%d): len=%d want %d", limit, got, DefaultRecentLimit)
		}
	}
}

func TestLatest(t *testing.T) {
	repo := NewReadingRepository(50)

	if _, ok := repo.Latest(); ok {
		t.Fatal("Latest on empty store must report no data")
	}

	repo.Insert(mkReading(1))
	latest, ok := repo.Latest()
	if !ok || latest.ID != "1" {
		t.Fatalf("latest=%+v ok=%v want reading 1", latest, ok)
	}

	repo.Insert(mkReading(2))
	latest, _ = repo.Latest()
	if latest.ID != "2" {
		t.Fatalf("latest.ID=%q want 2", latest.ID)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	repo := NewReadingRepository(50)
	repo.Insert(mkReading(1))

	all := repo.All()
	all[0].ID = "mutated"

	fresh := repo.All()
	if fresh[0].ID != "1" {
		t.Fatalf("store aliased its internal slice: ID=%q", fresh[0].ID)
	}
}

func TestInsert_ConcurrentKeepsBound(t *testing.T) {
	repo := NewReadingRepository(50)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Insert(mkReading(i))
		}(i)
	}
	wg.Wait()

	if got := repo.Len(); got != 50 {
		t.Fatalf("len=%d want 50", got)
	}
}
