package repository

import (
	"sync"

	"structura/internal/models"
)

const (
	// DefaultCapacity — сколько последних показаний храним в памяти.
	DefaultCapacity = 50
	// DefaultRecentLimit — дефолт для Recent при некорректном limit.
	DefaultRecentLimit = 10
)

type ReadingRepository interface {
	Insert(reading models.Reading)
	Recent(limit int) []models.Reading
	Latest() (models.Reading, bool)
	All() []models.Reading
	Len() int
}

// readingRepository — ограниченный буфер в памяти. Индекс 0 — всегда
// самое свежее показание; при переполнении старые отбрасываются.
// Все операции под одним мьютексом: вставка и чтение не должны
// пересекаться (см. обрезку в Insert).
type readingRepository struct {
	mu       sync.Mutex
	readings []models.Reading
	capacity int
}

func NewReadingRepository(capacity int) ReadingRepository {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &readingRepository{
		readings: make([]models.Reading, 0, capacity+1),
		capacity: capacity,
	}
}

func (r *readingRepository) Insert(reading models.Reading) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Вставляем в начало, потом обрезаем до вместимости
	r.readings = append(r.readings, models.Reading{})
	copy(r.readings[1:], r.readings)
	r.readings[0] = reading

	if len(r.readings) > r.capacity {
		r.readings = r.readings[:r.capacity]
	}
}

func (r *readingRepository) Recent(limit int) []models.Reading {
	if limit < 1 {
		limit = DefaultRecentLimit
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if limit > len(r.readings) {
		limit = len(r.readings)
	}

	out := make([]models.Reading, limit)
	copy(out, r.readings[:limit])
	return out
}

func (r *readingRepository) Latest() (models.Reading, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.readings) == 0 {
		return models.Reading{}, false
	}
	return r.readings[0], true
}

func (r *readingRepository) All() []models.Reading {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Reading, len(r.readings))
	copy(out, r.readings)
	return out
}

func (r *readingRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.readings)
}
