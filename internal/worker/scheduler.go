package worker

import (
	"log"
	"sync"
	"time"
)

// Грейс-период на остановку фоновых воркеров
const stopGrace = 5 * time.Second

type Worker interface {
	Start()
	Stop()
}

// Scheduler владеет жизненным циклом фоновых воркеров:
// запускает каждый в своей горутине и останавливает все разом.
type Scheduler struct {
	mu      sync.Mutex
	workers []Worker
	wg      sync.WaitGroup
	started bool
	stopped bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) AddWorker(worker Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		log.Println("Scheduler already started, worker ignored")
		return
	}
	s.workers = append(s.workers, worker)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	log.Printf("Starting scheduler with %d workers", len(s.workers))

	for _, worker := range s.workers {
		s.wg.Add(1)
		go func(w Worker) {
			defer s.wg.Done()
			w.Start()
		}(worker)
	}
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	workers := s.workers
	s.mu.Unlock()

	for _, worker := range workers {
		worker.Stop()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("Scheduler stopped gracefully")
	case <-time.After(stopGrace):
		log.Println("Scheduler stop timed out")
	}
}
