package worker

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"structura/internal/models"
	"structura/internal/service"
)

// SimulatorWorker периодически генерирует правдоподобное показание и
// прогоняет его через обычный путь приема. Нужен только для демо-стенда,
// включается отдельным флагом конфигурации.
type SimulatorWorker struct {
	service  service.ReadingService
	interval time.Duration
	stopChan chan struct{}
	mu       sync.Mutex
	running  bool
}

func NewSimulatorWorker(service service.ReadingService, interval time.Duration) *SimulatorWorker {
	return &SimulatorWorker{
		service:  service,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (w *SimulatorWorker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	log.Printf("Simulator Worker started with interval %v", w.interval)

	// Первое показание сразу, чтобы дашборд не был пустым
	w.generateReading()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.generateReading()
		case <-w.stopChan:
			return
		}
	}
}

func (w *SimulatorWorker) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	w.running = false

	close(w.stopChan)
	log.Println("Simulator Worker stopped")
}

func (w *SimulatorWorker) generateReading() {
	input := models.ReadingInput{
		Strain:       randValue(200, 1100),
		Vibration:    randValue(50, 550),
		Displacement: randValue(0, 110),
		Acceleration: randValue(10, 220),
	}

	if _, err := w.service.Accept(input); err != nil {
		log.Printf("Simulator Worker error: %v", err)
	}
}

func randValue(min, max float64) *float64 {
	v := min + rand.Float64()*(max-min)
	return &v
}
