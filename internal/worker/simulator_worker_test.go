package worker

import (
	"testing"
	"time"

	"structura/internal/models"
	"structura/internal/repository"
	"structura/internal/service"
)

func TestSimulatorWorker_GeneratesThroughIngest(t *testing.T) {
	repo := repository.NewReadingRepository(50)
	svc := service.NewReadingService(repo, models.Thresholds{}, nil)

	scheduler := NewScheduler()
	scheduler.AddWorker(NewSimulatorWorker(svc, 10*time.Millisecond))
	scheduler.Start()

	deadline := time.Now().Add(2 * time.Second)
	for repo.Len() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("only %d readings generated before deadline", repo.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}

	scheduler.Stop()

	// Сгенерированные показания прошли обычный прием: id и timestamp на месте
	latest, ok := repo.Latest()
	if !ok {
		t.Fatal("store empty after simulator run")
	}
	if latest.ID == "" || latest.Timestamp == "" {
		t.Fatalf("id/timestamp not populated: %+v", latest)
	}
}

func TestSimulatorWorker_StopIsIdempotent(t *testing.T) {
	repo := repository.NewReadingRepository(50)
	svc := service.NewReadingService(repo, models.Thresholds{}, nil)

	w := NewSimulatorWorker(svc, time.Hour)
	go w.Start()

	time.Sleep(20 * time.Millisecond)
	w.Stop()
	w.Stop() // второй вызов не должен паниковать на закрытом канале
}
