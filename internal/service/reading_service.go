package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"structura/internal/models"
	"structura/internal/repository"
	"structura/internal/utils"

	"github.com/go-playground/validator/v10"
)

// Формат меток времени, по нему же фронтенд ключует графики.
const timestampLayout = "2006-01-02 15:04:05"

type ReadingService interface {
	Accept(input models.ReadingInput) (models.Reading, error)
	Recent(limit int) []models.Reading
	Latest() (models.Reading, error)
	Export(format string) ([]byte, error)
	Stats() (*ReadingStats, error)
	Thresholds() models.Thresholds
}

type SensorStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

type ReadingStats struct {
	Count        int         `json:"count"`
	Strain       SensorStats `json:"strain"`
	Vibration    SensorStats `json:"vibration"`
	Displacement SensorStats `json:"displacement"`
	Acceleration SensorStats `json:"acceleration"`
}

type readingService struct {
	repo       repository.ReadingRepository
	thresholds models.Thresholds
	validate   *validator.Validate
	now        func() time.Time
}

// NewReadingService собирает сервис приема/выдачи показаний.
// now — инжектируемые часы (nil = time.Now), от них считаются
// и timestamp, и id показания.
func NewReadingService(repo repository.ReadingRepository, thresholds models.Thresholds, now func() time.Time) ReadingService {
	if now == nil {
		now = time.Now
	}

	validate := validator.New()
	// В ошибках валидации показываем имена полей как в JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &readingService{
		repo:       repo,
		thresholds: thresholds,
		validate:   validate,
		now:        now,
	}
}

func (s *readingService) Accept(input models.ReadingInput) (models.Reading, error) {
	if err := s.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return models.Reading{}, &ValidationError{Field: verrs[0].Field()}
		}
		return models.Reading{}, &ValidationError{Field: "payload"}
	}

	now := s.now()
	reading := models.Reading{
		ID:           strconv.FormatInt(now.UnixNano(), 10),
		Timestamp:    now.Format(timestampLayout),
		Strain:       *input.Strain,
		Vibration:    *input.Vibration,
		Displacement: *input.Displacement,
		Acceleration: *input.Acceleration,
	}

	s.repo.Insert(reading)
	return reading, nil
}

func (s *readingService) Recent(limit int) []models.Reading {
	return s.repo.Recent(limit)
}

func (s *readingService) Latest() (models.Reading, error) {
	reading, ok := s.repo.Latest()
	if !ok {
		return models.Reading{}, &NotFoundError{Message: "no sensor data available"}
	}
	return reading, nil
}

func (s *readingService) Export(format string) ([]byte, error) {
	readings := s.repo.All()

	switch format {
	case "excel", "xlsx":
		data, err := utils.ReadingsToExcel(readings, s.thresholds)
		if err != nil {
			return nil, &SerializationError{Err: err}
		}
		return data, nil

	case "csv":
		data, err := readingsToCSV(readings)
		if err != nil {
			return nil, &SerializationError{Err: err}
		}
		return data, nil

	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func readingsToCSV(readings []models.Reading) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Timestamp", "Strain", "Vibration", "Displacement", "Acceleration", "ID"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	for _, r := range readings {
		row := []string{
			r.Timestamp,
			strconv.FormatFloat(r.Strain, 'f', -1, 64),
			strconv.FormatFloat(r.Vibration, 'f', -1, 64),
			strconv.FormatFloat(r.Displacement, 'f', -1, 64),
			strconv.FormatFloat(r.Acceleration, 'f', -1, 64),
			r.ID,
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *readingService) Stats() (*ReadingStats, error) {
	readings := s.repo.All()
	if len(readings) == 0 {
		return nil, &NotFoundError{Message: "no sensor data available"}
	}

	stats := &ReadingStats{Count: len(readings)}
	stats.Strain = sensorStats(readings, func(r models.Reading) float64 { return r.Strain })
	stats.Vibration = sensorStats(readings, func(r models.Reading) float64 { return r.Vibration })
	stats.Displacement = sensorStats(readings, func(r models.Reading) float64 { return r.Displacement })
	stats.Acceleration = sensorStats(readings, func(r models.Reading) float64 { return r.Acceleration })

	return stats, nil
}

func sensorStats(readings []models.Reading, value func(models.Reading) float64) SensorStats {
	min := value(readings[0])
	max := min
	sum := 0.0

	for _, r := range readings {
		v := value(r)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}

	return SensorStats{
		Min: min,
		Max: max,
		Avg: sum / float64(len(readings)),
	}
}

func (s *readingService) Thresholds() models.Thresholds {
	return s.thresholds
}
