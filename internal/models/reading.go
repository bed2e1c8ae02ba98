package models

// Reading — одно показание датчиков конструкции.
// Timestamp и ID назначаются сервисом при приеме, клиент их не присылает.
type Reading struct {
	ID           string  `json:"id"`
	Timestamp    string  `json:"timestamp"`
	Strain       float64 `json:"strain"`
	Vibration    float64 `json:"vibration"`
	Displacement float64 `json:"displacement"`
	Acceleration float64 `json:"acceleration"`
}

// ReadingInput — тело POST-запроса. Указатели, чтобы отличать
// отсутствующее/null поле от валидного нуля.
type ReadingInput struct {
	Strain       *float64 `json:"strain" validate:"required"`
	Vibration    *float64 `json:"vibration" validate:"required"`
	Displacement *float64 `json:"displacement" validate:"required"`
	Acceleration *float64 `json:"acceleration" validate:"required"`
}

// Thresholds — статические пороги тревоги по каждому датчику.
// Фронтенд подсвечивает карточку, когда значение выше порога.
type Thresholds struct {
	Strain       float64 `json:"strain"`
	Vibration    float64 `json:"vibration"`
	Displacement float64 `json:"displacement"`
	Acceleration float64 `json:"acceleration"`
}
