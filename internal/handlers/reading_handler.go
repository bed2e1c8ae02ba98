package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"structura/internal/models"
	"structura/internal/service"

	"github.com/gin-gonic/gin"
)

type ReadingHandler struct {
	service service.ReadingService
}

func NewReadingHandler(service service.ReadingService) *ReadingHandler {
	return &ReadingHandler{service: service}
}

func (h *ReadingHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/sensor-data", h.CreateReading)
	r.GET("/sensor-data", h.GetReadings)
	r.GET("/sensor-data/latest", h.GetLatestReading)
	r.GET("/sensor-data/download", h.DownloadReadings)
	r.GET("/sensor-data/stats", h.GetStats)
	r.GET("/sensor-data/thresholds", h.GetThresholds)
}

// CreateReading принимает новое показание датчиков
func (h *ReadingHandler) CreateReading(c *gin.Context) {
	var input models.ReadingInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request body: " + err.Error(),
		})
		return
	}

	reading, err := h.service.Accept(input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": verr.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to save sensor data",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "sensor data saved successfully",
		"latestData": reading,
	})
}

// GetReadings отдает последние показания, новые первыми
func (h *ReadingHandler) GetReadings(c *gin.Context) {
	// Некорректный limit схлопывается в дефолт (10)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	readings := h.service.Recent(limit)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    readings,
	})
}

func (h *ReadingHandler) GetLatestReading(c *gin.Context) {
	reading, err := h.service.Latest()
	if err != nil {
		var nferr *service.NotFoundError
		if errors.As(err, &nferr) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": nferr.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to get latest reading",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    reading,
	})
}

// DownloadReadings экспортирует всё окно показаний одним документом
func (h *ReadingHandler) DownloadReadings(c *gin.Context) {
	format := c.DefaultQuery("format", "xlsx")

	data, err := h.service.Export(format)
	if err != nil {
		var serr *service.SerializationError
		if errors.As(err, &serr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "failed to build export document",
			})
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "unsupported format, use 'xlsx' or 'csv'",
		})
		return
	}

	var contentType, filename string
	switch format {
	case "csv":
		contentType = "text/csv"
		filename = "sensor_data.csv"
	default:
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename = "sensor_data.xlsx"
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, data)
}

func (h *ReadingHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats()
	if err != nil {
		var nferr *service.NotFoundError
		if errors.As(err, &nferr) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": nferr.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to compute stats",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// GetThresholds отдает статические пороги тревоги для карточек фронтенда
func (h *ReadingHandler) GetThresholds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.service.Thresholds(),
	})
}
