package utils

import (
	"fmt"

	"structura/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Readings"

// ReadingsToExcel собирает Excel-документ с показаниями (новые сверху)
// и возвращает его байты, файл на диск не пишется.
func ReadingsToExcel(readings []models.Reading, thresholds models.Thresholds) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}

	// Заголовки — порядок колонок фиксирован
	headers := []string{"Timestamp", "Strain", "Vibration", "Displacement", "Acceleration", "ID"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
	}

	// Жирная строка заголовка
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "F1", headerStyle); err != nil {
		return nil, err
	}

	// Данные
	for rowIdx, r := range readings {
		rowNum := rowIdx + 2 // заголовок в первой строке

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), r.Timestamp)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r.Strain)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), r.Vibration)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), r.Displacement)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), r.Acceleration)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), r.ID)
	}

	// Ширина колонок
	for i := 1; i <= len(headers); i++ {
		colName, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	// Подсветка значений выше порога тревоги
	if len(readings) > 0 {
		lastRow := len(readings) + 1
		columnThresholds := map[string]float64{
			"B": thresholds.Strain,
			"C": thresholds.Vibration,
			"D": thresholds.Displacement,
			"E": thresholds.Acceleration,
		}

		for col, threshold := range columnThresholds {
			rule := []excelize.ConditionalFormatOptions{
				{
					Type:     "cell",
					Criteria: ">",
					Value:    fmt.Sprintf("%g", threshold),
					Format:   alertFormatStyle(f),
				},
			}
			area := fmt.Sprintf("%s2:%s%d", col, col, lastRow)
			if err := f.SetConditionalFormat(sheetName, area, rule); err != nil {
				return nil, err
			}
		}
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// alertFormatStyle — красная заливка для ячеек выше порога
func alertFormatStyle(f *excelize.File) *int {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#FFCCCC"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil
	}
	return &style
}
