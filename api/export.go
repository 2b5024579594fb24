package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"chauffeur/database"
	"chauffeur/middleware"
	"chauffeur/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams ride exports.
type ExportHandler struct{}

// NewExportHandler creates the export handler.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportWindow parses and validates the export date range.
func exportWindow(c *gin.Context) (from, to string, ok bool) {
	from = c.Query("date_from")
	to = c.Query("date_to")
	for _, d := range []string{from, to} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			BadRequest(c, "Ongeldige datum, verwacht YYYY-MM-DD")
			return "", "", false
		}
	}
	if from != "" && to != "" && from > to {
		BadRequest(c, "date_from mag niet na date_to liggen")
		return "", "", false
	}
	return from, to, true
}

// exportRides loads the caller's rides in the window, newest first.
func exportRides(userID uint, from, to string) ([]models.Ride, error) {
	query := database.DB.Where("user_id = ?", userID)
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}
	var rides []models.Ride
	err := query.Order("date DESC").Find(&rides).Error
	return rides, err
}

// ExportCSV exports the caller's rides as a CSV file.
// @Summary Export rides as CSV
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param date_from query string false "inclusive lower date bound (YYYY-MM-DD)"
// @Param date_to query string false "inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} Response "invalid date range"
// @Failure 401 {object} Response "not authenticated"
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	from, to, ok := exportWindow(c)
	if !ok {
		return
	}

	rides, err := exportRides(userID, from, to)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Ritten laden mislukt"))
		return
	}

	buf := new(bytes.Buffer)
	// BOM keeps Excel from mangling accented characters.
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{
		"Datum", "Klant", "Merk", "Model", "Start", "Einde",
		"Uren", "Normale uren", "Overuren", "Nachturen",
		"Brutoloon", "WWV", "Extra kosten", "Bruto totaal",
		"Sociale bijdrage", "Netto",
	}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "CSV genereren mislukt")
		return
	}

	for _, ride := range rides {
		row := []string{
			ride.Date,
			ride.ClientName,
			ride.CarBrand,
			ride.CarModel,
			ride.StartTime,
			ride.EndTime,
			fmt.Sprintf("%.2f", ride.TotalHours),
			fmt.Sprintf("%.2f", ride.NormalHours),
			fmt.Sprintf("%.2f", ride.OvertimeHours),
			fmt.Sprintf("%.2f", ride.NightHours),
			fmt.Sprintf("%.2f", ride.GrossPay),
			fmt.Sprintf("%.2f", ride.WWVAmount),
			fmt.Sprintf("%.2f", ride.ExtraCosts),
			fmt.Sprintf("%.2f", ride.GrossTotal),
			fmt.Sprintf("%.2f", ride.SocialContribution),
			fmt.Sprintf("%.2f", ride.NetPay),
		}
		if err := writer.Write(row); err != nil {
			InternalError(c, "CSV genereren mislukt")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "CSV genereren mislukt")
		return
	}

	filename := fmt.Sprintf("ritten_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel exports the caller's rides as a styled Excel sheet with
// a totals row.
// @Summary Export rides as Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param date_from query string false "inclusive lower date bound (YYYY-MM-DD)"
// @Param date_to query string false "inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {file} file "Excel file"
// @Failure 400 {object} Response "invalid date range"
// @Failure 401 {object} Response "not authenticated"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	from, to, ok := exportWindow(c)
	if !ok {
		return
	}

	rides, err := exportRides(userID, from, to)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "Ritten laden mislukt"))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Ritten"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 25)
	f.SetColWidth(sheetName, "C", "D", 15)
	f.SetColWidth(sheetName, "E", "F", 8)
	f.SetColWidth(sheetName, "G", "J", 10)

	headers := []string{"Datum", "Klant", "Merk", "Model", "Start", "Einde", "Uren", "Bruto totaal", "Sociale bijdrage", "Netto"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalHours, totalGross, totalNet float64
	for i, ride := range rides {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), ride.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), ride.ClientName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), ride.CarBrand)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), ride.CarModel)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), ride.StartTime)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), ride.EndTime)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), ride.TotalHours)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), ride.GrossTotal)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), ride.SocialContribution)
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), ride.NetPay)

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("J%d", row), dataStyle)
		totalHours += ride.TotalHours
		totalGross += ride.GrossTotal
		totalNet += ride.NetPay
	}

	summaryRow := len(rides) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Totaal")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("%d ritten", len(rides)))
	f.MergeCell(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("F%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", summaryRow), totalHours)
	f.SetCellValue(sheetName, fmt.Sprintf("H%d", summaryRow), totalGross)
	f.SetCellValue(sheetName, fmt.Sprintf("J%d", summaryRow), totalNet)
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("J%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("ritten_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "Excel genereren mislukt")
		return
	}
}
