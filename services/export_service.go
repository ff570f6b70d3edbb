package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Deycylopez14/Hidratacion/models"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exports share two columns: timestamp and amount, like the history table.
const exportTimeFormat = "02/01/2006 15:04"

type exportRecord struct {
	Fecha    string `json:"fecha"`
	Cantidad int    `json:"cantidad_ml"`
}

func exportRows(records []models.Hydration) []exportRecord {
	rows := make([]exportRecord, 0, len(records))
	for _, r := range records {
		rows = append(rows, exportRecord{
			Fecha:    r.CreatedAt.UTC().Format(exportTimeFormat),
			Cantidad: r.Amount,
		})
	}
	return rows
}

func ExportCSV(records []models.Hydration) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"Fecha y Hora", "ml"}); err != nil {
		return nil, err
	}
	for _, r := range exportRows(records) {
		if err := w.Write([]string{r.Fecha, strconv.Itoa(r.Cantidad)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ExportJSON(records []models.Hydration) ([]byte, error) {
	return json.MarshalIndent(exportRows(records), "", "  ")
}

func ExportXLSX(records []models.Hydration) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Historial"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(sheet, "A1", "Fecha y Hora")
	_ = f.SetCellValue(sheet, "B1", "Cantidad (ml)")
	for i, r := range exportRows(records) {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.Fecha)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.Cantidad)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ExportPDF(records []models.Hydration) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Historial de Hidratacion")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(80, 199, 236)
	pdf.CellFormat(95, 8, "Fecha y Hora", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 8, "Cantidad (ml)", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	fill := false
	pdf.SetFillColor(239, 251, 255)
	for _, r := range exportRows(records) {
		pdf.CellFormat(95, 7, r.Fecha, "1", 0, "C", fill, 0, "")
		pdf.CellFormat(50, 7, strconv.Itoa(r.Cantidad), "1", 1, "C", fill, 0, "")
		fill = !fill
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
