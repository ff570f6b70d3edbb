package services

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/Deycylopez14/Hidratacion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func exportFixture(t *testing.T) []models.Hydration {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, "2026-03-10T08:30:00Z")
	require.NoError(t, err)
	return []models.Hydration{
		{Model: gorm.Model{ID: 2, CreatedAt: ts.Add(4 * time.Hour)}, UserID: 1, Amount: 700},
		{Model: gorm.Model{ID: 1, CreatedAt: ts}, UserID: 1, Amount: 500},
	}
}

func TestExportCSV(t *testing.T) {
	data, err := ExportCSV(exportFixture(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Fecha y Hora", "ml"}, rows[0])
	assert.Equal(t, []string{"10/03/2026 12:30", "700"}, rows[1])
	assert.Equal(t, []string{"10/03/2026 08:30", "500"}, rows[2])
}

func TestExportCSVEmptyHistoryStillHasHeader(t *testing.T) {
	data, err := ExportCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Fecha y Hora", "ml"}, rows[0])
}

func TestExportJSON(t *testing.T) {
	data, err := ExportJSON(exportFixture(t))
	require.NoError(t, err)

	var rows []exportRecord
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "10/03/2026 12:30", rows[0].Fecha)
	assert.Equal(t, 700, rows[0].Cantidad)
	assert.Equal(t, 500, rows[1].Cantidad)
}

func TestExportXLSX(t *testing.T) {
	data, err := ExportXLSX(exportFixture(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Historial", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fecha y Hora", header)

	amount, err := f.GetCellValue("Historial", "B2")
	require.NoError(t, err)
	assert.Equal(t, "700", amount)
}

func TestExportPDF(t *testing.T) {
	data, err := ExportPDF(exportFixture(t))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}
