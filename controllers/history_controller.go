package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Deycylopez14/Hidratacion/services"

	"github.com/gin-gonic/gin"
)

// GetHistory lists every event newest first, with the summary numbers shown
// above the table.
func GetHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	records, err := services.ListHydration(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	total, best := 0, 0
	for _, r := range records {
		total += r.Amount
		if r.Amount > best {
			best = r.Amount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"count":   len(records),
		"total":   total,
		"best":    best,
	})
}

// ExportHistory streams the full history in the requested format, generated
// server-side from the in-memory list.
func ExportHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	records, err := services.ListHydration(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	format := c.DefaultQuery("format", "csv")

	var (
		data        []byte
		contentType string
		ext         string
	)
	switch format {
	case "csv":
		data, err = services.ExportCSV(records)
		contentType, ext = "text/csv", "csv"
	case "json":
		data, err = services.ExportJSON(records)
		contentType, ext = "application/json", "json"
	case "xlsx":
		data, err = services.ExportXLSX(records)
		contentType, ext = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"
	case "pdf":
		data, err = services.ExportPDF(records)
		contentType, ext = "application/pdf", "pdf"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv, json, xlsx or pdf"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="historial_hidratacion.%s"`, ext))
	c.Data(http.StatusOK, contentType, data)
}

// DeleteRecord removes one event. Destructive: requires confirm=true, the
// server-side counterpart of the client's confirmation prompt.
func DeleteRecord(c *gin.Context) {
	uid := c.GetUint("userID")

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	if err := services.DeleteHydration(uid, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el registro."})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllHistory wipes the user's full history after confirmation.
func DeleteAllHistory(c *gin.Context) {
	uid := c.GetUint("userID")

	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
		return
	}

	if err := services.DeleteAllHydration(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo eliminar el historial."})
		return
	}

	c.Status(http.StatusNoContent)
}
