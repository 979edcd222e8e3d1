package ui

import (
	"bytes"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"eisview/domain/eis"
	"eisview/internal/export"
	"eisview/internal/plot"
	"eisview/internal/query"
)

// SeriesPayload is one named trace in the shape the chart sink expects.
type SeriesPayload struct {
	LegendGroup string    `json:"legend_group"`
	CellName    string    `json:"cell_name"`
	X           []float64 `json:"x"`
	Y           []float64 `json:"y"`
}

// PlotResponse is the /api/plot payload. NoData tells the chart to render
// its "select cells to display" annotation instead of traces.
type PlotResponse struct {
	Series []SeriesPayload `json:"series"`
	NoData bool            `json:"no_data"`
}

func (s *Server) handleIndex(c *gin.Context) {
	names := s.index.Cells.Names()
	sort.Strings(names)

	s.renderTemplate(c, "index.html", gin.H{
		"Title":       "Nyquist Plot Viewer",
		"CellNames":   names,
		"FilesFound":  s.index.FilesFound,
		"FilesLoaded": s.index.FilesLoaded,
		"FailedFiles": s.index.FailedFiles,
	})
}

func (s *Server) handleCells(c *gin.Context) {
	names := s.index.Cells.Names()
	sort.Strings(names)

	type cellInfo struct {
		Name        string `json:"name"`
		LeadingID   string `json:"leading_id"`
		LegendGroup string `json:"legend_group"`
	}
	cells := make([]cellInfo, 0, len(names))
	for _, name := range names {
		record := s.index.Cells[name]
		cells = append(cells, cellInfo{
			Name:        record.Name,
			LeadingID:   record.LeadingID,
			LegendGroup: eis.LegendName(record.Name),
		})
	}
	c.JSON(http.StatusOK, gin.H{"cells": cells})
}

// handlePlot resolves the id query, feeds the chart payload, and overwrites
// the export store with the plotted long table.
func (s *Server) handlePlot(c *gin.Context) {
	ids := query.Parse(c.Query("q"))
	series, long := plot.Assemble(ids, s.index.Cells)
	s.store.Set(long)

	payload := make([]SeriesPayload, 0, len(series))
	for _, sr := range series {
		sp := SeriesPayload{
			LegendGroup: sr.LegendGroup,
			CellName:    sr.CellName,
			X:           make([]float64, len(sr.Points)),
			Y:           make([]float64, len(sr.Points)),
		}
		for i, p := range sr.Points {
			sp.X[i] = p.ReZOhm
			sp.Y[i] = p.NegImZOhm
		}
		payload = append(payload, sp)
	}

	c.JSON(http.StatusOK, PlotResponse{Series: payload, NoData: len(payload) == 0})
}

// handleExport downloads the last plotted table as a wide spreadsheet. With
// nothing plotted the export is a no-op, not an error.
func (s *Server) handleExport(c *gin.Context) {
	table, ok := s.store.Get()
	if !ok || table.Empty() {
		c.Status(http.StatusNoContent)
		return
	}

	wide := export.Pivot(table)
	now := time.Now()
	var buf bytes.Buffer

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		if err := export.WriteCSV(&buf, wide); err != nil {
			s.logger.Error("[Export] CSV write failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+export.Filename(now)+`"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	case "xlsx":
		if err := export.WriteXLSX(&buf, wide); err != nil {
			s.logger.Error("[Export] XLSX write failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="`+export.XLSXFilename(now)+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format"})
	}
}
