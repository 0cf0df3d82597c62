package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/GBronzi/Reporte-de-ventas/internal/models"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler produces CSV and XLSX downloads of a month's credits
// and sales entries.
type ExportHandler struct {
	Store *store.Store
}

func NewExportHandler(st *store.Store) *ExportHandler {
	return &ExportHandler{Store: st}
}

func (h *ExportHandler) monthData(c *gin.Context) ([]models.Credit, []models.SalesEntry, int, int, bool) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return nil, nil, 0, 0, false
	}

	credits, err := h.Store.CreditsByMonth(month, year)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "credit query failed")
		return nil, nil, 0, 0, false
	}

	entries := []models.SalesEntry{}
	goal, err := h.Store.GetSalesGoal(month, year)
	if err != nil && !store.IsNotFound(err) {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "goal query failed")
		return nil, nil, 0, 0, false
	}
	if goal != nil {
		entries, err = h.Store.ListSalesEntries(goal.ID)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "entry query failed")
			return nil, nil, 0, 0, false
		}
	}

	return credits, entries, month, year, true
}

// ExportCSV streams the month's credits and sales entries as one CSV
// with a section column.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	credits, entries, month, year, ok := h.monthData(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"report_%04d-%02d_%s.csv\"",
		year, month, time.Now().Format("20060102")))

	// UTF-8 BOM so Excel detects the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write([]string{"section", "date", "type", "amount", "client", "quantity", "tickets"})

	for _, cr := range credits {
		writer.Write([]string{
			"credit",
			cr.Date,
			cr.Type,
			util.AmountFromCents(cr.AmountCents),
			cr.Client,
			fmt.Sprintf("%d", cr.Quantity),
			"",
		})
	}
	for _, e := range entries {
		writer.Write([]string{
			"sales",
			e.Date,
			"",
			util.AmountFromCents(e.AmountCents),
			"",
			"",
			fmt.Sprintf("%d", e.Tickets),
		})
	}
}

// ExportXLSX builds an XLSX workbook with one sheet per section.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	credits, entries, month, year, ok := h.monthData(c)
	if !ok {
		return
	}

	f := excelize.NewFile()

	creditSheet := "Credits"
	index, err := f.NewSheet(creditSheet)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not create sheet")
		return
	}
	f.SetActiveSheet(index)

	headers := []string{"Date", "Type", "Amount", "Client", "Quantity"}
	for i, name := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(creditSheet, cell, name)
	}
	for idx, cr := range credits {
		row := idx + 2
		f.SetCellValue(creditSheet, fmt.Sprintf("A%d", row), cr.Date)
		f.SetCellValue(creditSheet, fmt.Sprintf("B%d", row), cr.Type)
		f.SetCellValue(creditSheet, fmt.Sprintf("C%d", row), util.AmountFromCents(cr.AmountCents))
		f.SetCellValue(creditSheet, fmt.Sprintf("D%d", row), cr.Client)
		f.SetCellValue(creditSheet, fmt.Sprintf("E%d", row), cr.Quantity)
	}
	f.SetColWidth(creditSheet, "A", "A", 12)
	f.SetColWidth(creditSheet, "B", "B", 12)
	f.SetColWidth(creditSheet, "C", "C", 12)
	f.SetColWidth(creditSheet, "D", "D", 30)
	f.SetColWidth(creditSheet, "E", "E", 10)

	salesSheet := "Sales"
	if _, err := f.NewSheet(salesSheet); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not create sheet")
		return
	}
	salesHeaders := []string{"Date", "Amount", "Tickets"}
	for i, name := range salesHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(salesSheet, cell, name)
	}
	for idx, e := range entries {
		row := idx + 2
		f.SetCellValue(salesSheet, fmt.Sprintf("A%d", row), e.Date)
		f.SetCellValue(salesSheet, fmt.Sprintf("B%d", row), util.AmountFromCents(e.AmountCents))
		f.SetCellValue(salesSheet, fmt.Sprintf("C%d", row), e.Tickets)
	}
	f.SetColWidth(salesSheet, "A", "A", 12)
	f.SetColWidth(salesSheet, "B", "B", 12)
	f.SetColWidth(salesSheet, "C", "C", 10)

	f.DeleteSheet("Sheet1")

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"report_%04d-%02d_%s.xlsx\"",
		year, month, time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
