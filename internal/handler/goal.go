package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/GBronzi/Reporte-de-ventas/internal/middleware"
	"github.com/GBronzi/Reporte-de-ventas/internal/models"
	"github.com/GBronzi/Reporte-de-ventas/internal/report"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
)

// GoalHandler serves monthly sales and unit goals: the monthly
// definition, its daily entries and the derived dashboard numbers.
type GoalHandler struct {
	Store *store.Store
}

func NewGoalHandler(st *store.Store) *GoalHandler {
	return &GoalHandler{Store: st}
}

// monthYearParams reads ?month=&year=, defaulting to the current month.
func monthYearParams(c *gin.Context) (int, int, bool) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if s := c.Query("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid month")
			return 0, 0, false
		}
		month = v
	}
	if s := c.Query("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid year")
			return 0, 0, false
		}
		year = v
	}

	if err := util.ValidateMonthYear(month, year); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month or year out of range")
		return 0, 0, false
	}
	return month, year, true
}

func salesEntryView(e *models.SalesEntry) gin.H {
	return gin.H{
		"id":           e.ID,
		"goal_id":      e.GoalID,
		"date":         e.Date,
		"amount_cents": e.AmountCents,
		"amount":       util.AmountFromCents(e.AmountCents),
		"tickets":      e.Tickets,
		"created_at":   e.CreatedAt,
	}
}

func tierViews(projections []report.TierProjection, monetary bool) []gin.H {
	out := make([]gin.H, 0, len(projections))
	for _, p := range projections {
		row := gin.H{
			"percent":        p.Percent,
			"target":         p.Target,
			"shortfall":      p.Shortfall,
			"daily_required": p.DailyRequired,
		}
		if monetary {
			row["target_amount"] = util.AmountFromCents(p.Target)
			row["shortfall_amount"] = util.AmountFromCents(p.Shortfall)
			row["daily_required_amount"] = util.AmountFromCents(int64(p.DailyRequired + 0.5))
		}
		out = append(out, row)
	}
	return out
}

// GetSales returns the month's goal, its entries and every derived
// number the dashboard shows. A month without a goal resolves to a
// null goal and zeroed stats rather than an error.
func (h *GoalHandler) GetSales(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	goal, err := h.Store.GetSalesGoal(month, year)
	if err != nil && !store.IsNotFound(err) {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "goal query failed")
		return
	}

	var goalView gin.H
	entries := []models.SalesEntry{}
	var target int64
	if goal != nil {
		target = goal.TargetCents
		goalView = gin.H{
			"id":           goal.ID,
			"month":        goal.Month,
			"year":         goal.Year,
			"target_cents": goal.TargetCents,
			"target":       util.AmountFromCents(goal.TargetCents),
			"created_at":   goal.CreatedAt,
		}
		entries, err = h.Store.ListSalesEntries(goal.ID)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "entry query failed")
			return
		}
	}

	now := time.Now()
	today := now.Format(store.DateFormat)
	accumulated := report.AccumulatedCents(entries)
	ticketsTotal := report.TicketsTotal(entries)
	workdays := report.RemainingWorkdays(now, month, year)

	entryViews := make([]gin.H, 0, len(entries))
	for i := range entries {
		entryViews = append(entryViews, salesEntryView(&entries[i]))
	}

	util.Success(c, util.Response{
		"goal":    goalView,
		"entries": entryViews,
		"stats": gin.H{
			"accumulated_cents":  accumulated,
			"accumulated":        util.AmountFromCents(accumulated),
			"completion_percent": report.CompletionPercent(target, accumulated),
			"remaining_cents":    report.Remaining(target, accumulated),
			"remaining":          util.AmountFromCents(report.Remaining(target, accumulated)),
			"tickets_total":      ticketsTotal,
			"tickets_today":      report.TicketsOn(entries, today),
			"average_per_ticket": report.AveragePerTicket(accumulated, ticketsTotal),
			"remaining_workdays": workdays,
		},
		"projections": tierViews(report.Projections(target, accumulated, workdays), true),
	})
}

type saveSalesGoalReq struct {
	Month  int     `json:"month" binding:"required"`
	Year   int     `json:"year" binding:"required"`
	Target float64 `json:"target" binding:"required"`
}

// SaveSales creates or replaces the month's goal target. Saving the
// same (month, year) twice updates the existing record in place.
func (h *GoalHandler) SaveSales(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	var req saveSalesGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}
	if err := util.ValidateMonthYear(req.Month, req.Year); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month or year out of range")
		return
	}
	if err := util.ValidateAmount(req.Target); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid target amount")
		return
	}

	goal := &models.SalesGoal{
		Month:       req.Month,
		Year:        req.Year,
		TargetCents: util.CentsFromAmount(req.Target),
		CreatedBy:   user.ID,
	}
	saved, err := h.Store.SaveSalesGoal(goal)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save goal")
		return
	}

	util.Success(c, util.Response{
		"goal": gin.H{
			"id":           saved.ID,
			"month":        saved.Month,
			"year":         saved.Year,
			"target_cents": saved.TargetCents,
			"target":       util.AmountFromCents(saved.TargetCents),
			"created_at":   saved.CreatedAt,
		},
	})
}

type saveSalesEntryReq struct {
	GoalID  uint    `json:"goal_id" binding:"required"`
	Date    string  `json:"date" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
	Tickets int     `json:"tickets"`
}

// SaveSalesEntry records (or replaces) the day's contribution to a
// goal. Tickets defaults to 1 when omitted.
func (h *GoalHandler) SaveSalesEntry(c *gin.Context) {
	var req saveSalesEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}
	if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}
	if req.Tickets < 0 || req.Tickets > 10000 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid ticket count")
		return
	}

	entry := &models.SalesEntry{
		GoalID:      req.GoalID,
		Date:        req.Date,
		AmountCents: util.CentsFromAmount(req.Amount),
		Tickets:     req.Tickets,
	}
	saved, err := h.Store.SaveSalesEntry(entry)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save entry")
		return
	}

	util.Success(c, util.Response{"entry": salesEntryView(saved)})
}

// DeleteSalesEntry removes a goal's entry for one date.
func (h *GoalHandler) DeleteSalesEntry(c *gin.Context) {
	goalID, err := strconv.Atoi(c.Query("goal_id"))
	if err != nil || goalID <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid goal_id")
		return
	}
	date := c.Query("date")
	if err := util.ValidateDate(date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
		return
	}

	deleted, err := h.Store.DeleteSalesEntryByDate(uint(goalID), date)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete entry")
		return
	}

	util.Success(c, util.Response{"deleted": deleted})
}

// ClearSalesEntries removes every entry of a goal and reports the count.
func (h *GoalHandler) ClearSalesEntries(c *gin.Context) {
	goalID, err := strconv.Atoi(c.Param("id"))
	if err != nil || goalID <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	count, err := h.Store.DeleteSalesEntriesByGoal(uint(goalID))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete entries")
		return
	}

	util.Success(c, util.Response{"deleted_count": count})
}
