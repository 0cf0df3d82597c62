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

func unitEntryView(e *models.UnitEntry) gin.H {
	return gin.H{
		"id":         e.ID,
		"goal_id":    e.GoalID,
		"date":       e.Date,
		"units":      e.Units,
		"created_at": e.CreatedAt,
	}
}

// GetUnits is the unit-count counterpart of GetSales: whole units
// instead of money, no ticket or average figures.
func (h *GoalHandler) GetUnits(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	goal, err := h.Store.GetUnitGoal(month, year)
	if err != nil && !store.IsNotFound(err) {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "goal query failed")
		return
	}

	var goalView gin.H
	entries := []models.UnitEntry{}
	var target int64
	if goal != nil {
		target = goal.TargetUnits
		goalView = gin.H{
			"id":           goal.ID,
			"month":        goal.Month,
			"year":         goal.Year,
			"target_units": goal.TargetUnits,
			"created_at":   goal.CreatedAt,
		}
		entries, err = h.Store.ListUnitEntries(goal.ID)
		if err != nil {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "entry query failed")
			return
		}
	}

	accumulated := report.AccumulatedUnits(entries)
	workdays := report.RemainingWorkdays(time.Now(), month, year)

	entryViews := make([]gin.H, 0, len(entries))
	for i := range entries {
		entryViews = append(entryViews, unitEntryView(&entries[i]))
	}

	util.Success(c, util.Response{
		"goal":    goalView,
		"entries": entryViews,
		"stats": gin.H{
			"accumulated_units":  accumulated,
			"completion_percent": report.CompletionPercent(target, accumulated),
			"remaining_units":    report.Remaining(target, accumulated),
			"remaining_workdays": workdays,
		},
		"projections": tierViews(report.Projections(target, accumulated, workdays), false),
	})
}

type saveUnitGoalReq struct {
	Month  int   `json:"month" binding:"required"`
	Year   int   `json:"year" binding:"required"`
	Target int64 `json:"target" binding:"required"`
}

// SaveUnits creates or replaces the month's unit target.
func (h *GoalHandler) SaveUnits(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not signed in")
		return
	}

	var req saveUnitGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}
	if err := util.ValidateMonthYear(req.Month, req.Year); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "month or year out of range")
		return
	}
	if req.Target <= 0 || req.Target > 10_000_000 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid target")
		return
	}

	goal := &models.UnitGoal{
		Month:       req.Month,
		Year:        req.Year,
		TargetUnits: req.Target,
		CreatedBy:   user.ID,
	}
	saved, err := h.Store.SaveUnitGoal(goal)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save goal")
		return
	}

	util.Success(c, util.Response{
		"goal": gin.H{
			"id":           saved.ID,
			"month":        saved.Month,
			"year":         saved.Year,
			"target_units": saved.TargetUnits,
			"created_at":   saved.CreatedAt,
		},
	})
}

type saveUnitEntryReq struct {
	GoalID uint   `json:"goal_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Units  int64  `json:"units" binding:"required"`
}

// SaveUnitEntry records (or replaces) the day's unit count for a goal.
func (h *GoalHandler) SaveUnitEntry(c *gin.Context) {
	var req saveUnitEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}
	if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
		return
	}
	if req.Units <= 0 || req.Units > 1_000_000 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid unit count")
		return
	}

	entry := &models.UnitEntry{
		GoalID: req.GoalID,
		Date:   req.Date,
		Units:  req.Units,
	}
	saved, err := h.Store.SaveUnitEntry(entry)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save entry")
		return
	}

	util.Success(c, util.Response{"entry": unitEntryView(saved)})
}

// DeleteUnitEntry removes a goal's entry for one date.
func (h *GoalHandler) DeleteUnitEntry(c *gin.Context) {
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

	deleted, err := h.Store.DeleteUnitEntryByDate(uint(goalID), date)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete entry")
		return
	}

	util.Success(c, util.Response{"deleted": deleted})
}

// ClearUnitEntries removes every entry of a goal and reports the count.
func (h *GoalHandler) ClearUnitEntries(c *gin.Context) {
	goalID, err := strconv.Atoi(c.Param("id"))
	if err != nil || goalID <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	count, err := h.Store.DeleteUnitEntriesByGoal(uint(goalID))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete entries")
		return
	}

	util.Success(c, util.Response{"deleted_count": count})
}
