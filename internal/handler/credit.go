package handler

import (
	"net/http"
	"strconv"

	"github.com/GBronzi/Reporte-de-ventas/internal/models"
	"github.com/GBronzi/Reporte-de-ventas/internal/store"
	"github.com/GBronzi/Reporte-de-ventas/internal/util"

	"github.com/gin-gonic/gin"
)

// CreditHandler manages credit transactions. Credits are not tied to
// a goal; the monthly view filters them by date range on demand.
type CreditHandler struct {
	Store *store.Store
}

func NewCreditHandler(st *store.Store) *CreditHandler {
	return &CreditHandler{Store: st}
}

func creditView(cr *models.Credit) gin.H {
	return gin.H{
		"id":           cr.ID,
		"date":         cr.Date,
		"type":         cr.Type,
		"amount_cents": cr.AmountCents,
		"amount":       util.AmountFromCents(cr.AmountCents),
		"client":       cr.Client,
		"quantity":     cr.Quantity,
		"created_at":   cr.CreatedAt,
	}
}

// ListByMonth returns the month's credits plus per-type totals.
func (h *CreditHandler) ListByMonth(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	credits, err := h.Store.CreditsByMonth(month, year)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "credit query failed")
		return
	}

	views := make([]gin.H, 0, len(credits))
	totalsCents := map[string]int64{
		models.CreditTypeNew:       0,
		models.CreditTypeRenewal:   0,
		models.CreditTypeCollected: 0,
	}
	totalsCount := map[string]int{
		models.CreditTypeNew:       0,
		models.CreditTypeRenewal:   0,
		models.CreditTypeCollected: 0,
	}
	for i := range credits {
		views = append(views, creditView(&credits[i]))
		totalsCents[credits[i].Type] += credits[i].AmountCents
		totalsCount[credits[i].Type] += credits[i].Quantity
	}

	util.Success(c, util.Response{
		"credits": views,
		"totals": gin.H{
			"amount_cents": totalsCents,
			"quantity":     totalsCount,
		},
	})
}

type createCreditReq struct {
	Date     string  `json:"date" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Client   string  `json:"client"`
	Quantity int     `json:"quantity"`
}

func (h *CreditHandler) Create(c *gin.Context) {
	var req createCreditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}
	if err := util.ValidateDate(req.Date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
		return
	}
	if !models.ValidCreditType(req.Type) {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown credit type")
		return
	}
	if err := util.ValidateAmount(req.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
		return
	}
	if req.Quantity < 0 || req.Quantity > 10000 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid quantity")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if len(req.Client) > 128 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "client name too long")
		return
	}

	credit := &models.Credit{
		Date:        req.Date,
		Type:        req.Type,
		AmountCents: util.CentsFromAmount(req.Amount),
		Client:      req.Client,
		Quantity:    req.Quantity,
	}
	if err := h.Store.CreateCredit(credit); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not save credit")
		return
	}

	util.Success(c, util.Response{"credit": creditView(credit)})
}

type updateCreditReq struct {
	Date     *string  `json:"date"`
	Type     *string  `json:"type"`
	Amount   *float64 `json:"amount"`
	Client   *string  `json:"client"`
	Quantity *int     `json:"quantity"`
}

// Update merges the provided fields into an existing credit.
func (h *CreditHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	var req updateCreditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid parameters")
		return
	}

	fields := map[string]any{}
	if req.Date != nil {
		if err := util.ValidateDate(*req.Date); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
			return
		}
		fields["date"] = *req.Date
	}
	if req.Type != nil {
		if !models.ValidCreditType(*req.Type) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unknown credit type")
			return
		}
		fields["type"] = *req.Type
	}
	if req.Amount != nil {
		if err := util.ValidateAmount(*req.Amount); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid amount")
			return
		}
		fields["amount_cents"] = util.CentsFromAmount(*req.Amount)
	}
	if req.Client != nil {
		if len(*req.Client) > 128 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "client name too long")
			return
		}
		fields["client"] = *req.Client
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 || *req.Quantity > 10000 {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid quantity")
			return
		}
		fields["quantity"] = *req.Quantity
	}
	if len(fields) == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "no fields to update")
		return
	}

	credit, err := h.Store.UpdateCredit(uint(id), fields)
	if err != nil {
		if store.IsNotFound(err) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "credit not found")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not update credit")
		return
	}

	util.Success(c, util.Response{"credit": creditView(credit)})
}

func (h *CreditHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return
	}

	deleted, err := h.Store.DeleteCredit(uint(id))
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete credit")
		return
	}

	util.Success(c, util.Response{"deleted": deleted})
}

// DeleteByDate removes every credit dated exactly on the given day.
func (h *CreditHandler) DeleteByDate(c *gin.Context) {
	date := c.Query("date")
	if err := util.ValidateDate(date); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "date must be YYYY-MM-DD")
		return
	}

	count, err := h.Store.DeleteCreditsByDate(date)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete credits")
		return
	}

	util.Success(c, util.Response{"deleted_count": count})
}

// DeleteByMonth removes every credit within the given month.
func (h *CreditHandler) DeleteByMonth(c *gin.Context) {
	month, year, ok := monthYearParams(c)
	if !ok {
		return
	}

	count, err := h.Store.DeleteCreditsByMonth(month, year)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "could not delete credits")
		return
	}

	util.Success(c, util.Response{"deleted_count": count})
}
