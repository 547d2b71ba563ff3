package handlers

import (
	"net/http"
	"tripbook/db"
	"tripbook/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ExpenseCreateRequest struct {
	TripID      uint64  `form:"trip_id" binding:"required"`
	Amount      float64 `form:"amount" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Category    string  `form:"category"`
	PayerID     uint64  `form:"payer_id"`
}

type ExpenseInfo struct {
	ID          uint64  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	PayerID     uint64  `json:"payer_id"`
	PayerName   string  `json:"payer_name"`
}

type PayerTotal struct {
	PayerID   uint64  `json:"payer_id"`
	PayerName string  `json:"payer_name"`
	Total     float64 `json:"total"`
}

// ExpenseList returns the trip's expenses plus per-payer totals
func ExpenseList(c *gin.Context, user *models.User) {
	r := TripIDRequest{}
	if err := c.ShouldBindQuery(&r); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if loadTripForView(c, r.TripID, user.ID) == nil {
		return
	}
	rows, err := db.Instance.
		Table("expenses").
		Select("expenses.id, expenses.amount, expenses.description, expenses.category, expenses.payer_id, users.name").
		Joins("join users on users.id = expenses.payer_id").
		Where("expenses.trip_id = ?", r.TripID).
		Order("expenses.created_at DESC").
		Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	defer rows.Close()
	expenses := []ExpenseInfo{}
	for rows.Next() {
		info := ExpenseInfo{}
		if err = rows.Scan(&info.ID, &info.Amount, &info.Description, &info.Category, &info.PayerID, &info.PayerName); err != nil {
			c.JSON(http.StatusInternalServerError, DBError2Response)
			return
		}
		expenses = append(expenses, info)
	}
	totalRows, err := db.Instance.
		Table("expenses").
		Select("expenses.payer_id, users.name, sum(expenses.amount)").
		Joins("join users on users.id = expenses.payer_id").
		Where("expenses.trip_id = ?", r.TripID).
		Group("expenses.payer_id, users.name").
		Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError3Response)
		return
	}
	defer totalRows.Close()
	totals := []PayerTotal{}
	var grand float64
	for totalRows.Next() {
		t := PayerTotal{}
		if err = totalRows.Scan(&t.PayerID, &t.PayerName, &t.Total); err != nil {
			c.JSON(http.StatusInternalServerError, DBError3Response)
			return
		}
		grand += t.Total
		totals = append(totals, t)
	}
	c.JSON(http.StatusOK, gin.H{
		"error":    "",
		"expenses": expenses,
		"totals":   totals,
		"total":    grand,
	})
}

func ExpenseCreate(c *gin.Context, user *models.User) {
	r := ExpenseCreateRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	if loadTripForEdit(c, r.TripID, user.ID) == nil {
		return
	}
	// Unless stated otherwise the current user paid
	if r.PayerID == 0 {
		r.PayerID = user.ID
	}
	expense := models.Expense{
		TripID:      r.TripID,
		Amount:      r.Amount,
		Description: r.Description,
		Category:    r.Category,
		PayerID:     r.PayerID,
	}
	if err = db.Instance.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "id": expense.ID})
}

func ExpenseDelete(c *gin.Context, user *models.User) {
	r := ItemIDRequest{}
	err := c.ShouldBindWith(&r, binding.Form)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	expense := models.Expense{}
	if err = db.Instance.First(&expense, r.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if loadTripForEdit(c, expense.TripID, user.ID) == nil {
		return
	}
	if err = db.Instance.Delete(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}
