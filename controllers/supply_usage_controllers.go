package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

type SupplyUsageController struct {
	DB *gorm.DB
}

func NewSupplyUsageController(db *gorm.DB) *SupplyUsageController {
	return &SupplyUsageController{DB: db}
}

// CreateSupplyUsage records consumption and decrements the supply's stock
// in one transaction: both writes commit together or neither does. Stock is
// allowed to go negative, matching the ledger-only accounting model.
func (suc *SupplyUsageController) CreateSupplyUsage(c *gin.Context) {
	operatorID, _, err := sessionUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var req struct {
		SupplyID     uint    `json:"supply_id" binding:"required"`
		ObjectiveID  uint    `json:"objective_id" binding:"required"`
		QuantityUsed float64 `json:"quantity_used" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	usage := models.SupplyUsage{
		SupplyID:     req.SupplyID,
		ObjectiveID:  req.ObjectiveID,
		OperatorID:   operatorID,
		QuantityUsed: req.QuantityUsed,
		UsedAt:       time.Now(),
	}

	err = suc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&usage).Error; err != nil {
			return err
		}
		return tx.Model(&models.Supply{}).
			Where("id = ?", req.SupplyID).
			Update("quantity_in_stock", gorm.Expr("quantity_in_stock - ?", req.QuantityUsed)).Error
	})
	if err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Supply usage recorded", usage)
}

type supplyUsageRow struct {
	ID            uint      `json:"id"`
	SupplyID      uint      `json:"supply_id"`
	SupplyName    string    `json:"supply_name"`
	ObjectiveID   uint      `json:"objective_id"`
	ObjectiveName string    `json:"objective_name"`
	OperatorID    uint      `json:"operator_id"`
	OperatorName  string    `json:"operator_name"`
	QuantityUsed  float64   `json:"quantity_used"`
	UsedAt        time.Time `json:"used_at"`
}

func (suc *SupplyUsageController) GetAllSupplyUsage(c *gin.Context) {
	query := suc.DB.Preload("Supply").Preload("Objective").Preload("Operator").
		Order("used_at DESC")

	if supplyID := c.Query("supply_id"); supplyID != "" {
		query = query.Where("supply_id = ?", supplyID)
	}
	if objectiveID := c.Query("objective_id"); objectiveID != "" {
		query = query.Where("objective_id = ?", objectiveID)
	}
	var ok bool
	if query, ok = applyDateRange(c, query, "used_at"); !ok {
		return
	}

	var usages []models.SupplyUsage
	if err := query.Find(&usages).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	rows := make([]supplyUsageRow, 0, len(usages))
	for _, u := range usages {
		rows = append(rows, supplyUsageRow{
			ID:            u.ID,
			SupplyID:      u.SupplyID,
			SupplyName:    u.Supply.Name,
			ObjectiveID:   u.ObjectiveID,
			ObjectiveName: u.Objective.Name,
			OperatorID:    u.OperatorID,
			OperatorName:  u.Operator.Name,
			QuantityUsed:  u.QuantityUsed,
			UsedAt:        u.UsedAt,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Supply usage records", rows)
}
