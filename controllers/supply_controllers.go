package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

type SupplyController struct {
	DB *gorm.DB
}

func NewSupplyController(db *gorm.DB) *SupplyController {
	return &SupplyController{DB: db}
}

type supplyRow struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Unit            string  `json:"unit"`
	QuantityInStock float64 `json:"quantity_in_stock"`
	MinStockLevel   float64 `json:"min_stock_level"`
	LowStock        bool    `json:"low_stock"`
}

func (sc *SupplyController) GetAllSupplies(c *gin.Context) {
	var supplies []models.Supply
	if err := sc.DB.Order("name").Find(&supplies).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	rows := make([]supplyRow, 0, len(supplies))
	for _, s := range supplies {
		rows = append(rows, supplyRow{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			Unit:            s.Unit,
			QuantityInStock: s.QuantityInStock,
			MinStockLevel:   s.MinStockLevel,
			LowStock:        s.IsLowStock(),
		})
	}

	utils.RespondJSON(c, http.StatusOK, "All supplies", rows)
}

func (sc *SupplyController) CreateSupply(c *gin.Context) {
	var req struct {
		Name            string  `json:"name" binding:"required"`
		Description     string  `json:"description"`
		Unit            string  `json:"unit"`
		QuantityInStock float64 `json:"quantity_in_stock"`
		MinStockLevel   float64 `json:"min_stock_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	supply := models.Supply{
		Name:            req.Name,
		Description:     req.Description,
		Unit:            req.Unit,
		QuantityInStock: req.QuantityInStock,
		MinStockLevel:   req.MinStockLevel,
	}
	if err := sc.DB.Create(&supply).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Supply created", supply)
}

func (sc *SupplyController) UpdateSupply(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("supply_id"))

	var req struct {
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		Unit            *string  `json:"unit"`
		QuantityInStock *float64 `json:"quantity_in_stock"`
		MinStockLevel   *float64 `json:"min_stock_level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var supply models.Supply
	if err := sc.DB.First(&supply, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Name != nil {
		supply.Name = *req.Name
	}
	if req.Description != nil {
		supply.Description = *req.Description
	}
	if req.Unit != nil {
		supply.Unit = *req.Unit
	}
	if req.QuantityInStock != nil {
		supply.QuantityInStock = *req.QuantityInStock
	}
	if req.MinStockLevel != nil {
		supply.MinStockLevel = *req.MinStockLevel
	}

	if err := sc.DB.Save(&supply).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Supply updated", supply)
}

func (sc *SupplyController) DeleteSupply(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("supply_id"))

	if err := sc.DB.Delete(&models.Supply{}, id).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Supply deleted", gin.H{"supply_id": id})
}
