package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

type SectorController struct {
	DB *gorm.DB
}

func NewSectorController(db *gorm.DB) *SectorController {
	return &SectorController{DB: db}
}

func (sc *SectorController) GetAllSectors(c *gin.Context) {
	query := sc.DB.Order("name")
	if objectiveID := c.Query("objective_id"); objectiveID != "" {
		query = query.Where("objective_id = ?", objectiveID)
	}

	var sectors []models.Sector
	if err := query.Find(&sectors).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All sectors", sectors)
}

func (sc *SectorController) CreateSector(c *gin.Context) {
	var req struct {
		ObjectiveID uint   `json:"objective_id" binding:"required"`
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sector := models.Sector{
		ObjectiveID: req.ObjectiveID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := sc.DB.Create(&sector).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Sector created", sector)
}

func (sc *SectorController) UpdateSector(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("sector_id"))

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var sector models.Sector
	if err := sc.DB.First(&sector, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Name != nil {
		sector.Name = *req.Name
	}
	if req.Description != nil {
		sector.Description = *req.Description
	}

	if err := sc.DB.Save(&sector).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Sector updated", sector)
}

func (sc *SectorController) DeleteSector(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("sector_id"))

	if err := sc.DB.Delete(&models.Sector{}, id).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Sector deleted", gin.H{"sector_id": id})
}
