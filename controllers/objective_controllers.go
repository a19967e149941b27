package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

type ObjectiveController struct {
	DB *gorm.DB
}

func NewObjectiveController(db *gorm.DB) *ObjectiveController {
	return &ObjectiveController{DB: db}
}

type objectiveRow struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	ClientID    *uint  `json:"client_id"`
	ClientName  string `json:"client_name"`
	Address     string `json:"address"`
	Description string `json:"description"`
}

func (oc *ObjectiveController) GetAllObjectives(c *gin.Context) {
	var objectives []models.Objective
	if err := oc.DB.Preload("Client").Order("name").Find(&objectives).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	rows := make([]objectiveRow, 0, len(objectives))
	for _, o := range objectives {
		row := objectiveRow{
			ID:          o.ID,
			Name:        o.Name,
			ClientID:    o.ClientID,
			Address:     o.Address,
			Description: o.Description,
		}
		if o.Client != nil {
			row.ClientName = o.Client.Name
		}
		rows = append(rows, row)
	}

	utils.RespondJSON(c, http.StatusOK, "All objectives", rows)
}

func (oc *ObjectiveController) CreateObjective(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		ClientID    *uint  `json:"client_id"`
		Address     string `json:"address"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	objective := models.Objective{
		Name:        req.Name,
		ClientID:    req.ClientID,
		Address:     req.Address,
		Description: req.Description,
	}
	if err := oc.DB.Create(&objective).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Objective created", objective)
}

func (oc *ObjectiveController) UpdateObjective(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("objective_id"))

	var req struct {
		Name        *string `json:"name"`
		ClientID    *uint   `json:"client_id"`
		Address     *string `json:"address"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var objective models.Objective
	if err := oc.DB.First(&objective, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Name != nil {
		objective.Name = *req.Name
	}
	if req.ClientID != nil {
		objective.ClientID = req.ClientID
	}
	if req.Address != nil {
		objective.Address = *req.Address
	}
	if req.Description != nil {
		objective.Description = *req.Description
	}

	if err := oc.DB.Save(&objective).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Objective updated", objective)
}

func (oc *ObjectiveController) DeleteObjective(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("objective_id"))

	if err := oc.DB.Delete(&models.Objective{}, id).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Objective deleted", gin.H{"objective_id": id})
}

// GetObjectiveSectors lists the sectors belonging to one objective.
func (oc *ObjectiveController) GetObjectiveSectors(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("objective_id"))

	var sectors []models.Sector
	if err := oc.DB.Where("objective_id = ?", id).Order("name").Find(&sectors).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Objective sectors", sectors)
}
