package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

type ObservationController struct {
	DB *gorm.DB
}

func NewObservationController(db *gorm.DB) *ObservationController {
	return &ObservationController{DB: db}
}

// CreateObservation appends a free-text note on a sector. Observations are
// immutable once written.
func (oc *ObservationController) CreateObservation(c *gin.Context) {
	operatorID, _, err := sessionUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var req struct {
		SectorID uint   `json:"sector_id" binding:"required"`
		Text     string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	observation := models.Observation{
		SectorID:   req.SectorID,
		OperatorID: operatorID,
		Text:       req.Text,
	}
	if err := oc.DB.Create(&observation).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Observation created", observation)
}

type observationRow struct {
	ID            uint      `json:"id"`
	SectorID      uint      `json:"sector_id"`
	SectorName    string    `json:"sector_name"`
	ObjectiveID   uint      `json:"objective_id"`
	ObjectiveName string    `json:"objective_name"`
	OperatorID    uint      `json:"operator_id"`
	OperatorName  string    `json:"operator_name"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"created_at"`
}

func (oc *ObservationController) GetAllObservations(c *gin.Context) {
	query := oc.DB.Preload("Sector.Objective").Preload("Operator").
		Order("created_at DESC")

	if sectorID := c.Query("sector_id"); sectorID != "" {
		query = query.Where("sector_id = ?", sectorID)
	}
	if objectiveID := c.Query("objective_id"); objectiveID != "" {
		query = query.Where(
			"sector_id IN (?)",
			oc.DB.Model(&models.Sector{}).Select("id").Where("objective_id = ?", objectiveID),
		)
	}

	var observations []models.Observation
	if err := query.Find(&observations).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	rows := make([]observationRow, 0, len(observations))
	for _, o := range observations {
		rows = append(rows, observationRow{
			ID:            o.ID,
			SectorID:      o.SectorID,
			SectorName:    o.Sector.Name,
			ObjectiveID:   o.Sector.ObjectiveID,
			ObjectiveName: o.Sector.Objective.Name,
			OperatorID:    o.OperatorID,
			OperatorName:  o.Operator.Name,
			Text:          o.Text,
			CreatedAt:     o.CreatedAt,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Observations", rows)
}
