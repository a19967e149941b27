package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

type CleaningRecordController struct {
	DB *gorm.DB
}

func NewCleaningRecordController(db *gorm.DB) *CleaningRecordController {
	return &CleaningRecordController{DB: db}
}

// CreateCleaningRecord appends a completion record for the calling
// operator. Records are immutable: there is no update or delete route.
func (crc *CleaningRecordController) CreateCleaningRecord(c *gin.Context) {
	operatorID, _, err := sessionUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var req struct {
		SectorID uint   `json:"sector_id" binding:"required"`
		Status   string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	record := models.CleaningRecord{
		SectorID:   req.SectorID,
		OperatorID: operatorID,
		CleanedAt:  time.Now(),
		Status:     "completed",
	}
	if req.Status != "" {
		record.Status = req.Status
	}

	if err := crc.DB.Create(&record).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Cleaning record created", record)
}

type cleaningRecordRow struct {
	ID            uint      `json:"id"`
	SectorID      uint      `json:"sector_id"`
	SectorName    string    `json:"sector_name"`
	ObjectiveID   uint      `json:"objective_id"`
	ObjectiveName string    `json:"objective_name"`
	OperatorID    uint      `json:"operator_id"`
	OperatorName  string    `json:"operator_name"`
	CleanedAt     time.Time `json:"cleaned_at"`
	Status        string    `json:"status"`
}

func (crc *CleaningRecordController) GetAllCleaningRecords(c *gin.Context) {
	query := crc.DB.Preload("Sector.Objective").Preload("Operator").
		Order("cleaned_at DESC")

	if objectiveID := c.Query("objective_id"); objectiveID != "" {
		query = query.Where(
			"sector_id IN (?)",
			crc.DB.Model(&models.Sector{}).Select("id").Where("objective_id = ?", objectiveID),
		)
	}
	var ok bool
	if query, ok = applyDateRange(c, query, "cleaned_at"); !ok {
		return
	}

	var records []models.CleaningRecord
	if err := query.Find(&records).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	rows := make([]cleaningRecordRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, cleaningRecordRow{
			ID:            r.ID,
			SectorID:      r.SectorID,
			SectorName:    r.Sector.Name,
			ObjectiveID:   r.Sector.ObjectiveID,
			ObjectiveName: r.Sector.Objective.Name,
			OperatorID:    r.OperatorID,
			OperatorName:  r.Operator.Name,
			CleanedAt:     r.CleanedAt,
			Status:        r.Status,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Cleaning records", rows)
}
