package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

func (mc *MessageController) SendMessage(c *gin.Context) {
	fromUserID, _, err := sessionUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var req struct {
		ToUserID uint   `json:"to_user_id" binding:"required"`
		Message  string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	message := models.Message{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Body:       req.Message,
		Read:       false,
	}
	if err := mc.DB.Create(&message).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Message sent", message)
}

type messageRow struct {
	ID           uint      `json:"id"`
	FromUserID   uint      `json:"from_user_id"`
	FromUserName string    `json:"from_user_name"`
	FromUserRole string    `json:"from_user_role"`
	ToUserID     uint      `json:"to_user_id"`
	ToUserName   string    `json:"to_user_name"`
	ToUserRole   string    `json:"to_user_role"`
	Body         string    `json:"body"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetMessages lists every conversation the caller takes part in, newest
// first.
func (mc *MessageController) GetMessages(c *gin.Context) {
	userID, _, err := sessionUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var messages []models.Message
	if err := mc.DB.Preload("FromUser").Preload("ToUser").
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&messages).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	rows := make([]messageRow, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, messageRow{
			ID:           m.ID,
			FromUserID:   m.FromUserID,
			FromUserName: m.FromUser.Name,
			FromUserRole: m.FromUser.Role,
			ToUserID:     m.ToUserID,
			ToUserName:   m.ToUser.Name,
			ToUserRole:   m.ToUser.Role,
			Body:         m.Body,
			Read:         m.Read,
			CreatedAt:    m.CreatedAt,
		})
	}

	utils.RespondJSON(c, http.StatusOK, "Messages", rows)
}

// MarkMessageRead flips the read flag, scoped to the recipient: nobody can
// mark someone else's mail, and a read message never becomes unread again.
func (mc *MessageController) MarkMessageRead(c *gin.Context) {
	userID, _, err := sessionUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	id, _ := strconv.Atoi(c.Param("message_id"))

	result := mc.DB.Model(&models.Message{}).
		Where("id = ? AND to_user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		utils.RespondStoreError(c, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("message not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Message marked as read", gin.H{"message_id": id})
}

func (mc *MessageController) GetUnreadCount(c *gin.Context) {
	userID, _, err := sessionUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var count int64
	if err := mc.DB.Model(&models.Message{}).
		Where("to_user_id = ? AND `read` = ?", userID, false).
		Count(&count).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Unread count", gin.H{"count": count})
}
