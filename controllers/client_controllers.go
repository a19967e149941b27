package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

type ClientController struct {
	DB *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{DB: db}
}

func (cc *ClientController) GetAllClients(c *gin.Context) {
	var clients []models.Client
	if err := cc.DB.Order("name").Find(&clients).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "All clients", clients)
}

func (cc *ClientController) CreateClient(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Contact string `json:"contact"`
		Address string `json:"address"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	client := models.Client{
		Name:    req.Name,
		Contact: req.Contact,
		Address: req.Address,
		Phone:   req.Phone,
		Email:   req.Email,
	}
	if err := cc.DB.Create(&client).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Client created", client)
}

func (cc *ClientController) UpdateClient(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("client_id"))

	var req struct {
		Name    *string `json:"name"`
		Contact *string `json:"contact"`
		Address *string `json:"address"`
		Phone   *string `json:"phone"`
		Email   *string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var client models.Client
	if err := cc.DB.First(&client, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}

	if err := cc.DB.Save(&client).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client updated", client)
}

func (cc *ClientController) DeleteClient(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("client_id"))

	if err := cc.DB.Delete(&models.Client{}, id).Error; err != nil {
		utils.RespondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Client deleted", gin.H{"client_id": id})
}
