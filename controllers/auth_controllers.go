package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/servilimp/servilimp-app/models"
	"github.com/servilimp/servilimp-app/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login checks the credentials and establishes the session: a signed token
// in an HTTP-only cookie. Unknown username and wrong password answer with
// the same message so the two cases cannot be told apart.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateSessionToken(user.ID, user.Role, user.Name)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.SetCookie(utils.SessionCookieName, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)

	utils.InfoLogger.Printf("Login successful for user %s (role=%s)", user.Username, user.Role)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
		},
	})
}

// Logout revokes the presented token and clears the cookie. The revocation
// list makes the old token unusable even if a copy survives client-side.
func (ac *AuthController) Logout(c *gin.Context) {
	jtiValue, _ := c.Get("session_jti")
	expValue, _ := c.Get("session_exp")

	jti, _ := jtiValue.(string)
	expiry, ok := expValue.(time.Time)
	if !ok {
		expiry = time.Now().Add(utils.SessionTTL)
	}
	if jti != "" {
		utils.RevokeToken(jti, expiry)
	}

	c.SetCookie(utils.SessionCookieName, "", -1, "/", "", false, true)

	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

// Me returns the profile of the session user.
func (ac *AuthController) Me(c *gin.Context) {
	userID, _, err := sessionUser(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	var user models.User
	if err := ac.DB.First(&user, userID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data", gin.H{
		"id":       user.ID,
		"username": user.Username,
		"name":     user.Name,
		"role":     user.Role,
	})
}
