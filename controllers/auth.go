package controllers

import (
	"net/http"
	"strings"

	"incorpx-backend/config"
	"incorpx-backend/utils"

	"github.com/gin-gonic/gin"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin checks the fixed demo admin account and issues a bearer token.
func AdminLogin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(input.Email)
	if email != config.AdminEmail() || input.Password != config.AdminPassword() {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken("admin", "")
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ClientLogin matches a client by email and credential. No distinction is
// made between an unknown email and a wrong password.
func ClientLogin(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	client, err := config.Store.FindByCredential(strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Storage error")
		return
	}
	if client == nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken("client", client.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "id": client.ID})
}
