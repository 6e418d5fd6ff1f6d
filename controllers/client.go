package controllers

import (
	"errors"
	"net/http"

	"incorpx-backend/config"
	"incorpx-backend/models"
	"incorpx-backend/store"
	"incorpx-backend/utils"

	"github.com/gin-gonic/gin"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Business string `json:"business" binding:"required"`
	Status   string `json:"status"`
}

// UpdateClientInput defines the expected JSON structure for patching a client
type UpdateClientInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Business *string `json:"business"`
	Status   *string `json:"status"`
}

// GetClients retrieves all client accounts
func GetClients(c *gin.Context) {
	clients, err := config.Store.ListClients()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient creates a new client account with its seeded formation fee
func CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing fields")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	client, err := config.Store.CreateClient(store.NewClient{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Business:     input.Business,
		Status:       input.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmailTaken):
			utils.RespondWithError(c, http.StatusConflict, "Email already registered")
		case errors.Is(err, models.ErrValidation):
			utils.RespondWithError(c, http.StatusBadRequest, "Missing fields")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		}
		return
	}

	c.JSON(http.StatusCreated, client)
}

// UpdateClient merges a partial patch into an existing client. A password in
// the patch is re-hashed before it is stored.
func UpdateClient(c *gin.Context) {
	id := c.Param("id")

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Email != nil && !utils.ValidateEmail(*input.Email) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	patch := models.ClientPatch{
		Name:     input.Name,
		Email:    input.Email,
		Business: input.Business,
		Status:   input.Status,
	}
	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		patch.PasswordHash = &hash
	}

	client, err := config.Store.UpdateClient(id, patch)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client. Deleting an unknown id is a no-op.
func DeleteClient(c *gin.Context) {
	if err := config.Store.RemoveClient(c.Param("id")); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
