package controllers

import (
	"errors"
	"net/http"

	"incorpx-backend/config"
	"incorpx-backend/models"
	"incorpx-backend/services"
	"incorpx-backend/utils"

	"github.com/gin-gonic/gin"
)

// Notifier, when set, is told about new support tickets.
var Notifier *services.NotifyService

type CreateTicketInput struct {
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

// Health is the liveness probe the portal façade checks before choosing
// remote mode.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetPortal returns the full client record for the client portal page.
func GetPortal(c *gin.Context) {
	id := c.Query("id")

	client, err := config.Store.GetClient(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Storage error")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// CreateTicket files a support ticket for the client.
func CreateTicket(c *gin.Context) {
	id := c.Param("id")

	var input CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing")
		return
	}

	ticket, err := config.Store.AddTicket(id, models.Ticket{
		Subject: input.Subject,
		Body:    input.Body,
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create ticket")
		}
		return
	}

	if Notifier != nil {
		if client, err := config.Store.GetClient(id); err == nil {
			go Notifier.TicketCreated(*client, *ticket)
		}
	}

	c.JSON(http.StatusCreated, ticket)
}
