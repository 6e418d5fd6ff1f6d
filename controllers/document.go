package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"incorpx-backend/config"
	"incorpx-backend/models"
	"incorpx-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AddPaymentInput defines the expected JSON structure for recording a payment
type AddPaymentInput struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Status      string  `json:"status"`
}

// AttachDocument stores an uploaded file under a generated unique filename
// and prepends its metadata to the client's document list.
func AttachDocument(c *gin.Context) {
	id := c.Param("id")

	docType := c.PostForm("type")
	if docType == "" {
		docType = "Document"
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file")
		return
	}

	uploadDir := config.UploadDir()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to prepare upload directory")
		return
	}

	filename := uuid.NewString() + "-" + strings.ReplaceAll(file.Filename, " ", "_")
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store file")
		return
	}

	doc, err := config.Store.AddDocument(id, models.Document{
		Type: docType,
		Name: file.Filename,
		Path: filename,
		URL:  "/files/" + filename,
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to attach document")
		}
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// AddPayment prepends a payment to the client's payment history
func AddPayment(c *gin.Context) {
	id := c.Param("id")

	var input AddPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing fields")
		return
	}

	payment, err := config.Store.AddPayment(id, models.Payment{
		Description: input.Description,
		Amount:      input.Amount,
		Status:      input.Status,
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record payment")
		}
		return
	}

	c.JSON(http.StatusCreated, payment)
}
