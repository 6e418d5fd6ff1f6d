package controllers

import (
	"io"
	"net/http"

	"incorpx-backend/config"
	"incorpx-backend/utils"

	"github.com/gin-gonic/gin"
)

// ExportClients returns the whole client collection as pretty-printed JSON.
func ExportClients(c *gin.Context) {
	raw, err := config.Store.Export()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to export data")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="incorpx-demo-data.json"`)
	c.Data(http.StatusOK, "application/json", raw)
}

// ImportClients replaces the collection with the posted JSON array.
func ImportClients(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}
	if err := config.Store.Import(raw); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Malformed data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// WipeClients resets the collection to empty.
func WipeClients(c *gin.Context) {
	if err := config.Store.Reset(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to wipe data")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
