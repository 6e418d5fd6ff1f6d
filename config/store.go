package config

import (
	"os"
	"path/filepath"

	"incorpx-backend/store"
)

// Store is the shared record store; set once at startup.
var Store store.Store

// StorePath is the location of the backing data file.
var StorePath string

func InitStore() {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	StorePath = filepath.Join(dataDir, "db.json")

	s, err := store.OpenFile(StorePath, AdminEmail())
	if err != nil {
		panic("Failed to open record store: " + err.Error())
	}
	Store = s
}

// AdminEmail returns the fixed demo admin login.
func AdminEmail() string {
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		return v
	}
	return "admin@incorpx.local"
}

func AdminPassword() string {
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		return v
	}
	return "admin"
}

// UploadDir is where attached documents are persisted and served from.
func UploadDir() string {
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		return v
	}
	return "uploads"
}
