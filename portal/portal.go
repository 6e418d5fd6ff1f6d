// Package portal is the data-access layer of the portal front ends: one
// Backend surface over the client records, with a local in-process
// implementation and a remote one speaking to the HTTP API. The backend is
// chosen once at Connect time and never re-evaluated.
package portal

import (
	"log"
	"net/http"
	"time"

	"incorpx-backend/models"
	"incorpx-backend/store"
)

// NewClientInput carries the admin-entered fields for a new client account.
type NewClientInput struct {
	Name     string
	Email    string
	Password string
	Business string
	Status   string
}

// Backend is the uniform operation set both portals are written against.
type Backend interface {
	ListClients() ([]models.Client, error)
	CreateClient(in NewClientInput) (*models.Client, error)
	UpdateClient(id string, patch models.ClientPatch) (*models.Client, error)
	// DeleteClient is idempotent.
	DeleteClient(id string) error
	// FindByCredential returns nil without error when nothing matches.
	FindByCredential(email, password string) (*models.Client, error)
	// AddDocument attaches file bytes under the given category. The local
	// backend returns no document for empty data; the remote one fails with
	// models.ErrNoFile.
	AddDocument(clientID, docType, filename string, data []byte) (*models.Document, error)
	AddPayment(clientID string, p models.Payment) error
	AddTicket(clientID, subject, body string) (*models.Ticket, error)
	Export() ([]byte, error)
	Import(data []byte) error
}

// Demo admin account used for the startup probe.
const (
	DemoAdminEmail    = "admin@incorpx.local"
	DemoAdminPassword = "admin"
)

// Connect probes the server once. If the health check and the demo admin
// login both succeed the remote backend is used; any failure falls back to
// local mode permanently for this session.
func Connect(baseURL string) Backend {
	hc := &http.Client{Timeout: 3 * time.Second}
	remote, err := dial(baseURL, DemoAdminEmail, DemoAdminPassword, hc)
	if err != nil {
		log.Printf("Server unavailable, running in local mode: %v", err)
		return NewLocalBackend(store.NewMemStore(store.NewMemKV()))
	}
	return remote
}
