// Package store holds the client record store. The whole collection is one
// JSON document: every read loads it entirely and every mutation rewrites it
// entirely. Two backends exist, a JSON file on disk for the server and an
// in-memory key-value store for local mode.
package store

import (
	"time"

	"incorpx-backend/models"
	"incorpx-backend/utils"
)

// NewClient carries the admin-supplied fields for a new client account.
// Pass is the raw credential (local mode); PasswordHash the bcrypt hash
// (server mode). Whichever the backend stores, one of them must be set.
type NewClient struct {
	Name         string
	Email        string
	Pass         string
	PasswordHash string
	Business     string
	Status       string
}

func (n NewClient) credential() string {
	if n.PasswordHash != "" {
		return n.PasswordHash
	}
	return n.Pass
}

// Store is the record store shared by the admin and client portals.
type Store interface {
	ListClients() ([]models.Client, error)
	GetClient(id string) (*models.Client, error)
	// FindByCredential returns nil without error when no client matches.
	FindByCredential(email, credential string) (*models.Client, error)
	// CreateClient assigns the id and businessId and seeds the formation fee.
	CreateClient(n NewClient) (*models.Client, error)
	UpdateClient(id string, patch models.ClientPatch) (*models.Client, error)
	// RemoveClient is idempotent; removing an unknown id is a no-op.
	RemoveClient(id string) error
	AddDocument(clientID string, doc models.Document) (*models.Document, error)
	AddPayment(clientID string, p models.Payment) (*models.Payment, error)
	AddTicket(clientID string, t models.Ticket) (*models.Ticket, error)
	Export() ([]byte, error)
	Import(data []byte) error
	Reset() error
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func validateNewClient(n NewClient) error {
	if n.Name == "" || n.Email == "" || n.credential() == "" || n.Business == "" {
		return models.ErrValidation
	}
	return nil
}

func fillDocument(d *models.Document) {
	if d.ID == "" {
		d.ID = utils.NewID()
	}
	if d.DateISO == "" {
		d.DateISO = nowISO()
	}
}

func fillPayment(p *models.Payment) {
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	if p.DateISO == "" {
		p.DateISO = nowISO()
	}
	if p.Status == "" {
		p.Status = models.PaymentStatusPaid
	}
}

func fillTicket(t *models.Ticket) {
	if t.ID == "" {
		t.ID = utils.NewID()
	}
	if t.DateISO == "" {
		t.DateISO = nowISO()
	}
	if t.Status == "" {
		t.Status = models.TicketStatusOpen
	}
}

func formationFee(id string) models.Payment {
	return models.Payment{
		ID:          id,
		DateISO:     nowISO(),
		Description: models.FormationFeeDescription,
		Amount:      models.FormationFeeAmount,
		Status:      models.PaymentStatusPaid,
	}
}
