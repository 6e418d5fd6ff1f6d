package portal

import (
	"encoding/base64"
	"mime"
	"path/filepath"

	"incorpx-backend/models"
	"incorpx-backend/store"
)

// LocalBackend serves every operation from an in-process record store.
// Credentials are kept and compared raw; document bytes are embedded as data
// URLs so the whole record round-trips through the store as text.
type LocalBackend struct {
	store store.Store
}

func NewLocalBackend(s store.Store) *LocalBackend {
	return &LocalBackend{store: s}
}

func (b *LocalBackend) ListClients() ([]models.Client, error) {
	return b.store.ListClients()
}

func (b *LocalBackend) CreateClient(in NewClientInput) (*models.Client, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Business == "" {
		return nil, models.ErrValidation
	}
	return b.store.CreateClient(store.NewClient{
		Name:     in.Name,
		Email:    in.Email,
		Pass:     in.Password,
		Business: in.Business,
		Status:   in.Status,
	})
}

func (b *LocalBackend) UpdateClient(id string, patch models.ClientPatch) (*models.Client, error) {
	return b.store.UpdateClient(id, patch)
}

func (b *LocalBackend) DeleteClient(id string) error {
	return b.store.RemoveClient(id)
}

func (b *LocalBackend) FindByCredential(email, password string) (*models.Client, error) {
	return b.store.FindByCredential(email, password)
}

// AddDocument embeds the file as a data URL. With no bytes there is nothing
// to attach: the result is nil and the document list stays unchanged.
func (b *LocalBackend) AddDocument(clientID, docType, filename string, data []byte) (*models.Document, error) {
	if len(data) == 0 {
		return nil, nil
	}

	mimeType := mime.TypeByExtension(filepath.Ext(filename))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	name := filename
	if name == "" {
		name = docType
	}

	return b.store.AddDocument(clientID, models.Document{
		Type:    docType,
		Name:    name,
		DataURL: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
	})
}

func (b *LocalBackend) AddPayment(clientID string, p models.Payment) error {
	_, err := b.store.AddPayment(clientID, p)
	return err
}

func (b *LocalBackend) AddTicket(clientID, subject, body string) (*models.Ticket, error) {
	if subject == "" || body == "" {
		return nil, models.ErrValidation
	}
	return b.store.AddTicket(clientID, models.Ticket{Subject: subject, Body: body})
}

func (b *LocalBackend) Export() ([]byte, error) {
	return b.store.Export()
}

func (b *LocalBackend) Import(data []byte) error {
	return b.store.Import(data)
}
