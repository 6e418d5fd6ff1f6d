package store

import (
	"os"
	"path/filepath"
	"testing"

	"incorpx-backend/models"
	"incorpx-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := OpenFile(filepath.Join(t.TempDir(), "db.json"), "admin@incorpx.local")
	require.NoError(t, err)
	return s
}

func createTestClient(t *testing.T, s Store, email string) *models.Client {
	t.Helper()
	hash, err := utils.HashPassword("p1")
	require.NoError(t, err)
	c, err := s.CreateClient(NewClient{
		Name:         "Acme",
		Email:        email,
		PasswordHash: hash,
		Business:     "Acme LLC",
		Status:       models.StatusActive,
	})
	require.NoError(t, err)
	return c
}

func TestOpenFileInitializesDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "db.json")
	s, err := OpenFile(path, "admin@incorpx.local")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"clients"`)
	assert.Contains(t, string(raw), "admin@incorpx.local")

	clients, err := s.ListClients()
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestCreateClientAssignsIDsAndSeedsFee(t *testing.T) {
	s := openTestStore(t)

	a := createTestClient(t, s, "a@x.com")
	b := createTestClient(t, s, "b@x.com")

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.BusinessID, b.BusinessID)
	assert.Regexp(t, `^\d{8}$`, a.BusinessID)

	require.Len(t, a.Payments, 1)
	assert.Equal(t, models.FormationFeeDescription, a.Payments[0].Description)
	assert.EqualValues(t, models.FormationFeeAmount, a.Payments[0].Amount)
	assert.Equal(t, models.PaymentStatusPaid, a.Payments[0].Status)
}

func TestCreateClientValidation(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CreateClient(NewClient{Name: "Acme", Email: "a@x.com"})
	assert.ErrorIs(t, err, models.ErrValidation)

	createTestClient(t, s, "a@x.com")
	_, err = s.CreateClient(NewClient{
		Name: "Other", Email: "a@x.com", PasswordHash: "h", Business: "Other LLC",
	})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestCreateClientDefaultsStatusActive(t *testing.T) {
	s := openTestStore(t)
	c, err := s.CreateClient(NewClient{
		Name: "Acme", Email: "a@x.com", PasswordHash: "h", Business: "Acme LLC",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, c.Status)
}

func TestUpdateClientPreservesUnpatchedFields(t *testing.T) {
	s := openTestStore(t)
	c := createTestClient(t, s, "a@x.com")

	status := models.StatusOnHold
	updated, err := s.UpdateClient(c.ID, models.ClientPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.StatusOnHold, updated.Status)
	assert.Equal(t, c.Name, updated.Name)
	assert.Equal(t, c.Email, updated.Email)
	assert.Equal(t, c.Business, updated.Business)
	assert.Equal(t, c.BusinessID, updated.BusinessID)
	assert.Len(t, updated.Payments, 1)
}

func TestUpdateClientUnknownID(t *testing.T) {
	s := openTestStore(t)
	_, err := s.UpdateClient("missing", models.ClientPatch{})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRemoveClientIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	c := createTestClient(t, s, "a@x.com")

	require.NoError(t, s.RemoveClient(c.ID))
	require.NoError(t, s.RemoveClient(c.ID))

	clients, err := s.ListClients()
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestFindByCredentialComparesHash(t *testing.T) {
	s := openTestStore(t)
	c := createTestClient(t, s, "a@x.com")

	found, err := s.FindByCredential("a@x.com", "p1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, c.ID, found.ID)

	found, err = s.FindByCredential("a@x.com", "wrong")
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = s.FindByCredential("nobody@x.com", "p1")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestAppendsPrependNewestFirst(t *testing.T) {
	s := openTestStore(t)
	c := createTestClient(t, s, "a@x.com")

	_, err := s.AddDocument(c.ID, models.Document{Type: "Certificate", Name: "first.pdf"})
	require.NoError(t, err)
	_, err = s.AddDocument(c.ID, models.Document{Type: "Certificate", Name: "second.pdf"})
	require.NoError(t, err)

	_, err = s.AddPayment(c.ID, models.Payment{Description: "Annual fee", Amount: 99})
	require.NoError(t, err)

	_, err = s.AddTicket(c.ID, models.Ticket{Subject: "Hello", Body: "World"})
	require.NoError(t, err)

	got, err := s.GetClient(c.ID)
	require.NoError(t, err)

	require.Len(t, got.Docs, 2)
	assert.Equal(t, "second.pdf", got.Docs[0].Name)
	assert.NotEmpty(t, got.Docs[0].ID)
	assert.NotEmpty(t, got.Docs[0].DateISO)

	require.Len(t, got.Payments, 2)
	assert.Equal(t, "Annual fee", got.Payments[0].Description)
	assert.Equal(t, models.PaymentStatusPaid, got.Payments[0].Status)

	require.Len(t, got.Tickets, 1)
	assert.Equal(t, models.TicketStatusOpen, got.Tickets[0].Status)
}

func TestAppendToUnknownClient(t *testing.T) {
	s := openTestStore(t)
	_, err := s.AddDocument("missing", models.Document{Type: "Certificate"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.AddPayment("missing", models.Payment{Description: "x", Amount: 1})
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = s.AddTicket("missing", models.Ticket{Subject: "x", Body: "y"})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestExportImportRoundTrip(t *testing.T) {
	s := openTestStore(t)
	createTestClient(t, s, "a@x.com")
	createTestClient(t, s, "b@x.com")

	before, err := s.ListClients()
	require.NoError(t, err)

	raw, err := s.Export()
	require.NoError(t, err)

	require.NoError(t, s.Reset())
	empty, err := s.ListClients()
	require.NoError(t, err)
	require.Empty(t, empty)

	require.NoError(t, s.Import(raw))
	after, err := s.ListClients()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMalformedFileResetsToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	s, err := OpenFile(path, "admin@incorpx.local")
	require.NoError(t, err)
	createTestClient(t, s, "a@x.com")

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	clients, err := s.ListClients()
	require.NoError(t, err)
	assert.Empty(t, clients)
}
