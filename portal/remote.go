package portal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"incorpx-backend/models"
)

// RemoteBackend forwards every operation to the HTTP API, authenticated with
// the bearer token obtained at dial time. Credentials are hashed server-side.
type RemoteBackend struct {
	baseURL string
	token   string
	hc      *http.Client
}

func dial(baseURL, adminEmail, adminPassword string, hc *http.Client) (*RemoteBackend, error) {
	b := &RemoteBackend{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}

	var health struct {
		OK bool `json:"ok"`
	}
	if err := b.doJSON(http.MethodGet, "/api/health", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	if !health.OK {
		return nil, errors.New("health probe declined")
	}

	var login struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": adminEmail, "password": adminPassword}
	if err := b.doJSON(http.MethodPost, "/api/admin/login", body, &login, http.StatusOK); err != nil {
		return nil, err
	}
	b.token = login.Token
	return b, nil
}

// apiError maps the response status onto the shared error values.
func apiError(status int, message string) error {
	var base error
	switch status {
	case http.StatusBadRequest:
		base = models.ErrValidation
	case http.StatusUnauthorized:
		base = models.ErrInvalidCredentials
	case http.StatusNotFound:
		base = models.ErrNotFound
	case http.StatusConflict:
		base = models.ErrEmailTaken
	default:
		return fmt.Errorf("server error (%d): %s", status, message)
	}
	if message == "" {
		return base
	}
	return fmt.Errorf("%w: %s", base, message)
}

func (b *RemoteBackend) do(method, path string, contentType string, body io.Reader, expect int) ([]byte, error) {
	req, err := http.NewRequest(method, b.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}

	resp, err := b.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != expect {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &errBody)
		return nil, apiError(resp.StatusCode, errBody.Error)
	}
	return raw, nil
}

func (b *RemoteBackend) doJSON(method, path string, body, out interface{}, expect int) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}
	raw, err := b.do(method, path, contentType, reader, expect)
	if err != nil {
		return err
	}
	if out != nil {
		return json.Unmarshal(raw, out)
	}
	return nil
}

func (b *RemoteBackend) ListClients() ([]models.Client, error) {
	var clients []models.Client
	err := b.doJSON(http.MethodGet, "/api/admin/clients", nil, &clients, http.StatusOK)
	return clients, err
}

func (b *RemoteBackend) CreateClient(in NewClientInput) (*models.Client, error) {
	body := map[string]string{
		"name":     in.Name,
		"email":    in.Email,
		"password": in.Password,
		"business": in.Business,
	}
	if in.Status != "" {
		body["status"] = in.Status
	}
	var client models.Client
	if err := b.doJSON(http.MethodPost, "/api/admin/clients", body, &client, http.StatusCreated); err != nil {
		return nil, err
	}
	return &client, nil
}

func (b *RemoteBackend) UpdateClient(id string, patch models.ClientPatch) (*models.Client, error) {
	// A raw credential in the patch travels as "password" and is hashed
	// server-side.
	body := struct {
		Name     *string `json:"name,omitempty"`
		Email    *string `json:"email,omitempty"`
		Password *string `json:"password,omitempty"`
		Business *string `json:"business,omitempty"`
		Status   *string `json:"status,omitempty"`
	}{patch.Name, patch.Email, patch.Pass, patch.Business, patch.Status}

	var client models.Client
	if err := b.doJSON(http.MethodPatch, "/api/admin/clients/"+url.PathEscape(id), body, &client, http.StatusOK); err != nil {
		return nil, err
	}
	return &client, nil
}

func (b *RemoteBackend) DeleteClient(id string) error {
	return b.doJSON(http.MethodDelete, "/api/admin/clients/"+url.PathEscape(id), nil, nil, http.StatusOK)
}

func (b *RemoteBackend) FindByCredential(email, password string) (*models.Client, error) {
	var login struct {
		Token string `json:"token"`
		ID    string `json:"id"`
	}
	body := map[string]string{"email": email, "password": password}
	err := b.doJSON(http.MethodPost, "/api/client/login", body, &login, http.StatusOK)
	if errors.Is(err, models.ErrInvalidCredentials) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var client models.Client
	if err := b.doJSON(http.MethodGet, "/api/client/portal?id="+url.QueryEscape(login.ID), nil, &client, http.StatusOK); err != nil {
		return nil, err
	}
	return &client, nil
}

func (b *RemoteBackend) AddDocument(clientID, docType, filename string, data []byte) (*models.Document, error) {
	if len(data) == 0 {
		return nil, models.ErrNoFile
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writer.WriteField("type", docType); err != nil {
		return nil, err
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	raw, err := b.do(http.MethodPost, "/api/admin/clients/"+url.PathEscape(clientID)+"/docs",
		writer.FormDataContentType(), &buf, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (b *RemoteBackend) AddPayment(clientID string, p models.Payment) error {
	body := map[string]interface{}{
		"description": p.Description,
		"amount":      p.Amount,
		"status":      p.Status,
	}
	return b.doJSON(http.MethodPost, "/api/admin/clients/"+url.PathEscape(clientID)+"/payments",
		body, nil, http.StatusCreated)
}

func (b *RemoteBackend) AddTicket(clientID, subject, body string) (*models.Ticket, error) {
	payload := map[string]string{"subject": subject, "body": body}
	var ticket models.Ticket
	if err := b.doJSON(http.MethodPost, "/api/client/"+url.PathEscape(clientID)+"/tickets",
		payload, &ticket, http.StatusCreated); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (b *RemoteBackend) Export() ([]byte, error) {
	return b.do(http.MethodGet, "/api/admin/export", "", nil, http.StatusOK)
}

func (b *RemoteBackend) Import(data []byte) error {
	return b.doJSON(http.MethodPost, "/api/admin/import", json.RawMessage(data), nil, http.StatusOK)
}
