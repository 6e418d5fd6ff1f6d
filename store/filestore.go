package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"incorpx-backend/models"
	"incorpx-backend/utils"
)

// AdminRecord is the fixed admin account slot kept alongside the clients in
// the data file.
type AdminRecord struct {
	Email        string  `json:"email"`
	PasswordHash *string `json:"passwordHash"`
}

type fileData struct {
	Clients []models.Client `json:"clients"`
	Admin   AdminRecord     `json:"admin"`
}

// FileStore keeps the whole collection in one JSON file on disk. Every
// mutating call reads the file, changes the record in memory and rewrites the
// file whole. A process-local mutex serializes callers; cross-process locking
// is out of scope for a single-instance deployment.
type FileStore struct {
	path       string
	adminEmail string
	mu         sync.Mutex
}

// OpenFile opens the store at path, creating the directory and an empty data
// file when missing.
func OpenFile(path, adminEmail string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	s := &FileStore{path: path, adminEmail: adminEmail}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(s.empty()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Path returns the location of the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) empty() fileData {
	return fileData{
		Clients: []models.Client{},
		Admin:   AdminRecord{Email: s.adminEmail},
	}
}

// load reads the whole file. Malformed JSON resets the collection to empty
// rather than failing; this is the supported demo reset path.
func (s *FileStore) load() fileData {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s.empty()
	}
	var data fileData
	if err := json.Unmarshal(raw, &data); err != nil {
		return s.empty()
	}
	if data.Clients == nil {
		data.Clients = []models.Client{}
	}
	return data
}

func (s *FileStore) save(data fileData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o644)
}

func (s *FileStore) ListClients() ([]models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load().Clients, nil
}

func (s *FileStore) GetClient(id string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	for i := range data.Clients {
		if data.Clients[i].ID == id {
			return &data.Clients[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// FindByCredential matches the email and compares the raw credential against
// the stored bcrypt hash.
func (s *FileStore) FindByCredential(email, credential string) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	for i := range data.Clients {
		c := &data.Clients[i]
		if c.Email == email && utils.CheckPasswordHash(credential, c.PasswordHash) {
			return c, nil
		}
	}
	return nil, nil
}

func (s *FileStore) CreateClient(n NewClient) (*models.Client, error) {
	if err := validateNewClient(n); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	for i := range data.Clients {
		if data.Clients[i].Email == n.Email {
			return nil, models.ErrEmailTaken
		}
	}
	status := n.Status
	if status == "" {
		status = models.StatusActive
	}
	client := models.Client{
		ID:           utils.NewID(),
		Name:         n.Name,
		Email:        n.Email,
		Pass:         n.Pass,
		PasswordHash: n.PasswordHash,
		Business:     n.Business,
		BusinessID:   utils.NewBusinessID(),
		Status:       status,
		Docs:         []models.Document{},
		Payments:     []models.Payment{formationFee(utils.NewID())},
		Tickets:      []models.Ticket{},
	}
	data.Clients = append(data.Clients, client)
	if err := s.save(data); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *FileStore) UpdateClient(id string, patch models.ClientPatch) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	for i := range data.Clients {
		if data.Clients[i].ID == id {
			data.Clients[i].Apply(patch)
			if err := s.save(data); err != nil {
				return nil, err
			}
			return &data.Clients[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *FileStore) RemoveClient(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	kept := data.Clients[:0]
	for _, c := range data.Clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	data.Clients = kept
	return s.save(data)
}

func (s *FileStore) AddDocument(clientID string, doc models.Document) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	for i := range data.Clients {
		if data.Clients[i].ID == clientID {
			fillDocument(&doc)
			data.Clients[i].Docs = append([]models.Document{doc}, data.Clients[i].Docs...)
			if err := s.save(data); err != nil {
				return nil, err
			}
			return &doc, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *FileStore) AddPayment(clientID string, p models.Payment) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	for i := range data.Clients {
		if data.Clients[i].ID == clientID {
			fillPayment(&p)
			data.Clients[i].Payments = append([]models.Payment{p}, data.Clients[i].Payments...)
			if err := s.save(data); err != nil {
				return nil, err
			}
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *FileStore) AddTicket(clientID string, t models.Ticket) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	for i := range data.Clients {
		if data.Clients[i].ID == clientID {
			fillTicket(&t)
			data.Clients[i].Tickets = append([]models.Ticket{t}, data.Clients[i].Tickets...)
			if err := s.save(data); err != nil {
				return nil, err
			}
			return &t, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *FileStore) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.load().Clients, "", "  ")
}

func (s *FileStore) Import(raw []byte) error {
	var clients []models.Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	data.Clients = clients
	return s.save(data)
}

func (s *FileStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.load()
	data.Clients = []models.Client{}
	return s.save(data)
}
