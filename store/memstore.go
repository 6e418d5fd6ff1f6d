package store

import (
	"encoding/json"

	"incorpx-backend/models"
	"incorpx-backend/utils"
)

// ClientsKey is the single well-known key the whole client collection is
// serialized under.
const ClientsKey = "cf_clients"

// MemStore is the local-mode record store: the entire client collection is
// one JSON string under ClientsKey in an injected key-value store. Every read
// deserializes the whole collection, every write re-serializes it whole.
type MemStore struct {
	kv KV
}

func NewMemStore(kv KV) *MemStore {
	return &MemStore{kv: kv}
}

// load deserializes the collection; malformed stored JSON resets it to empty.
func (s *MemStore) load() []models.Client {
	raw, ok := s.kv.Get(ClientsKey)
	if !ok {
		return []models.Client{}
	}
	var clients []models.Client
	if err := json.Unmarshal([]byte(raw), &clients); err != nil {
		return []models.Client{}
	}
	return clients
}

func (s *MemStore) save(clients []models.Client) error {
	raw, err := json.Marshal(clients)
	if err != nil {
		return err
	}
	s.kv.Set(ClientsKey, string(raw))
	return nil
}

func (s *MemStore) ListClients() ([]models.Client, error) {
	return s.load(), nil
}

func (s *MemStore) GetClient(id string) (*models.Client, error) {
	clients := s.load()
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, models.ErrNotFound
}

// FindByCredential compares the raw stored credential directly; local mode
// keeps no hashes.
func (s *MemStore) FindByCredential(email, credential string) (*models.Client, error) {
	clients := s.load()
	for i := range clients {
		if clients[i].Email == email && clients[i].Pass == credential {
			return &clients[i], nil
		}
	}
	return nil, nil
}

func (s *MemStore) CreateClient(n NewClient) (*models.Client, error) {
	if err := validateNewClient(n); err != nil {
		return nil, err
	}
	clients := s.load()
	for i := range clients {
		if clients[i].Email == n.Email {
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
	clients = append(clients, client)
	if err := s.save(clients); err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *MemStore) UpdateClient(id string, patch models.ClientPatch) (*models.Client, error) {
	clients := s.load()
	for i := range clients {
		if clients[i].ID == id {
			clients[i].Apply(patch)
			if err := s.save(clients); err != nil {
				return nil, err
			}
			return &clients[i], nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *MemStore) RemoveClient(id string) error {
	clients := s.load()
	kept := clients[:0]
	for _, c := range clients {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return s.save(kept)
}

func (s *MemStore) AddDocument(clientID string, doc models.Document) (*models.Document, error) {
	clients := s.load()
	for i := range clients {
		if clients[i].ID == clientID {
			fillDocument(&doc)
			clients[i].Docs = append([]models.Document{doc}, clients[i].Docs...)
			if err := s.save(clients); err != nil {
				return nil, err
			}
			return &doc, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *MemStore) AddPayment(clientID string, p models.Payment) (*models.Payment, error) {
	clients := s.load()
	for i := range clients {
		if clients[i].ID == clientID {
			fillPayment(&p)
			clients[i].Payments = append([]models.Payment{p}, clients[i].Payments...)
			if err := s.save(clients); err != nil {
				return nil, err
			}
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *MemStore) AddTicket(clientID string, t models.Ticket) (*models.Ticket, error) {
	clients := s.load()
	for i := range clients {
		if clients[i].ID == clientID {
			fillTicket(&t)
			clients[i].Tickets = append([]models.Ticket{t}, clients[i].Tickets...)
			if err := s.save(clients); err != nil {
				return nil, err
			}
			return &t, nil
		}
	}
	return nil, models.ErrNotFound
}

func (s *MemStore) Export() ([]byte, error) {
	return json.MarshalIndent(s.load(), "", "  ")
}

func (s *MemStore) Import(raw []byte) error {
	var clients []models.Client
	if err := json.Unmarshal(raw, &clients); err != nil {
		return err
	}
	return s.save(clients)
}

func (s *MemStore) Reset() error {
	s.kv.Delete(ClientsKey)
	return nil
}
