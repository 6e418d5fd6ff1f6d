package models

// Client statuses set by the admin panel.
const (
	StatusActive = "Active"
	StatusOnHold = "On Hold"
)

// Formation fee seeded on every new client account.
const (
	FormationFeeDescription = "Company formation fee"
	FormationFeeAmount      = 399
)

// Client is one customer account with its documents, payments and tickets.
// Pass carries the raw credential in local mode; PasswordHash carries the
// bcrypt hash in server mode. Exactly one of them is set per record.
type Client struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Pass         string     `json:"pass,omitempty"`
	PasswordHash string     `json:"passwordHash,omitempty"`
	Business     string     `json:"business"`
	BusinessID   string     `json:"businessId"`
	Status       string     `json:"status"`
	Docs         []Document `json:"docs"`
	Payments     []Payment  `json:"payments"`
	Tickets      []Ticket   `json:"tickets"`
}

// ClientPatch is a partial update; nil fields are preserved on merge.
// BusinessID is deliberately absent: it never changes after creation.
type ClientPatch struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Pass         *string `json:"pass,omitempty"`
	PasswordHash *string `json:"passwordHash,omitempty"`
	Business     *string `json:"business,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// Apply merges the set fields of the patch into the client.
func (c *Client) Apply(p ClientPatch) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Pass != nil {
		c.Pass = *p.Pass
	}
	if p.PasswordHash != nil {
		c.PasswordHash = *p.PasswordHash
	}
	if p.Business != nil {
		c.Business = *p.Business
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}
