package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Ticket is a support request. Its customers and agents are attached through
// link rows and are not part of the entity itself.
type Ticket struct {
	id          uint
	title       string
	description string
	status      string
	priority    int
	createdAt   time.Time
	updatedAt   time.Time
}

// Changes lists the fields of a partial update. A nil, empty or zero field
// counts as not supplied and leaves the current value untouched.
type Changes struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *int
}

// IsEmpty reports whether no field carries a value to apply.
func (c Changes) IsEmpty() bool {
	return !suppliedText(c.Title) && !suppliedText(c.Description) &&
		!suppliedText(c.Status) && !suppliedPriority(c.Priority)
}

func suppliedText(p *string) bool { return p != nil && *p != "" }

func suppliedPriority(p *int) bool { return p != nil && *p != 0 }

func NewTicket(title, description, status string, priority int) (*Ticket, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if strings.TrimSpace(status) == "" {
		return nil, fmt.Errorf("status is required")
	}
	if priority == 0 {
		return nil, fmt.Errorf("priority is required")
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state without validation.
func ReconstructTicket(
	id uint,
	title, description, status string,
	priority int,
	createdAt, updatedAt time.Time,
) *Ticket {
	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Ticket) ID() uint             { return t.id }
func (t *Ticket) Title() string        { return t.title }
func (t *Ticket) Description() string  { return t.description }
func (t *Ticket) Status() string       { return t.status }
func (t *Ticket) Priority() int        { return t.priority }
func (t *Ticket) CreatedAt() time.Time { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time { return t.updatedAt }

// SetID assigns the store-generated identifier. It can only be set once.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Apply overwrites every supplied field in c and reports whether anything was applied.
func (t *Ticket) Apply(c Changes) bool {
	if c.IsEmpty() {
		return false
	}

	if suppliedText(c.Title) {
		t.title = *c.Title
	}
	if suppliedText(c.Description) {
		t.description = *c.Description
	}
	if suppliedText(c.Status) {
		t.status = *c.Status
	}
	if suppliedPriority(c.Priority) {
		t.priority = *c.Priority
	}
	t.updatedAt = time.Now()

	return true
}
