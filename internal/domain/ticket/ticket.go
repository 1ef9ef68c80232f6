package ticket

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"

	maxDescriptionLength = 5000
	maxStatusLength      = 50
)

// Ticket is the tracked work item. Fields are unexported so all state
// changes go through the constructors and mutators below.
type Ticket struct {
	id          uint
	description string
	status      string
	date        time.Time
}

func NewTicket(description, status string, date time.Time) (*Ticket, error) {
	if err := validateFields(description, status, date); err != nil {
		return nil, err
	}

	return &Ticket{
		description: description,
		status:      status,
		date:        date,
	}, nil
}

// ReconstructTicket rehydrates a ticket from persistence without
// re-running creation-time checks beyond the basics.
func ReconstructTicket(id uint, description, status string, date time.Time) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	return &Ticket{
		id:          id,
		description: description,
		status:      status,
		date:        date,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() string {
	return t.status
}

func (t *Ticket) Date() time.Time {
	return t.date
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Update replaces the mutable fields as one unit.
func (t *Ticket) Update(description, status string, date time.Time) error {
	if err := validateFields(description, status, date); err != nil {
		return err
	}

	t.description = description
	t.status = status
	t.date = date
	return nil
}

func validateFields(description, status string, date time.Time) error {
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if len(strings.TrimSpace(status)) == 0 {
		return fmt.Errorf("status is required")
	}
	if len(status) > maxStatusLength {
		return fmt.Errorf("status exceeds maximum length of %d characters", maxStatusLength)
	}
	if date.IsZero() {
		return fmt.Errorf("date is required")
	}
	return nil
}
