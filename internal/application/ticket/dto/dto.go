package dto

import (
	"time"

	"ticketdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:          t.ID(),
		Description: t.Description(),
		Status:      t.Status(),
		Date:        t.Date(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	items := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, *ToTicketDTO(t))
	}
	return items
}
