package models

import "ticketdesk/internal/shared/constants"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:50;not null;index"`
	Date        int64  `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
