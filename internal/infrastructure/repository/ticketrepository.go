package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/db"
)

// filterClause matches the filter text against description and status.
// The LIKE escape character is '!' rather than backslash: MySQL lexes
// backslash as an escape inside string literals, so an ESCAPE '\'
// literal is a syntax error there while sqlite accepts it. '!' reads
// identically on both dialects.
const filterClause = "LOWER(description) LIKE ? ESCAPE '!' OR LOWER(status) LIKE ? ESCAPE '!'"

// sortFieldColumns maps the closed sort-field set to physical columns.
// Only values from this map ever reach ORDER BY.
var sortFieldColumns = map[ticket.SortField]string{
	ticket.SortFieldID:          "id",
	ticket.SortFieldDescription: "description",
	ticket.SortFieldStatus:      "status",
	ticket.SortFieldDate:        "date",
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"description": model.Description,
			"status":      model.Status,
			"date":        model.Date,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// RowsAffected may be 0 when updated values are identical to
	// existing values, so existence is not checked here.

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrNotFound
	}
	return nil
}

// List runs a normalized listing query: filter, count, order, page.
// The total count reflects all filtered rows, not just the returned
// page, and the ordering always ends with an ascending id tie-break so
// equal sort keys page deterministically.
func (r *TicketRepository) List(ctx context.Context, q ticket.ListQuery) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if q.Filter != "" {
		pattern := "%" + escapeLike(strings.ToLower(q.Filter)) + "%"
		query = query.Where(filterClause, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order(orderClause(q))
	query = query.Limit(q.PageSize).Offset(q.Offset())

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

func orderClause(q ticket.ListQuery) string {
	column, ok := sortFieldColumns[q.SortField]
	if !ok {
		column = "id"
	}

	direction := "ASC"
	if q.Descending {
		direction = "DESC"
	}

	if column == "id" {
		return "id " + direction
	}
	return column + " " + direction + ", id ASC"
}

// escapeLike escapes LIKE wildcards with the '!' escape character so
// filter text matches literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "!", "!!")
	s = strings.ReplaceAll(s, "%", "!%")
	s = strings.ReplaceAll(s, "_", "!_")
	return s
}
