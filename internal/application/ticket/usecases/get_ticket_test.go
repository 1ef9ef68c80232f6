package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/ticket"
	apperrors "ticketdesk/internal/shared/errors"
)

func TestGetTicketUseCase_Execute_Success(t *testing.T) {
	existing := reconstructTicket(t, 3, "Investigate slow queries", ticket.StatusOpen)

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			assert.Equal(t, uint(3), ticketID)
			return existing, nil
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), 3)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(3), result.ID)
	assert.Equal(t, "Investigate slow queries", result.Description)
}

func TestGetTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, ticket.ErrNotFound
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), 99)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetTicketUseCase_Execute_ZeroID(t *testing.T) {
	useCase := NewGetTicketUseCase(&mockTicketRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), 0)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.New("connection refused")
		},
	}

	useCase := NewGetTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), 3)

	require.Error(t, err)
	assert.Nil(t, result)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
