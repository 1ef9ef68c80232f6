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

func TestDeleteTicketUseCase_Execute_Success(t *testing.T) {
	var deletedID uint
	mockRepo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			deletedID = ticketID
			return nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})
	err := useCase.Execute(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, uint(7), deletedID)
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			return ticket.ErrNotFound
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})
	err := useCase.Execute(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteTicketUseCase_Execute_ZeroID(t *testing.T) {
	useCase := NewDeleteTicketUseCase(&mockTicketRepository{}, &mockLogger{})
	err := useCase.Execute(context.Background(), 0)

	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestDeleteTicketUseCase_Execute_RepositoryError(t *testing.T) {
	mockRepo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, ticketID uint) error {
			return errors.New("connection refused")
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})
	err := useCase.Execute(context.Background(), 7)

	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
