package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		description string
		status      string
		date        time.Time
		wantErr     string
	}{
		{
			name:        "valid ticket",
			description: "Fix login redirect",
			status:      StatusOpen,
			date:        date,
		},
		{
			name:        "empty description",
			description: "",
			status:      StatusOpen,
			date:        date,
			wantErr:     "description is required",
		},
		{
			name:        "whitespace description",
			description: "   ",
			status:      StatusOpen,
			date:        date,
			wantErr:     "description is required",
		},
		{
			name:        "description too long",
			description: strings.Repeat("a", 5001),
			status:      StatusOpen,
			date:        date,
			wantErr:     "description exceeds maximum length",
		},
		{
			name:        "empty status",
			description: "Fix login redirect",
			status:      "",
			date:        date,
			wantErr:     "status is required",
		},
		{
			name:        "zero date",
			description: "Fix login redirect",
			status:      StatusOpen,
			date:        time.Time{},
			wantErr:     "date is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.description, tt.status, tt.date)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(0), ticket.ID())
			assert.Equal(t, tt.description, ticket.Description())
			assert.Equal(t, tt.status, ticket.Status())
			assert.Equal(t, tt.date, ticket.Date())
		})
	}
}

func TestReconstructTicket(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	ticket, err := ReconstructTicket(42, "Investigate slow queries", StatusClosed, date)
	require.NoError(t, err)
	assert.Equal(t, uint(42), ticket.ID())
	assert.Equal(t, StatusClosed, ticket.Status())

	_, err = ReconstructTicket(0, "Investigate slow queries", StatusClosed, date)
	assert.Error(t, err)

	_, err = ReconstructTicket(42, "", StatusClosed, date)
	assert.Error(t, err)
}

func TestTicketSetID(t *testing.T) {
	ticket, err := NewTicket("Fix login redirect", StatusOpen, time.Now())
	require.NoError(t, err)

	require.NoError(t, ticket.SetID(7))
	assert.Equal(t, uint(7), ticket.ID())

	assert.Error(t, ticket.SetID(8), "second SetID must fail")
	assert.Equal(t, uint(7), ticket.ID())
}

func TestTicketSetIDZero(t *testing.T) {
	ticket, err := NewTicket("Fix login redirect", StatusOpen, time.Now())
	require.NoError(t, err)

	assert.Error(t, ticket.SetID(0))
}

func TestTicketUpdate(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	newDate := date.AddDate(0, 0, 3)

	ticket, err := ReconstructTicket(1, "Fix login redirect", StatusOpen, date)
	require.NoError(t, err)

	require.NoError(t, ticket.Update("Fix login redirect on mobile", StatusClosed, newDate))
	assert.Equal(t, "Fix login redirect on mobile", ticket.Description())
	assert.Equal(t, StatusClosed, ticket.Status())
	assert.Equal(t, newDate, ticket.Date())

	err = ticket.Update("", StatusClosed, newDate)
	require.Error(t, err)
	assert.Equal(t, "Fix login redirect on mobile", ticket.Description(), "failed update must not mutate")
}
