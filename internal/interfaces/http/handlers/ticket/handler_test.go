package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/application/ticket/dto"
	"ticketdesk/internal/application/ticket/usecases"
	domainticket "ticketdesk/internal/domain/ticket"
	"ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type mockCreateExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error)
}

func (m *mockCreateExecutor) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockGetExecutor struct {
	ExecuteFunc func(ctx context.Context, ticketID uint) (*dto.TicketDTO, error)
}

func (m *mockGetExecutor) Execute(ctx context.Context, ticketID uint) (*dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, ticketID)
}

type mockListExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
	Calls       int
}

func (m *mockListExecutor) Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.Calls++
	return m.ExecuteFunc(ctx, query)
}

type mockUpdateExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error)
	Calls       int
}

func (m *mockUpdateExecutor) Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
	m.Calls++
	return m.ExecuteFunc(ctx, cmd)
}

type mockDeleteExecutor struct {
	ExecuteFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockDeleteExecutor) Execute(ctx context.Context, ticketID uint) error {
	return m.ExecuteFunc(ctx, ticketID)
}

func setupHandler(
	create *mockCreateExecutor,
	get *mockGetExecutor,
	list *mockListExecutor,
	update *mockUpdateExecutor,
	del *mockDeleteExecutor,
) *gin.Engine {
	gin.SetMode(gin.TestMode)

	if create == nil {
		create = &mockCreateExecutor{}
	}
	if get == nil {
		get = &mockGetExecutor{}
	}
	if list == nil {
		list = &mockListExecutor{}
	}
	if update == nil {
		update = &mockUpdateExecutor{}
	}
	if del == nil {
		del = &mockDeleteExecutor{}
	}

	handler := NewTicketHandler(create, get, list, update, del)

	engine := gin.New()
	tickets := engine.Group("/api/tickets")
	{
		tickets.GET("", handler.ListTickets)
		tickets.POST("", handler.CreateTicket)
		tickets.GET("/:id", handler.GetTicket)
		tickets.PUT("/:id", handler.UpdateTicket)
		tickets.DELETE("/:id", handler.DeleteTicket)
	}
	return engine
}

func doRequest(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestTicketHandler_ListTickets(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	var gotQuery usecases.ListTicketsQuery
	list := &mockListExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
			gotQuery = query
			return &usecases.ListTicketsResult{
				Tickets: []dto.TicketDTO{
					{ID: 4, Description: "Fix login redirect", Status: "Open", Date: date},
				},
				TotalCount: 10,
				Page:       2,
				PageSize:   3,
				TotalPages: 4,
			}, nil
		},
	}

	engine := setupHandler(nil, nil, list, nil, nil)
	w := doRequest(engine, http.MethodGet, "/api/tickets?page=2&pageSize=3&sortColumn=date&sortOrder=desc&filter=login", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListTicketsQuery{
		Page:       2,
		PageSize:   3,
		SortColumn: "date",
		SortOrder:  "desc",
		Filter:     "login",
	}, gotQuery)

	var resp struct {
		Success bool                `json:"success"`
		Data    ListTicketsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(10), resp.Data.TotalCount)
	assert.Equal(t, 2, resp.Data.CurrentPage)
	assert.Equal(t, 3, resp.Data.PageSize)
	assert.Equal(t, 4, resp.Data.TotalPages)
	require.Len(t, resp.Data.Tickets, 1)
	assert.Equal(t, uint(4), resp.Data.Tickets[0].ID)
}

func TestTicketHandler_ListTickets_DefaultsApplied(t *testing.T) {
	var gotQuery usecases.ListTicketsQuery
	list := &mockListExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
			gotQuery = query
			return &usecases.ListTicketsResult{Tickets: []dto.TicketDTO{}, Page: 1, PageSize: 8, TotalPages: 1}, nil
		},
	}

	engine := setupHandler(nil, nil, list, nil, nil)
	w := doRequest(engine, http.MethodGet, "/api/tickets", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, gotQuery.Page)
	assert.Equal(t, 8, gotQuery.PageSize)
	assert.Empty(t, gotQuery.SortColumn)
	assert.Empty(t, gotQuery.Filter)
}

func TestTicketHandler_ListTickets_InvalidPaging(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "zero page", path: "/api/tickets?page=0"},
		{name: "negative page", path: "/api/tickets?page=-1"},
		{name: "zero page size", path: "/api/tickets?pageSize=0"},
		{name: "non-numeric page", path: "/api/tickets?page=abc"},
		{name: "non-numeric page size", path: "/api/tickets?pageSize=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &failingRepository{t: t}
			// The real use case sits behind the handler so the whole
			// rejection path is exercised; the store fails the test if
			// it is ever reached.
			list := usecases.NewListTicketsUseCase(repo, noopLogger{})

			engine := setupHandler(nil, nil, &mockListExecutor{ExecuteFunc: list.Execute}, nil, nil)
			w := doRequest(engine, http.MethodGet, tt.path, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

// failingRepository fails the test on any access.
type failingRepository struct {
	t *testing.T
}

func (r *failingRepository) Save(ctx context.Context, tk *domainticket.Ticket) error {
	r.t.Fatal("store must not be touched")
	return nil
}

func (r *failingRepository) Update(ctx context.Context, tk *domainticket.Ticket) error {
	r.t.Fatal("store must not be touched")
	return nil
}

func (r *failingRepository) Delete(ctx context.Context, ticketID uint) error {
	r.t.Fatal("store must not be touched")
	return nil
}

func (r *failingRepository) GetByID(ctx context.Context, ticketID uint) (*domainticket.Ticket, error) {
	r.t.Fatal("store must not be touched")
	return nil, nil
}

func (r *failingRepository) List(ctx context.Context, query domainticket.ListQuery) ([]*domainticket.Ticket, int64, error) {
	r.t.Fatal("store must not be touched")
	return nil, 0, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	get := &mockGetExecutor{
		ExecuteFunc: func(ctx context.Context, ticketID uint) (*dto.TicketDTO, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	engine := setupHandler(nil, get, nil, nil, nil)
	w := doRequest(engine, http.MethodGet, "/api/tickets/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_GetTicket_InvalidID(t *testing.T) {
	engine := setupHandler(nil, &mockGetExecutor{
		ExecuteFunc: func(ctx context.Context, ticketID uint) (*dto.TicketDTO, error) {
			t.Fatal("executor must not run for an invalid id")
			return nil, nil
		},
	}, nil, nil, nil)

	w := doRequest(engine, http.MethodGet, "/api/tickets/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_CreateTicket(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	create := &mockCreateExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
			return &dto.TicketDTO{ID: 11, Description: cmd.Description, Status: cmd.Status, Date: cmd.Date}, nil
		},
	}

	engine := setupHandler(create, nil, nil, nil, nil)
	w := doRequest(engine, http.MethodPost, "/api/tickets", map[string]interface{}{
		"description": "Fix login redirect",
		"status":      "Open",
		"date":        date.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    dto.TicketDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(11), resp.Data.ID)
	assert.Equal(t, "Fix login redirect", resp.Data.Description)
}

func TestTicketHandler_CreateTicket_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing description",
			body: map[string]interface{}{"status": "Open", "date": "2026-03-14T00:00:00Z"},
		},
		{
			name: "missing status",
			body: map[string]interface{}{"description": "Fix login redirect", "date": "2026-03-14T00:00:00Z"},
		},
		{
			name: "missing date",
			body: map[string]interface{}{"description": "Fix login redirect", "status": "Open"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			create := &mockCreateExecutor{
				ExecuteFunc: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error) {
					t.Fatal("executor must not run for an invalid body")
					return nil, nil
				},
			}

			engine := setupHandler(create, nil, nil, nil, nil)
			w := doRequest(engine, http.MethodPost, "/api/tickets", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestTicketHandler_UpdateTicket_IDMismatch(t *testing.T) {
	update := &mockUpdateExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
			return nil, nil
		},
	}

	engine := setupHandler(nil, nil, nil, update, nil)
	w := doRequest(engine, http.MethodPut, "/api/tickets/3", map[string]interface{}{
		"id":          7,
		"description": "Fix login redirect",
		"status":      "Open",
		"date":        "2026-03-14T00:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, update.Calls)
}

func TestTicketHandler_UpdateTicket(t *testing.T) {
	update := &mockUpdateExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
			assert.Equal(t, uint(3), cmd.TicketID)
			return &dto.TicketDTO{ID: 3, Description: cmd.Description, Status: cmd.Status, Date: cmd.Date}, nil
		},
	}

	engine := setupHandler(nil, nil, nil, update, nil)
	w := doRequest(engine, http.MethodPut, "/api/tickets/3", map[string]interface{}{
		"id":          3,
		"description": "Fix login redirect on mobile",
		"status":      "Closed",
		"date":        "2026-04-01T00:00:00Z",
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, update.Calls)
}

func TestTicketHandler_UpdateTicket_NotFound(t *testing.T) {
	update := &mockUpdateExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	engine := setupHandler(nil, nil, nil, update, nil)
	w := doRequest(engine, http.MethodPut, "/api/tickets/99", map[string]interface{}{
		"id":          99,
		"description": "Does not exist",
		"status":      "Open",
		"date":        "2026-03-14T00:00:00Z",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_DeleteTicket(t *testing.T) {
	del := &mockDeleteExecutor{
		ExecuteFunc: func(ctx context.Context, ticketID uint) error {
			assert.Equal(t, uint(7), ticketID)
			return nil
		},
	}

	engine := setupHandler(nil, nil, nil, nil, del)
	w := doRequest(engine, http.MethodDelete, "/api/tickets/7", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTicketHandler_DeleteTicket_NotFound(t *testing.T) {
	del := &mockDeleteExecutor{
		ExecuteFunc: func(ctx context.Context, ticketID uint) error {
			return errors.NewNotFoundError("ticket not found")
		},
	}

	engine := setupHandler(nil, nil, nil, nil, del)
	w := doRequest(engine, http.MethodDelete, "/api/tickets/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
