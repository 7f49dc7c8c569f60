package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	aiusecases "autocrm/internal/application/ai/usecases"
	ticketdto "autocrm/internal/application/ticket/dto"
	ticketusecases "autocrm/internal/application/ticket/usecases"
	"autocrm/internal/interfaces/http/handlers/testutil"
	"autocrm/internal/shared/constants"
	"autocrm/internal/shared/errors"
)

type mockGenerateDraftUC struct {
	result  *aiusecases.GenerateDraftResult
	err     error
	lastCmd aiusecases.GenerateDraftCommand
}

func (m *mockGenerateDraftUC) Execute(_ context.Context, cmd aiusecases.GenerateDraftCommand) (*aiusecases.GenerateDraftResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ ticketusecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *ticketusecases.ListTicketsResult
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, _ ticketusecases.ListTicketsQuery) (*ticketusecases.ListTicketsResult, error) {
	return m.result, m.err
}

func intPtr(v int) *int { return &v }

func TestAIHandler_GenerateDraft_Success(t *testing.T) {
	mockDraft := &mockGenerateDraftUC{
		result: &aiusecases.GenerateDraftResult{Draft: "Hi Alice, thanks for reaching out."},
	}
	mockGet := &mockGetTicketUC{
		result: &ticketdto.TicketDTO{
			ID:            5,
			Title:         "Cannot log in",
			Description:   "Password rejected since yesterday",
			CustomerEmail: "alice@example.com",
		},
	}
	mockList := &mockListTicketsUC{
		result: &ticketusecases.ListTicketsResult{
			Tickets: []ticketdto.TicketDTO{
				{ID: 5, Title: "Cannot log in", Status: "open"},
				{ID: 2, Title: "Billing question", Status: "closed", Rating: intPtr(4)},
			},
			Total: 2,
		},
	}
	handler := NewAIHandler(mockDraft, mockGet, mockList)

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/5/draft", nil)
	testutil.SetAuthContext(c, 2, "agent@autocrm.com", constants.RoleStaff)
	testutil.SetURLParam(c, "id", "5")

	handler.GenerateDraft(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "thanks for reaching out")

	assert.Equal(t, "Cannot log in", mockDraft.lastCmd.TicketTitle)
	assert.Equal(t, "alice@example.com", mockDraft.lastCmd.CustomerEmail)
	// Current ticket is excluded from the history summary.
	assert.Len(t, mockDraft.lastCmd.CustomerHistory, 1)
	if assert.NotNil(t, mockDraft.lastCmd.AverageRating) {
		assert.InDelta(t, 4.0, *mockDraft.lastCmd.AverageRating, 0.001)
	}
}

func TestAIHandler_GenerateDraft_InvalidID(t *testing.T) {
	handler := NewAIHandler(&mockGenerateDraftUC{}, &mockGetTicketUC{}, &mockListTicketsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/abc/draft", nil)
	testutil.SetAuthContext(c, 2, "agent@autocrm.com", constants.RoleStaff)
	testutil.SetURLParam(c, "id", "abc")

	handler.GenerateDraft(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAIHandler_GenerateDraft_TicketNotFound(t *testing.T) {
	mockGet := &mockGetTicketUC{err: errors.NewNotFoundError("ticket not found")}
	handler := NewAIHandler(&mockGenerateDraftUC{}, mockGet, &mockListTicketsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets/99/draft", nil)
	testutil.SetAuthContext(c, 2, "agent@autocrm.com", constants.RoleStaff)
	testutil.SetURLParam(c, "id", "99")

	handler.GenerateDraft(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
