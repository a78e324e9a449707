package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRejectsEmptyContent(t *testing.T) {
	r, _, _ := newTestServer(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{"empty content", map[string]interface{}{"content": ""}},
		{"whitespace content", map[string]interface{}{"content": "   "}},
		{"missing content", map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/chat", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestChatRejectsEmptyBody(t *testing.T) {
	r, _, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodPost, "/api/chat", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatCreatesConversationAndReplies(t *testing.T) {
	r, mock, _ := newTestServer(t)

	expectInsertReturningID(mock, "conversations", 1)
	expectInsertReturningID(mock, "messages", 1) // user message
	expectInsertReturningID(mock, "messages", 2) // agent reply

	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]interface{}{
		"content": "What is your return policy?",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["id"])
	assert.Equal(t, float64(1), body["conversation_id"])
	assert.Equal(t, false, body["is_user"])
	assert.Contains(t, body["content"], "within 30 days")
	assert.Contains(t, body["content"], "Is there anything else I can help you with?")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatReusesExistingConversation(t *testing.T) {
	r, mock, _ := newTestServer(t)

	mock.ExpectQuery(`SELECT \* FROM "conversations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	expectInsertReturningID(mock, "messages", 10)
	expectInsertReturningID(mock, "messages", 11)

	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]interface{}{
		"content":         "What is your return policy?",
		"conversation_id": 7,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(7), body["conversation_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatUnknownConversationIDOpensNewOne(t *testing.T) {
	r, mock, _ := newTestServer(t)

	mock.ExpectQuery(`SELECT \* FROM "conversations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	expectInsertReturningID(mock, "conversations", 3)
	expectInsertReturningID(mock, "messages", 5)
	expectInsertReturningID(mock, "messages", 6)

	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]interface{}{
		"content":         "What is your return policy?",
		"conversation_id": 999,
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["conversation_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChatUrgentMessageFilesTicketAndNotifies(t *testing.T) {
	r, mock, pipe := newTestServer(t)

	expectInsertReturningID(mock, "conversations", 1)
	expectInsertReturningID(mock, "messages", 1)
	expectInsertReturningID(mock, "messages", 2)

	w := doJSON(t, r, http.MethodPost, "/api/chat", map[string]interface{}{
		"content": "This is urgent, my order never arrived",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["content"], "URGENT")
	assert.Contains(t, body["content"], "#1")

	// The ticket landed in the shared store and the escalation was
	// recorded.
	assert.Equal(t, 1, pipe.TicketStore.Count())
	history := pipe.Notifier.History(0)
	require.Len(t, history, 1)
	assert.Equal(t, "urgent", history[0].Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}
