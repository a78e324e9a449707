package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"supportdesk/agents"
	dbpkg "supportdesk/db"
)

// newTestServer wires the handlers against a sqlmock-backed gorm
// handle and a rule-only pipeline with every notification channel
// disabled, so no simulated sends slow the tests down.
func newTestServer(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *agents.Pipeline) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open("postgres", sqlDB)
	require.NoError(t, err)
	gdb.LogMode(false)
	t.Cleanup(func() { gdb.Close() })

	pipe := agents.NewPipeline(nil, false, false, zap.NewNop())

	r := gin.New()
	r.Use(dbpkg.SetDBtoContext(gdb))
	r.Use(agents.SetPipelineToContext(pipe))
	r.POST("/api/chat", Chat)
	r.POST("/api/tickets", CreateTicket)
	r.GET("/api/tickets", GetTickets)
	r.PATCH("/api/tickets/:id", UpdateTicket)
	r.GET("/api/conversations/:id", GetConversationByID)
	r.GET("/api/notifications", GetNotifications)

	return r, mock, pipe
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func expectInsertReturningID(mock sqlmock.Sqlmock, table string, id int64) {
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "` + table + `"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))
	mock.ExpectCommit()
}
