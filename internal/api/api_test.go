package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variable-maker/server/internal/agent/graph/conversations"
	"github.com/variable-maker/server/internal/agent/model"
	"github.com/variable-maker/server/internal/agent/repo"
	"github.com/variable-maker/server/internal/core"
)

type fakeRunner struct {
	calls []model.QueryInput
	err   error
}

func (f *fakeRunner) Invoke(_ context.Context, in model.QueryInput) (*model.ProcessResult, error) {
	f.calls = append(f.calls, in)
	res := &model.ProcessResult{
		ConversationID: in.ConversationID,
		InputType:      model.InputWord,
		Input:          in.Query,
		CaseStyle:      in.CaseStyle,
		Abbreviations:  []string{"taxRed"},
		Response:       "'" + in.Query + "' 약어 (camelCase): taxRed",
	}
	if f.err != nil {
		res.Response = "오류가 발생했습니다: boom\n다시 시도해주세요."
		return res, f.err
	}
	return res, nil
}

type testServer struct {
	router *gin.Engine
	runner *fakeRunner
	repo   *repo.MemoryConversationRepository
}

func newTestServer(t *testing.T, checks map[string]HealthCheck) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	memRepo := repo.NewMemoryConversationRepository()
	mm := conversations.NewMessagesManager(memRepo, model.ConversationConfig{})
	runner := &fakeRunner{}

	router := NewRouter(
		RouterConfig{Environment: core.Testing, AllowOrigins: []string{"*"}, Version: "1.0.0"},
		NewHealthHandler("1.0.0", checks),
		NewVariableHandler(runner, mm, model.CamelCase),
	)
	return &testServer{router: router, runner: runner, repo: memRepo}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestRootAndHealth(t *testing.T) {
	s := newTestServer(t, map[string]HealthCheck{
		"redis": func(context.Context) error { return nil },
	})

	w := s.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	root := decode[map[string]string](t, w)
	assert.Equal(t, "1.0.0", root["version"])
	assert.Equal(t, "healthy", root["status"])

	w = s.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[HealthResponse](t, w)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.Dependencies["redis"])
}

func TestHealthDegraded(t *testing.T) {
	s := newTestServer(t, map[string]HealthCheck{
		"redis": func(context.Context) error { return errors.New("connection refused") },
	})

	w := s.do(t, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	health := decode[HealthResponse](t, w)
	assert.Equal(t, "degraded", health.Status)
	assert.Equal(t, "down", health.Dependencies["redis"])
}

func TestRequestIDHeader(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, "req-42", w.Header().Get(RequestIDHeader))
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewCORSConfigExplicitOrigins(t *testing.T) {
	cfg := newCORSConfig([]string{" http://a.example ", "", "http://b.example"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowOrigins)

	assert.True(t, newCORSConfig(nil).AllowAllOrigins)
}

func TestCaseStyles(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodGet, "/variable/case-styles", "")
	require.Equal(t, http.StatusOK, w.Code)
	styles := decode[[]model.CaseStyleOption](t, w)
	require.Len(t, styles, 5)
	assert.Equal(t, model.CamelCase, styles[0].Style)
	assert.Equal(t, model.ConstantCase, styles[4].Style)
}

func TestProcess(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/variable/process",
		`{"input_text":"tax reduction","case_style":"snake_case","thread_id":"t-1"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ProcessResponse](t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "t-1", resp.ThreadID)
	assert.Equal(t, "변수명 생성이 완료되었습니다.", resp.Message)
	require.NotNil(t, resp.Result)
	assert.Equal(t, model.SnakeCase, resp.Result.CaseStyle)

	require.Len(t, s.runner.calls, 1)
	assert.Equal(t, model.QueryInput{ConversationID: "t-1", Query: "tax reduction", CaseStyle: model.SnakeCase}, s.runner.calls[0])
}

func TestProcessDefaultsStyleAndThread(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do(t, http.MethodPost, "/variable/process", `{"input_text":"세금"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ProcessResponse](t, w)
	assert.True(t, strings.HasPrefix(resp.ThreadID, "thread_"))
	require.Len(t, s.runner.calls, 1)
	assert.Equal(t, model.CamelCase, s.runner.calls[0].CaseStyle)
	assert.Equal(t, resp.ThreadID, s.runner.calls[0].ConversationID)
}

func TestProcessRejectsBadRequests(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{name: "malformed json", body: `{"input_text":`, detail: "잘못된 요청 형식입니다."},
		{name: "empty input", body: `{"input_text":"   "}`, detail: "입력 텍스트가 비어있습니다."},
		{name: "unknown style", body: `{"input_text":"tax","case_style":"Train-Case"}`, detail: "지원하지 않는 케이스 스타일입니다."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/variable/process", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			resp := decode[ErrorResponse](t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.detail, resp.Detail)
		})
	}
	assert.Empty(t, s.runner.calls)
}

func TestProcessPipelineFailure(t *testing.T) {
	s := newTestServer(t, nil)
	s.runner.err = errors.New("boom")

	w := s.do(t, http.MethodPost, "/variable/process", `{"input_text":"tax","thread_id":"t-err"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, "t-err", resp.ThreadID)
	assert.Contains(t, resp.Detail, "오류가 발생했습니다")
	require.NotNil(t, resp.Result)
}

func TestHistoryAndClear(t *testing.T) {
	s := newTestServer(t, nil)
	mm := conversations.NewMessagesManager(s.repo, model.ConversationConfig{})
	ctx := context.Background()
	require.NoError(t, mm.SaveUserMessage(ctx, "t-h", "tax"))
	require.NoError(t, mm.SaveResponse(ctx, "t-h", "'tax' 약어 (camelCase): tx"))

	w := s.do(t, http.MethodGet, "/variable/history/t-h", "")
	require.Equal(t, http.StatusOK, w.Code)
	history := decode[HistoryResponse](t, w)
	assert.Equal(t, "t-h", history.ThreadID)
	assert.Equal(t, []HistoryMessage{
		{Role: "user", Content: "tax"},
		{Role: "assistant", Content: "'tax' 약어 (camelCase): tx"},
	}, history.History)

	w = s.do(t, http.MethodDelete, "/variable/history/t-h", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/variable/history/t-h", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[HistoryResponse](t, w).History)
}
