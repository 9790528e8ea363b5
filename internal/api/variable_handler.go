package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/variable-maker/server/internal/agent/graph"
	"github.com/variable-maker/server/internal/agent/graph/conversations"
	"github.com/variable-maker/server/internal/agent/model"
	errx "github.com/variable-maker/server/internal/core/error"
	logx "github.com/variable-maker/server/pkg/logger"
)

// ProcessRequest is the body of POST /variable/process.
type ProcessRequest struct {
	InputText string `json:"input_text"`
	CaseStyle string `json:"case_style,omitempty"`
	ThreadID  string `json:"thread_id,omitempty"`
}

// ProcessResponse is returned by POST /variable/process.
type ProcessResponse struct {
	Success  bool                 `json:"success"`
	Result   *model.ProcessResult `json:"result"`
	Message  string               `json:"message"`
	ThreadID string               `json:"thread_id"`
}

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Success  bool                 `json:"success"`
	Detail   string               `json:"detail"`
	ThreadID string               `json:"thread_id,omitempty"`
	Result   *model.ProcessResult `json:"result,omitempty"`
}

// HistoryMessage is one stored conversation message.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// HistoryResponse is returned by GET /variable/history/:thread_id.
type HistoryResponse struct {
	Success  bool             `json:"success"`
	ThreadID string           `json:"thread_id"`
	History  []HistoryMessage `json:"history"`
}

// VariableHandler serves the naming pipeline over HTTP.
type VariableHandler struct {
	runner       graph.Runner
	mm           *conversations.MessagesManager
	defaultStyle model.CaseStyle
}

func NewVariableHandler(runner graph.Runner, mm *conversations.MessagesManager, defaultStyle model.CaseStyle) *VariableHandler {
	if !defaultStyle.Valid() {
		defaultStyle = model.DefaultCaseStyle
	}
	return &VariableHandler{runner: runner, mm: mm, defaultStyle: defaultStyle}
}

func (h *VariableHandler) RegisterRoutes(router gin.IRouter) {
	group := router.Group("/variable")
	group.GET("/case-styles", h.caseStyles)
	group.POST("/process", h.process)
	group.GET("/history/:thread_id", h.history)
	group.DELETE("/history/:thread_id", h.clearHistory)
}

func (h *VariableHandler) caseStyles(c *gin.Context) {
	c.JSON(http.StatusOK, model.CaseStyleOptions())
}

func (h *VariableHandler) process(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "잘못된 요청 형식입니다."})
		return
	}
	if strings.TrimSpace(req.InputText) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: errx.ErrEmptyInput.Message})
		return
	}

	style := h.defaultStyle
	if strings.TrimSpace(req.CaseStyle) != "" {
		parsed, err := model.ParseCaseStyle(req.CaseStyle)
		if err != nil {
			c.JSON(errx.StatusOf(err), ErrorResponse{Detail: errx.MessageOf(err)})
			return
		}
		style = parsed
	}

	threadID := strings.TrimSpace(req.ThreadID)
	if threadID == "" {
		threadID = "thread_" + uuid.NewString()
	}

	result, err := h.runner.Invoke(c.Request.Context(), model.QueryInput{
		ConversationID: threadID,
		Query:          req.InputText,
		CaseStyle:      style,
	})
	if err != nil {
		logx.Error().Err(err).Str("request_id", GetRequestID(c)).Str("thread_id", threadID).Msg("variable processing failed")
		detail := "처리 중 오류가 발생했습니다."
		if result != nil {
			detail = result.Response
		}
		c.JSON(errx.StatusOf(err), ErrorResponse{Detail: detail, ThreadID: threadID, Result: result})
		return
	}

	c.JSON(http.StatusOK, ProcessResponse{
		Success:  true,
		Result:   result,
		Message:  "변수명 생성이 완료되었습니다.",
		ThreadID: threadID,
	})
}

func (h *VariableHandler) history(c *gin.Context) {
	threadID := c.Param("thread_id")
	msgs, err := h.mm.RecentHistory(c.Request.Context(), threadID)
	if err != nil {
		h.fail(c, threadID, err, "히스토리 조회 중 오류가 발생했습니다.")
		return
	}

	history := make([]HistoryMessage, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		history = append(history, HistoryMessage{Role: string(m.Role), Content: m.Content})
	}
	c.JSON(http.StatusOK, HistoryResponse{Success: true, ThreadID: threadID, History: history})
}

func (h *VariableHandler) clearHistory(c *gin.Context) {
	threadID := c.Param("thread_id")
	if err := h.mm.Clear(c.Request.Context(), threadID); err != nil {
		h.fail(c, threadID, err, "히스토리 삭제 중 오류가 발생했습니다.")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *VariableHandler) fail(c *gin.Context, threadID string, err error, detail string) {
	logx.Error().Err(err).Str("request_id", GetRequestID(c)).Str("thread_id", threadID).Msg(detail)
	c.JSON(errx.StatusOf(err), ErrorResponse{Detail: detail, ThreadID: threadID})
}
