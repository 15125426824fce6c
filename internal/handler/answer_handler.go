package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/niharsaraf26/smartdocs/internal/middleware"
	"github.com/niharsaraf26/smartdocs/internal/qna"
)

// AnswerHandler exposes the question answering endpoint.
type AnswerHandler struct {
	qna *qna.Service
}

// NewAnswerHandler creates the answer handler.
func NewAnswerHandler(qnaService *qna.Service) *AnswerHandler {
	return &AnswerHandler{qna: qnaService}
}

type answerResponse struct {
	Query        string `json:"query"`
	Answer       string `json:"answer"`
	RouteType    string `json:"route_type"`
	SourcesCount int    `json:"sources_count"`
}

type answerFailureResponse struct {
	Query   string `json:"query"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GetAnswer handles GET /ai/answers?query=...
func (h *AnswerHandler) GetAnswer(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_QUERY", "query parameter is required")
		return
	}

	userEmail := middleware.UserEmail(c)
	result := h.qna.Answer(c.Request.Context(), userEmail, query)

	if result.IsSuccessful() {
		RespondSuccess(c, http.StatusOK, answerResponse{
			Query:        query,
			Answer:       result.Answer,
			RouteType:    string(result.Route),
			SourcesCount: len(result.Sources),
		})
		return
	}

	RespondSuccess(c, http.StatusOK, answerFailureResponse{
		Query:   query,
		Message: result.Message,
		Status:  string(result.Status),
	})
}
