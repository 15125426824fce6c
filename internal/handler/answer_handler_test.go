package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/niharsaraf26/smartdocs/internal/domain"
	"github.com/niharsaraf26/smartdocs/internal/qna"
	"github.com/niharsaraf26/smartdocs/mocks"
)

func newAnswerRouter(routingReply string, metadata *mocks.MockMetadataRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	routingGen := new(mocks.MockTextGenerator)
	routingGen.On("Generate", mock.Anything, mock.Anything).Return(routingReply, nil)

	svc := qna.NewService(
		qna.NewClassifier(routingGen), new(mocks.MockTextGenerator),
		new(mocks.MockEmbedder), new(mocks.MockVectorIndex),
		new(mocks.MockDocumentRepo), metadata, 3, 8000)

	r := gin.New()
	r.GET("/ai/answers", NewAnswerHandler(svc).GetAnswer)
	return r
}

func TestGetAnswerRequiresQuery(t *testing.T) {
	r := newAnswerRouter(`{"type": "SIMILARITY"}`, new(mocks.MockMetadataRepo))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ai/answers", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "MISSING_QUERY", resp.Error.Code)
}

func TestGetAnswerSuccessShape(t *testing.T) {
	metadata := new(mocks.MockMetadataRepo)
	metadata.On("FindByUserAndFieldName", mock.Anything, mock.Anything, "id_number").
		Return([]domain.DocumentMetadata{{
			FieldName:    "id_number",
			FieldValue:   "ABCDE1234F",
			DocumentType: domain.DocTypeIdentity,
		}}, nil)

	r := newAnswerRouter(`{"type": "FIELD_LOOKUP", "fields": ["id_number"]}`, metadata)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ai/answers?query=What+is+my+PAN+number%3F", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Query        string `json:"query"`
			Answer       string `json:"answer"`
			RouteType    string `json:"route_type"`
			SourcesCount int    `json:"sources_count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "What is my PAN number?", resp.Data.Query)
	assert.Equal(t, "ABCDE1234F (from IDENTITY_DOCUMENT)", resp.Data.Answer)
	assert.Equal(t, "FIELD_LOOKUP", resp.Data.RouteType)
	assert.Equal(t, 0, resp.Data.SourcesCount)
}
