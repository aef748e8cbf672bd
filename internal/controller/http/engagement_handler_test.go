package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vocal-feed/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func jsonBody(s string) io.Reader {
	return bytes.NewBufferString(s)
}

func newEngagementHandler() (*EngagementHandler, *MockCommentUseCase, *MockReactionUseCase, *MockInteractionUseCase) {
	comments := new(MockCommentUseCase)
	reactions := new(MockReactionUseCase)
	interactions := new(MockInteractionUseCase)
	return NewEngagementHandler(comments, reactions, interactions, testLogger()), comments, reactions, interactions
}

func TestListComments_MissingPostID(t *testing.T) {
	handler, comments, _, _ := newEngagementHandler()

	router := setupTestRouter()
	router.GET("/comments", handler.ListComments)

	comments.On("ListComments", mock.Anything, "", "").Return(nil, entity.NewValidationError("postId", "postId is required"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/comments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateComment(t *testing.T) {
	handler, comments, _, _ := newEngagementHandler()

	router := setupTestRouter()
	router.POST("/comments", asUser("u1", handler.CreateComment))

	comments.On("CreateComment", mock.Anything, "u1", "p1", "nice").Return(&entity.Comment{ID: "c1", Content: "nice"}, nil)

	w := postJSON(router, "/comments", `{"postId":"p1","content":"nice"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"c1"`)
}

func TestDeleteComment_NotOwned(t *testing.T) {
	handler, comments, _, _ := newEngagementHandler()

	router := setupTestRouter()
	router.DELETE("/comments/:id", asUser("u2", handler.DeleteComment))

	comments.On("DeleteComment", mock.Anything, "c1", "u2").Return(entity.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/comments/c1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddReaction_Duplicate(t *testing.T) {
	handler, _, reactions, _ := newEngagementHandler()

	router := setupTestRouter()
	router.POST("/reactions", asUser("u1", handler.AddReaction))

	reactions.On("AddReaction", mock.Anything, "u1", "p1", "👍").Return(nil, entity.ErrConflict)

	w := postJSON(router, "/reactions", `{"postId":"p1","emoji":"👍"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRemoveReactionByEmoji(t *testing.T) {
	handler, _, reactions, _ := newEngagementHandler()

	router := setupTestRouter()
	router.DELETE("/reactions", asUser("u1", handler.RemoveReactionByEmoji))

	reactions.On("RemoveReactionByEmoji", mock.Anything, "u1", "p1", "😂").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/reactions?postId=p1&emoji=%F0%9F%98%82", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	reactions.AssertExpectations(t)
}

func TestCountReactions(t *testing.T) {
	handler, _, reactions, _ := newEngagementHandler()

	router := setupTestRouter()
	router.GET("/reactions/counts", handler.CountReactions)

	reactions.On("CountReactions", mock.Anything, "p1", "").Return([]entity.EmojiCount{{Emoji: "❤️", Count: 2}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/reactions/counts?postId=p1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

func TestRecordInteraction_InvalidType(t *testing.T) {
	handler, _, _, interactions := newEngagementHandler()

	router := setupTestRouter()
	router.POST("/interactions", asUser("u1", handler.RecordInteraction))

	interactions.On("RecordInteraction", mock.Anything, "u1", "p1", "like").Return(nil, entity.NewValidationError("type", "type must be share"))

	w := postJSON(router, "/interactions", `{"postId":"p1","type":"like"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
