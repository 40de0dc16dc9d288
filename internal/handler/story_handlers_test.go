package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"story-server/internal/handler"
	"story-server/internal/mocks"
	"story-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func setupStoryRouter(t *testing.T, repo *mocks.MockStoryRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := handler.NewStoryHandler(repo, zap.NewNop())
	router := gin.New()
	h.RegisterRoutes(router)
	return router
}

func TestHandleSaveStory_Success(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	router := setupStoryRouter(t, repo)

	repo.On("Save", mock.Anything, mock.MatchedBy(func(story *models.SavedStory) bool {
		return story.Title == "The Last Watch" && story.UserID == nil
	})).Run(func(args mock.Arguments) {
		story := args.Get(1).(*models.SavedStory)
		story.ID = uuid.New()
		story.CreatedAt = time.Now().UTC()
	}).Return(nil).Once()

	body := `{
		"title": "The Last Watch",
		"content": "<b>Once</b> upon a time.",
		"genre": "Fantasy",
		"theme": "Redemption",
		"characterType": "Knight"
	}`
	req, _ := http.NewRequest(http.MethodPost, "/stories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.SavedStory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Equal(t, "The Last Watch", resp.Title)
	repo.AssertExpectations(t)
}

func TestHandleSaveStory_MissingFields(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	router := setupStoryRouter(t, repo)

	req, _ := http.NewRequest(http.MethodPost, "/stories", bytes.NewBufferString(`{"title": "Fog"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "missing required fields")
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestHandleSaveStory_InvalidUserID(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	router := setupStoryRouter(t, repo)

	body := `{
		"title": "Fog",
		"content": "A story.",
		"genre": "Horror",
		"theme": "Isolation",
		"characterType": "Keeper",
		"userId": "not-a-uuid"
	}`
	req, _ := http.NewRequest(http.MethodPost, "/stories", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestHandleListStories(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	router := setupStoryRouter(t, repo)

	stories := []models.SavedStory{
		{ID: uuid.New(), Title: "Second", CreatedAt: time.Now().UTC()},
		{ID: uuid.New(), Title: "First", CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}
	repo.On("List", mock.Anything, (*uuid.UUID)(nil)).Return(stories, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/stories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.SavedStory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Second", resp[0].Title)
	repo.AssertExpectations(t)
}

func TestHandleListStories_FilterByUser(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	router := setupStoryRouter(t, repo)

	userID := uuid.New()
	repo.On("List", mock.Anything, mock.MatchedBy(func(id *uuid.UUID) bool {
		return id != nil && *id == userID
	})).Return([]models.SavedStory{}, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/stories?user_id="+userID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestHandleGetStory_NotFound(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	router := setupStoryRouter(t, repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, models.ErrStoryNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/stories/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Story not found", resp.Error)
}

func TestHandleGetStory_InvalidID(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	router := setupStoryRouter(t, repo)

	req, _ := http.NewRequest(http.MethodGet, "/stories/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHandleDeleteStory(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	router := setupStoryRouter(t, repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/stories/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	repo.AssertExpectations(t)
}

func TestHandleDeleteStory_NotFound(t *testing.T) {
	repo := mocks.NewMockStoryRepository(t)
	router := setupStoryRouter(t, repo)

	id := uuid.New()
	repo.On("Delete", mock.Anything, id).Return(models.ErrStoryNotFound).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/stories/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
