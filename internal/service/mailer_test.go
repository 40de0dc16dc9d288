package service

import (
	"context"
	"testing"

	"story-server/internal/models"

	"github.com/stretchr/testify/assert"

	"go.uber.org/zap"
)

func TestResendSender_MissingAPIKey(t *testing.T) {
	sender := NewResendSender("", zap.NewNop())

	_, err := sender.SendStoryNotification(context.Background(), StoryEmail{
		Title:        "The Last Watch",
		StoryContent: "<b>Once</b> upon a time.",
	})

	assert.ErrorIs(t, err, models.ErrResendKeyMissing)
}

func TestBuildStoryEmailHTML_KnownUser(t *testing.T) {
	html := buildStoryEmailHTML(StoryEmail{
		StoryContent:  "<b>Once</b> upon a time.",
		Genre:         "Fantasy",
		Theme:         "Redemption",
		CharacterType: "Knight",
		Title:         "The Last Watch",
		UserEmail:     "reader@example.com",
		UserName:      "Reader",
	})

	assert.Contains(t, html, "<strong>Title:</strong> The Last Watch")
	assert.Contains(t, html, "<strong>Genre:</strong> Fantasy")
	assert.Contains(t, html, "<strong>Theme:</strong> Redemption")
	assert.Contains(t, html, "<strong>Character Type:</strong> Knight")
	assert.Contains(t, html, "<strong>User Email:</strong> reader@example.com")
	assert.Contains(t, html, "<strong>User Name:</strong> Reader")
	assert.NotContains(t, html, "Anonymous user")
	// Разметка истории вставляется как есть
	assert.Contains(t, html, "<b>Once</b> upon a time.")
}

func TestBuildStoryEmailHTML_AnonymousUser(t *testing.T) {
	html := buildStoryEmailHTML(StoryEmail{
		StoryContent:  "A story.",
		Genre:         "Horror",
		Theme:         "Isolation",
		CharacterType: "Keeper",
		Title:         "Fog",
	})

	assert.Contains(t, html, "<em>Anonymous user</em>")
	assert.NotContains(t, html, "User Email:")
	assert.NotContains(t, html, "User Name:")
}
