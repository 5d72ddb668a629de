package templates

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/models"
)

func TestParse_RendersEveryPage(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)

	user := &models.User{ID: 1, Username: "alice"}
	post := &models.Post{ID: 7, AuthorID: 1, Title: "Hello", Body: "World", Username: "alice", Created: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}

	pages := map[string]map[string]any{
		"error":                {"status": 404, "title": "Not Found", "message": "Post id 7 doesn't exist."},
		"blog/index":           {"user": user, "posts": []models.Post{*post}},
		"blog/create":          {"user": user, "title": "alice's Job 1"},
		"blog/update":          {"user": user, "post": post, "title": post.Title, "body": post.Body},
		"blog/comments":        {"post": post, "comments": []models.Comment{{Content: "Nice", Username: "bob"}}},
		"blog/search":          {"user": user, "searched": true, "songs": []models.Song{{TrackName: "Liebe"}}},
		"blog/translate_post":  {"user": user, "post": post, "languages": []dto.LanguageOption{{Code: "en", Name: "English"}}, "selected": "en"},
		"blog/translated_post": {"user": user, "post": post, "result": &dto.TranslationResult{Language: dto.LanguageOption{Code: "en", Name: "English"}, Original: "Welt", Translated: "World", Post: post}},
		"auth/login":           {"flashes": []string{"Incorrect password."}},
		"auth/register":        {},
	}

	for name, data := range pages {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tmpl.ExecuteTemplate(&buf, name, data))
			assert.Contains(t, buf.String(), "</html>")
		})
	}
}

func TestIndex_ShowsAuthorActionsOnlyToAuthor(t *testing.T) {
	tmpl, err := Parse()
	require.NoError(t, err)
	posts := []models.Post{{ID: 7, AuthorID: 1, Title: "Hello", Username: "alice"}}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "blog/index", map[string]any{
		"user":  &models.User{ID: 2, Username: "bob"},
		"posts": posts,
	}))
	assert.NotContains(t, buf.String(), "/7/update")
	assert.Contains(t, buf.String(), "/7/comments")

	buf.Reset()
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "blog/index", map[string]any{
		"user":  &models.User{ID: 1, Username: "alice"},
		"posts": posts,
	}))
	assert.Contains(t, buf.String(), "/7/update")
}
