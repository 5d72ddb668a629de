package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard/internal/http-api/middleware"
	"jobboard/internal/http-api/models"
	"jobboard/internal/http-api/service"
	"jobboard/internal/http-api/session"
)

const postKey = "post"

// render executes the named template with the current user and the pending
// flash messages merged into data.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["user"] = middleware.CurrentUser(c)
	data["flashes"] = session.Flashes(c)
	c.HTML(status, name, data)
}

func abortWithPage(c *gin.Context, status int, message string) {
	render(c, status, "error", gin.H{
		"status":  status,
		"title":   http.StatusText(status),
		"message": message,
	})
	c.Abort()
}

func serverError(c *gin.Context, err error) {
	slog.ErrorContext(c.Request.Context(), "Request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err)
	_ = c.Error(err)
	abortWithPage(c, http.StatusInternalServerError, "Something went wrong on our side. Please try again later.")
}

// flashValidation queues the message of a ValidationError and reports
// whether err was one.
func flashValidation(c *gin.Context, err error) bool {
	var verr *service.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	session.Flash(c, verr.Message)
	return true
}

func currentUserID(c *gin.Context) int64 {
	if user := middleware.CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// LoadPost resolves the :id path parameter to a post and stores it for the
// handler. With checkAuthor set only the post's author gets through.
func LoadPost(postService service.PostService, checkAuthor bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param("id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			abortWithPage(c, http.StatusNotFound, fmt.Sprintf("Post id %s doesn't exist.", raw))
			return
		}

		post, err := postService.GetPost(c.Request.Context(), id, currentUserID(c), checkAuthor)
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			abortWithPage(c, http.StatusNotFound, fmt.Sprintf("Post id %d doesn't exist.", id))
			return
		case errors.Is(err, service.ErrForbidden):
			abortWithPage(c, http.StatusForbidden, "You are not allowed to change this post.")
			return
		case err != nil:
			serverError(c, err)
			return
		}

		c.Set(postKey, post)
		c.Next()
	}
}

func loadedPost(c *gin.Context) *models.Post {
	return c.MustGet(postKey).(*models.Post)
}
