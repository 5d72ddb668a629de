package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/middleware"
	"jobboard/internal/http-api/service"
	"jobboard/internal/http-api/session"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Comments shows a post's comments. A POST first appends the submitted
// comment; only logged-in users may post.
// GET|POST /:id/comments
func (h *CommentHandler) Comments(c *gin.Context) {
	post := loadedPost(c)

	if c.Request.Method == http.MethodPost {
		user := middleware.CurrentUser(c)
		if user == nil {
			session.Redirect(c, middleware.LoginPath)
			return
		}

		var form dto.CommentForm
		if err := c.ShouldBind(&form); err != nil {
			abortWithPage(c, http.StatusBadRequest, "The submitted form could not be read.")
			return
		}

		if _, err := h.commentService.Create(c.Request.Context(), post.ID, user.ID, form.Content); err != nil {
			if !flashValidation(c, err) {
				serverError(c, err)
				return
			}
		}
	}

	comments, err := h.commentService.List(c.Request.Context(), post.ID)
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "blog/comments", gin.H{
		"post":     post,
		"comments": comments,
	})
}
