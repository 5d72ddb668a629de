package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/middleware"
	"jobboard/internal/http-api/service"
	"jobboard/internal/http-api/session"
)

type BlogHandler struct {
	postService service.PostService
}

func NewBlogHandler(postService service.PostService) *BlogHandler {
	return &BlogHandler{postService: postService}
}

// Index lists all posts, newest first.
// GET /
func (h *BlogHandler) Index(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "blog/index", gin.H{"posts": posts})
}

// CreateForm shows the new post form with a suggested title.
// GET /create
func (h *BlogHandler) CreateForm(c *gin.Context) {
	title, err := h.postService.DefaultTitle(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "blog/create", gin.H{"title": title})
}

// Create stores a post and continues to its edit page.
// POST /create
func (h *BlogHandler) Create(c *gin.Context) {
	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithPage(c, http.StatusBadRequest, "The submitted form could not be read.")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), currentUserID(c), form)
	if err != nil {
		if flashValidation(c, err) {
			render(c, http.StatusOK, "blog/create", gin.H{"title": form.Title, "body": form.Body})
			return
		}
		serverError(c, err)
		return
	}

	session.Redirect(c, fmt.Sprintf("/%d/update", post.ID))
}

// UpdateForm shows the edit form filled with the stored post.
// GET /:id/update
func (h *BlogHandler) UpdateForm(c *gin.Context) {
	post := loadedPost(c)
	render(c, http.StatusOK, "blog/update", gin.H{
		"post":  post,
		"title": post.Title,
		"body":  post.Body,
	})
}

// Update overwrites the post's title and body.
// POST /:id/update
func (h *BlogHandler) Update(c *gin.Context) {
	post := loadedPost(c)

	var form dto.PostForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithPage(c, http.StatusBadRequest, "The submitted form could not be read.")
		return
	}

	if err := h.postService.Update(c.Request.Context(), post.ID, form); err != nil {
		if flashValidation(c, err) {
			render(c, http.StatusOK, "blog/update", gin.H{
				"post":  post,
				"title": form.Title,
				"body":  form.Body,
			})
			return
		}
		serverError(c, err)
		return
	}

	session.Redirect(c, "/")
}

// Delete removes the post together with its comments.
// POST /:id/delete
func (h *BlogHandler) Delete(c *gin.Context) {
	post := loadedPost(c)
	if err := h.postService.Delete(c.Request.Context(), post.ID); err != nil {
		serverError(c, err)
		return
	}
	session.Redirect(c, "/")
}
