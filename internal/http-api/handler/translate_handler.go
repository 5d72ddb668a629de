package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/service"
)

type TranslateHandler struct {
	translateService service.TranslateService
}

func NewTranslateHandler(translateService service.TranslateService) *TranslateHandler {
	return &TranslateHandler{translateService: translateService}
}

// TranslateForm shows the language picker for a post.
// GET /:id/translate
func (h *TranslateHandler) TranslateForm(c *gin.Context) {
	h.renderForm(c, "")
}

func (h *TranslateHandler) renderForm(c *gin.Context, selected string) {
	render(c, http.StatusOK, "blog/translate_post", gin.H{
		"post":      loadedPost(c),
		"languages": h.translateService.Languages(),
		"selected":  selected,
	})
}

// Translate runs the post body through the translation backend, stores the
// result and shows the updated post.
// POST /:id/translate
func (h *TranslateHandler) Translate(c *gin.Context) {
	post := loadedPost(c)

	var form dto.TranslateForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithPage(c, http.StatusBadRequest, "The submitted form could not be read.")
		return
	}

	result, err := h.translateService.Translate(c.Request.Context(), post, form.Language)
	switch {
	case err == nil:
	case flashValidation(c, err):
		h.renderForm(c, form.Language)
		return
	case errors.Is(err, service.ErrPostNotFound):
		abortWithPage(c, http.StatusNotFound, fmt.Sprintf("Post id %d doesn't exist.", post.ID))
		return
	default:
		serverError(c, err)
		return
	}

	render(c, http.StatusOK, "blog/translated_post", gin.H{
		"post":   result.Post,
		"result": result,
	})
}
