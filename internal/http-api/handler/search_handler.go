package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/service"
)

type SearchHandler struct {
	searchService service.SearchService
}

func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchForm shows the empty lyrics search form.
// GET /search
func (h *SearchHandler) SearchForm(c *gin.Context) {
	render(c, http.StatusOK, "blog/search", gin.H{})
}

// Search lists the songs whose lyrics contain the keyword.
// POST /search
func (h *SearchHandler) Search(c *gin.Context) {
	var form dto.SearchForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithPage(c, http.StatusBadRequest, "The submitted form could not be read.")
		return
	}

	songs, err := h.searchService.SearchLyrics(c.Request.Context(), form.Keyword)
	if err != nil {
		serverError(c, err)
		return
	}
	render(c, http.StatusOK, "blog/search", gin.H{
		"keyword":  form.Keyword,
		"searched": true,
		"songs":    songs,
	})
}
