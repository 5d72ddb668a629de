package dto

// PostForm carries the fields of the create and update forms.
type PostForm struct {
	Title string `form:"title"`
	Body  string `form:"body"`
}

// CommentForm carries the comment form.
type CommentForm struct {
	Content string `form:"content"`
}

// SearchForm carries the lyrics search form.
type SearchForm struct {
	Keyword string `form:"keyword"`
}
