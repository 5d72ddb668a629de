package dto

import "jobboard/internal/http-api/models"

// TranslateForm carries the target language picked on the translate page.
type TranslateForm struct {
	Language string `form:"language"`
}

// LanguageOption is one entry of the language picker.
type LanguageOption struct {
	Code string // BCP 47 tag, e.g. "en"
	Name string // self name, e.g. "English", "русский"
}

// TranslationResult is what the confirmation page shows.
type TranslationResult struct {
	Language   LanguageOption
	Original   string       // body before the translation was stored
	Translated string       // text returned by the backend
	Post       *models.Post // row as stored after the update
}
