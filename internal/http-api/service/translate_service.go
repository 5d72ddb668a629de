package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gorm.io/gorm"

	"jobboard/internal/config"
	"jobboard/internal/http-api/dto"
	"jobboard/internal/http-api/models"
	"jobboard/internal/http-api/repository"
	"jobboard/internal/translate"
)

// supportedLanguages are the targets offered on the translate form.
var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Italian,
	language.French,
	language.Spanish,
}

type TranslateService interface {
	Languages() []dto.LanguageOption
	ResolveLanguage(code string) (dto.LanguageOption, error)
	Translate(ctx context.Context, post *models.Post, code string) (*dto.TranslationResult, error)
}

type translateService struct {
	postRepo   repository.PostRepository
	translator translate.Translator
	from       string
	mode       string
	matcher    language.Matcher
	options    []dto.LanguageOption
}

func NewTranslateService(
	postRepo repository.PostRepository,
	translator translate.Translator,
	cfg *config.Config,
) TranslateService {
	options := make([]dto.LanguageOption, len(supportedLanguages))
	for i, tag := range supportedLanguages {
		options[i] = dto.LanguageOption{Code: tag.String(), Name: display.Self.Name(tag)}
	}

	return &translateService{
		postRepo:   postRepo,
		translator: translator,
		from:       cfg.TranslateFrom,
		mode:       cfg.TranslateMode,
		matcher:    language.NewMatcher(supportedLanguages),
		options:    options,
	}
}

func (s *translateService) Languages() []dto.LanguageOption {
	return s.options
}

// ResolveLanguage maps a submitted BCP 47 tag, e.g. "fr-CA", onto one of the
// supported targets.
func (s *translateService) ResolveLanguage(code string) (dto.LanguageOption, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return dto.LanguageOption{}, invalid("language", "Language is required.")
	}

	tag, err := language.Parse(code)
	if err != nil {
		return dto.LanguageOption{}, invalid("language", fmt.Sprintf("Language %s is not supported.", code))
	}
	_, index, confidence := s.matcher.Match(tag)
	if confidence < language.High {
		return dto.LanguageOption{}, invalid("language", fmt.Sprintf("Language %s is not supported.", code))
	}
	return s.options[index], nil
}

// Translate sends the post body to the backend and stores the result, either
// appended below the existing body or in its place depending on the mode.
// The returned post is read back after the commit.
func (s *translateService) Translate(ctx context.Context, post *models.Post, code string) (*dto.TranslationResult, error) {
	target, err := s.ResolveLanguage(code)
	if err != nil {
		return nil, err
	}

	translated, err := s.translator.Translate(ctx, post.Body, s.from, target.Code)
	if err != nil {
		return nil, fmt.Errorf("translate post %d: %w", post.ID, err)
	}

	body := translated
	if s.mode != config.TranslateReplace {
		body = post.Body + "\n" + translated
	}
	if err := s.postRepo.UpdateBody(ctx, post.ID, body); err != nil {
		return nil, err
	}

	updated, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &dto.TranslationResult{
		Language:   target,
		Original:   post.Body,
		Translated: translated,
		Post:       updated,
	}, nil
}
