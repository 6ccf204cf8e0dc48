package validators

import (
	"context"
	"strings"

	"github.com/harsh-choudhary-nature/WittyWhizBackend/models"
)

// Field names accepted by [PostValidator].
const (
	FieldPostID   = "post_id"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldKeywords = "keywords"
)

// PostValidator checks post bodies: [models.PostRequest] on creation and
// [models.PostUpdate] on edit.
type PostValidator struct{}

func NewPostValidator() Validator {
	return &PostValidator{}
}

func (v *PostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PostRequest:
		return v.validatePostRequest(value, fields...)
	case *models.PostRequest:
		return v.validatePostRequest(*value, fields...)

	case models.PostUpdate:
		return v.validatePostUpdate(value, fields...)
	case *models.PostUpdate:
		return v.validatePostUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *PostValidator) validatePostRequest(request models.PostRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldKeywords}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(request.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(request.Content) == "" {
				return ErrEmptyContent
			}
		case FieldKeywords:
			// an empty list is allowed, an absent one is not
			if request.Keywords == nil {
				return ErrEmptyKeywords
			}
			if err := validateKeywords(request.Keywords); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePostUpdate checks only the fields present in the update.
func (v *PostValidator) validatePostUpdate(update models.PostUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPostID, FieldTitle, FieldContent, FieldKeywords}
	}

	for _, f := range fields {
		switch f {
		case FieldPostID:
			if update.PostID <= 0 {
				return ErrInvalidPostID
			}
		case FieldTitle:
			if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
				return ErrEmptyContent
			}
		case FieldKeywords:
			if update.Keywords != nil {
				if err := validateKeywords(*update.Keywords); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateKeywords(keywords []string) error {
	for _, k := range keywords {
		if strings.TrimSpace(k) == "" {
			return ErrBlankKeyword
		}
	}
	return nil
}
