package entity

import (
	"fmt"
	"unicode/utf8"
)

// Field length constraints for article payloads.
const (
	MinTitleLen    = 5
	MinContentLen  = 20
	MinCategoryLen = 2
)

// ValidateTitle checks the title constraint (minimum 5 characters).
// Lengths are counted in runes so multi-byte scripts are not penalized.
func ValidateTitle(title string) *ValidationError {
	if utf8.RuneCountInString(title) < MinTitleLen {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must be at least %d characters", MinTitleLen),
		}
	}
	return nil
}

// ValidateContent checks the content constraint (minimum 20 characters).
func ValidateContent(content string) *ValidationError {
	if utf8.RuneCountInString(content) < MinContentLen {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("must be at least %d characters", MinContentLen),
		}
	}
	return nil
}

// ValidateCategory checks the category constraint (minimum 2 characters).
func ValidateCategory(category string) *ValidationError {
	if utf8.RuneCountInString(category) < MinCategoryLen {
		return &ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("must be at least %d characters", MinCategoryLen),
		}
	}
	return nil
}

// ValidateViews checks that a view count is non-negative.
func ValidateViews(views int64) *ValidationError {
	if views < 0 {
		return &ValidationError{Field: "views", Message: "cannot be negative"}
	}
	return nil
}
