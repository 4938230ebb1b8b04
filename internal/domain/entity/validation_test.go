package entity_test

import (
	"testing"

	"newsdesk/internal/domain/entity"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		wantErr bool
	}{
		{name: "long enough", title: "Hello world", wantErr: false},
		{name: "exactly five", title: "12345", wantErr: false},
		{name: "too short", title: "Hi", wantErr: true},
		{name: "empty", title: "", wantErr: true},
		{name: "multibyte counted as runes", title: "عاجل جداً", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := entity.ValidateTitle(tt.title)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateTitle(%q) = %v, wantErr %v", tt.title, err, tt.wantErr)
			}
			if err != nil && err.Field != "title" {
				t.Errorf("Field = %q, want %q", err.Field, "title")
			}
		})
	}
}

func TestValidateContent(t *testing.T) {
	if err := entity.ValidateContent("this content is definitely long enough"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entity.ValidateContent("too short"); err == nil {
		t.Fatal("expected error for short content")
	}
}

func TestValidateCategory(t *testing.T) {
	if err := entity.ValidateCategory("politics"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entity.ValidateCategory("x"); err == nil {
		t.Fatal("expected error for one-character category")
	}
}

func TestValidateViews(t *testing.T) {
	if err := entity.ValidateViews(0); err != nil {
		t.Fatalf("unexpected error for zero views: %v", err)
	}
	if err := entity.ValidateViews(-1); err == nil {
		t.Fatal("expected error for negative views")
	}
}

func TestValidationErrors_Details(t *testing.T) {
	errs := entity.ValidationErrors{
		{Field: "title", Message: "must be at least 5 characters"},
		{Field: "content", Message: "must be at least 20 characters"},
	}

	details := errs.Details()
	if len(details) != 2 {
		t.Fatalf("len(details) = %d, want 2", len(details))
	}
	if got := details["title"]; len(got) != 1 || got[0] != "must be at least 5 characters" {
		t.Errorf("details[title] = %v", got)
	}
}

func TestValidationErrors_OrNil(t *testing.T) {
	var empty entity.ValidationErrors
	if err := empty.OrNil(); err != nil {
		t.Fatalf("OrNil on empty collection = %v, want nil", err)
	}

	errs := entity.ValidationErrors{{Field: "title", Message: "required"}}
	if err := errs.OrNil(); err == nil {
		t.Fatal("OrNil on non-empty collection = nil, want error")
	}
}
