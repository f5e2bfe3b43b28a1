package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"ana@example.com", true},
		{"first.last@example.com", true},
		{"user+tag@example.co.uk", true},
		{"user_name@sub.example.com", true},
		{"user%x@example.com", true},
		{"", false},
		{"bad", false},
		{"@example.com", false},            // Missing local part
		{"ana@", false},                    // Missing domain
		{"ana@example", false},             // Missing TLD
		{"ana@example.c", false},           // TLD too short
		{"ana example@example.com", false}, // Space in local part
		{"ana@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	type form struct {
		Name    string `validate:"required"`
		Email   string `validate:"required,email"`
		Message string `validate:"required"`
	}

	v := validator.New()
	RegisterValidators(v)

	err := v.Struct(form{Name: "", Email: "bad", Message: ""})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	errs := FormatValidationError(err)
	if len(errs) != 3 {
		t.Fatalf("expected 3 validation errors, got %d: %v", len(errs), errs)
	}

	want := map[string]string{
		"name":    "name is required",
		"email":   "email must be a valid email address",
		"message": "message is required",
	}
	for _, e := range errs {
		msg, ok := want[e.Field]
		if !ok {
			t.Errorf("unexpected field %q in validation errors", e.Field)
			continue
		}
		if e.Message != msg {
			t.Errorf("field %q: got message %q, want %q", e.Field, e.Message, msg)
		}
	}
}

func TestFormatValidationErrorNonValidationError(t *testing.T) {
	v := validator.New()
	// Validating a non-struct yields an InvalidValidationError
	err := v.Struct("not a struct")
	if err == nil {
		t.Fatal("expected an error")
	}

	if errs := FormatValidationError(err); len(errs) != 0 {
		t.Errorf("expected no field errors, got %v", errs)
	}
}
