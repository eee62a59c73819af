package dto

import (
	"errors"
	"testing"

	"quotes/internal/domain"
)

func validRegister() RegisterRequest {
	return RegisterRequest{
		FirstName:       "Bob",
		LastName:        "Builder",
		Username:        "bobby",
		Email:           "bob@example.com",
		Password:        "pw123456",
		ConfirmPassword: "pw123456",
	}
}

func TestValidateRegisterMessages(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*RegisterRequest)
		message string
	}{
		{"missing first name", func(r *RegisterRequest) { r.FirstName = "" }, "First name is required."},
		{"missing last name", func(r *RegisterRequest) { r.LastName = "" }, "Last name is required."},
		{"missing username", func(r *RegisterRequest) { r.Username = "" }, "Username is required."},
		{"short username", func(r *RegisterRequest) { r.Username = "bob" }, "Username must be at least 5 characters long."},
		{"missing email", func(r *RegisterRequest) { r.Email = "" }, "Email is required."},
		{"invalid email", func(r *RegisterRequest) { r.Email = "not-an-email" }, "Email is invalid."},
		{"short password", func(r *RegisterRequest) { r.Password = "pw1"; r.ConfirmPassword = "pw1" }, "Password must be at least 6 characters long!"},
		{"mismatched passwords", func(r *RegisterRequest) { r.ConfirmPassword = "different1" }, "Passwords are not equal!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(&req)

			err := Validate(req)
			if domain.KindOf(err) != domain.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			var de *domain.Error
			if !errors.As(err, &de) || de.Message != tc.message {
				t.Fatalf("expected message %q, got %v", tc.message, err)
			}
		})
	}

	if err := Validate(validRegister()); err != nil {
		t.Fatalf("valid request must pass, got %v", err)
	}
}

func TestValidateQuoteMessages(t *testing.T) {
	short := QuoteRequest{Text: "too short", Author: "A"}
	err := Validate(short)
	var de *domain.Error
	if !errors.As(err, &de) || de.Message != "Quote Text must be at least 10 characters long" {
		t.Fatalf("expected short-text message, got %v", err)
	}

	noAuthor := QuoteRequest{Text: "long enough quote text"}
	err = Validate(noAuthor)
	if !errors.As(err, &de) || de.Message != "Quote Author is required!" {
		t.Fatalf("expected missing-author message, got %v", err)
	}

	if err := Validate(QuoteRequest{Text: "long enough quote text", Author: "A"}); err != nil {
		t.Fatalf("valid quote must pass, got %v", err)
	}
}
