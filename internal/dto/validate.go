package dto

import (
	"github.com/go-playground/validator/v10"

	"quotes/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct tag validation and converts the first failure into a
// user-facing validation error.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.WrapError(domain.KindServer, "validation failed", err)
	}
	return domain.Validation(fieldMessage(errs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "FirstName":
		return "First name is required."
	case "LastName":
		return "Last name is required."
	case "Username":
		if fe.Tag() == "min" {
			return "Username must be at least 5 characters long."
		}
		return "Username is required."
	case "Email":
		if fe.Tag() == "email" {
			return "Email is invalid."
		}
		return "Email is required."
	case "Password", "NewPassword":
		if fe.Tag() == "min" {
			return "Password must be at least 6 characters long!"
		}
		return "Password is required."
	case "ConfirmPassword":
		if fe.Tag() == "eqfield" {
			return "Passwords are not equal!"
		}
		return "Password confirmation is required."
	case "OldPassword":
		return "Old password is required."
	case "Text":
		if fe.Tag() == "min" {
			return "Quote Text must be at least 10 characters long"
		}
		return "Quote Text is required!"
	case "Author":
		return "Quote Author is required!"
	}
	return "Invalid value for " + fe.Field() + "."
}
