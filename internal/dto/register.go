package dto

type RegisterRequest struct {
	FirstName       string `json:"fname" validate:"required"`
	LastName        string `json:"lname" validate:"required"`
	Username        string `json:"username" validate:"required,min=5"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}
