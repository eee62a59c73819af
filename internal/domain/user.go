package domain

import "time"

type User struct {
	ID                  UserID    `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	FirstName           string    `gorm:"type:text;not null" db:"fname" json:"fname"`
	LastName            string    `gorm:"type:text;not null" db:"lname" json:"lname"`
	Username            string    `gorm:"type:citext;uniqueIndex:ux_users_username" db:"username" json:"username"`
	Email               string    `gorm:"type:citext;uniqueIndex:ux_users_email" db:"email" json:"email"`
	PasswordHash        string    `gorm:"type:text;not null" db:"password_hash" json:"-"`
	Active              bool      `gorm:"not null;default:false" db:"active" json:"-"`
	ActivationTokenHash *string   `gorm:"type:text;index:ix_users_activation" db:"activation_token_hash" json:"-"`
	CreatedAt           time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (User) TableName() string { return "users" }

// FullName is what transactional emails address the user by.
func (u *User) FullName() string { return u.FirstName + " " + u.LastName }
