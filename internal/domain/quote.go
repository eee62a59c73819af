package domain

import "time"

type Quote struct {
	ID        QuoteID   `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	Text      string    `gorm:"type:text;not null" db:"text" json:"text"`
	Author    string    `gorm:"type:text;not null" db:"author" json:"author"`
	CreatedBy UserID    `gorm:"type:uuid;index:ix_quotes_created_by;not null" db:"created_by" json:"createdBy"`
	Creator   *User     `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (Quote) TableName() string { return "quotes" }
