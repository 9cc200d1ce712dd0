package models

// User represents a registered account.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"type:varchar(80);not null"`
	Username     string `json:"username" gorm:"uniqueIndex;type:varchar(80);not null"`
	PasswordHash string `json:"-" gorm:"column:password;type:varchar(200);not null"` // never serialized
}

// TableName keeps the table name stable across drivers.
func (User) TableName() string {
	return "users"
}
