package models

// User represents the user model in the database
type User struct {
	Base
	Name      string   `gorm:"size:50;not null" json:"name"`
	Email     string   `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Password  string   `gorm:"not null" json:"-"`
	Confirmed bool     `gorm:"default:false" json:"confirmed"`
	Token     *string  `gorm:"size:6;index" json:"-"`
	Budgets   []Budget `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"budgets,omitempty"`
}
