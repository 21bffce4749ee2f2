package entities

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"`
	Email    string `gorm:"type:varchar(255)" json:"email,omitempty"`
	Password string `gorm:"not null" json:"-"`

	Timestamp
}
