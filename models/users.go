package models

// User represents a portal staff account. Credentials are checked by direct
// equality against the stored value; session and token handling are out of
// scope for this service.
type User struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"column:name;type:varchar(100);not null;uniqueIndex" json:"name"`
	Password string `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role     string `gorm:"column:role;type:varchar(50);not null;default:'Barangay Official'" json:"role"`

	BaseModel
}

// TableName sets the table name for User
func (User) TableName() string {
	return "users"
}
