package model

// Role is an administrative grouping of users. Roles are seeded out of band
// and only read by the web application.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:64;uniqueIndex;not null"`
}

// TableName pins the table name used by the persisted schema.
func (Role) TableName() string {
	return "roles"
}
