package model

// User is a visitor that submitted a name at least once.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"size:64;uniqueIndex;not null"`
	RoleID   *uint  `json:"role_id,omitempty" gorm:"index"`

	// Belongs-to, only declared so migrations create the foreign key.
	// Never preloaded.
	Role *Role `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

// TableName pins the table name used by the persisted schema.
func (User) TableName() string {
	return "users"
}

// Models lists every persisted model in migration order.
func Models() []interface{} {
	return []interface{}{&Role{}, &User{}}
}
