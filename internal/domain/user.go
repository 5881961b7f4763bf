package domain

// User represents an account that can authenticate and own portfolios.
type User struct {
	BaseModel
	Username       string      `gorm:"type:varchar(255);not null;index:idx_users_username" json:"username"`
	Email          string      `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email" json:"email"`
	HashedPassword string      `gorm:"type:varchar(255);not null" json:"-"`
	Portfolios     []Portfolio `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"portfolios,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// SortableColumns lists the columns list queries may sort or filter on.
func (User) SortableColumns() []string {
	return []string{"id", "created_at", "modified_at", "is_active", "username", "email"}
}
