package model

// Setting is one key/value row in the client-local sqlite store. This is
// where the endpoint URL persists between runs.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

// AdminAccount guards the settings and member-management endpoints.
type AdminAccount struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
}

func (Setting) TableName() string      { return "settings" }
func (AdminAccount) TableName() string { return "admins" }
