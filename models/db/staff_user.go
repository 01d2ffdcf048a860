package dbmodels

import (
	"admission-backend/models"
	"fmt"
	"strings"
	"time"
)

type StaffUser struct {
	BaseModel
	Password  string `gorm:"type:varchar(128)"`
	FirstName string `gorm:"type:varchar(150)"`
	LastName  string `gorm:"type:varchar(150)"`
	Email     string `gorm:"type:varchar(255);uniqueIndex"`
	IsActive  bool
	Role      models.UserRole `gorm:"type:varchar(50)"`
	LastLogin time.Time
}

func (r StaffUser) GetFullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", r.FirstName, r.LastName))
}
