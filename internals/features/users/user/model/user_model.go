package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// UserModel merepresentasikan akun login (lintas tenant).
type UserModel struct {
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName string    `gorm:"column:user_name;size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email    string    `gorm:"column:email;size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"column:password;not null" json:"-"`

	GoogleID *string `gorm:"column:google_id;size:255;uniqueIndex" json:"google_id,omitempty"`

	// role global lintas tenant (user, owner); role per sekolah ada di school_admins
	RolesGlobal pq.StringArray `gorm:"column:roles_global;type:text[];not null;default:'{user}'" json:"roles_global"`

	SecurityQuestion string `gorm:"column:security_question;type:text" json:"security_question,omitempty"`
	SecurityAnswer   string `gorm:"column:security_answer;size:255" json:"-"`

	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) HasGlobalRole(role string) bool {
	for _, r := range u.RolesGlobal {
		if r == role {
			return true
		}
	}
	return false
}
