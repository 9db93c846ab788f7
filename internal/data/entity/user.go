package entity

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	Base
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FullName     string   `db:"full_name"`
	Company      *string  `db:"company"`
	AvatarURL    *string  `db:"avatar_url"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}
