package request

type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName string  `json:"full_name" validate:"required,min=2,max=100"`
	Company  *string `json:"company,omitempty" validate:"omitempty,max=100"`
	Role     string  `json:"role" validate:"required,oneof=admin user"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Company  *string `json:"company,omitempty" validate:"omitempty,max=100"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ImportUsersRequest carries previously exported profiles back in.
type ImportUsersRequest struct {
	Users []ImportedUser `json:"users" validate:"required,min=1,dive"`
}

type ImportedUser struct {
	Email    string  `json:"email" validate:"required,email"`
	FullName string  `json:"full_name" validate:"required"`
	Company  *string `json:"company,omitempty"`
	Role     string  `json:"role" validate:"required,oneof=admin user"`
}
