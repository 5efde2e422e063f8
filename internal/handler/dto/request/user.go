package request

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin groomer"`
}

type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Role *string `json:"role" binding:"omitempty,oneof=admin groomer"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}
