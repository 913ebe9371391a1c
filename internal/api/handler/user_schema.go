package handler

// --- Request types for /usuarios and /administradores ---

type createUserRequest struct {
	Name        string `json:"nome"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"senha"       validate:"required"`
	Status      int    `json:"status"`
	AccessLevel string `json:"nivelAcesso"`
}

type updateUserRequest struct {
	Name   string `json:"nome"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status *int   `json:"status"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"senhaAtual"`
	NewPassword     string `json:"novaSenha" validate:"required"`
}

type createAdminRequest struct {
	Name        string `json:"nome"        validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"senha"       validate:"required"`
	AccessLevel string `json:"nivelAcesso"`
}
