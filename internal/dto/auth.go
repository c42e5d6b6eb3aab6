package dto

type RegisterRequestDTO struct {
	Login          string `json:"login" validate:"required,min=3,max=50"`
	Password       string `json:"password" validate:"required,min=8"`
	BankCredential string `json:"bank_credential" validate:"required"`
	PrimaryAccount string `json:"primary_account" validate:"required"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
