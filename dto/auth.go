package dto

// LoginInput định nghĩa request đăng nhập
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// GoogleLoginInput định nghĩa request đăng nhập bằng Google
type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse định nghĩa response đăng nhập
type LoginResponse struct {
	AccessToken string           `json:"accessToken"`
	Employee    EmployeeResponse `json:"employee"`
}
