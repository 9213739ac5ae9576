package structs

type LoginRequest struct {
	EmailOrPhone string `json:"emailOrPhone" binding:"required"`
}

type SignUpRequest struct {
	Name         string `json:"name" binding:"required"`
	EmailOrPhone string `json:"emailOrPhone" binding:"required"`
	Password     string `json:"password"`
}
