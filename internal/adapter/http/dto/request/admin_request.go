package request

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
