package auth

type RegisterRequest struct {
	Name     string `json:"name"` // Отображаемое имя, опционально
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
