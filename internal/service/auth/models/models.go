package models

// Credentials учетные данные для регистрации и входа
type Credentials struct {
	Username string
	Password string
}
