package domain

// User пользователь сервиса
// Password хранит bcrypt-хеш, открытый пароль никогда не сохраняется
type User struct {
	ID       string
	Username string
	Password string
}
