package auth

import "errors"

var (
	// ErrUnauthorized возвращается при неверном пароле или отсутствии пользователя
	ErrUnauthorized = errors.New("invalid username or password")

	// ErrUserAlreadyExists возвращается, когда username уже занят
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidInput возвращается при пустом username или пароле
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
