package cars

import "errors"

var (
	// ErrInvalidID возвращается, когда id не соответствует формату хранилища
	ErrInvalidID = errors.New("invalid car id")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
