package shop

import "errors"

var (
	// ErrShopClosed возвращается, когда салон не работает в указанную дату
	ErrShopClosed = errors.New("shop is not open on this date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
