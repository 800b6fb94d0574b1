package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrShopClosed возвращается, когда у салона нет открытых часов работы на дату
	ErrShopClosed = errors.New("shop is not open on this date")

	// ErrDataUnavailable возвращается, когда не удалось прочитать записи, сотрудников или настройки салона
	ErrDataUnavailable = errors.New("usecase: failed to load data")
)
