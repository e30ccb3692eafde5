package create_booking

import "fmt"

// validateRequest валидирует входные данные запроса
// Тип места намеренно не валидируется: неизвестный тег обрабатывается
// каталогом как permissive fallback, а не как ошибка
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.LotID <= 0 {
		return fmt.Errorf("%w: lotID must be positive", ErrInvalidInput)
	}

	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: durationHours must be positive", ErrInvalidDuration)
	}

	return nil
}
