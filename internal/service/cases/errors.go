package cases

import "errors"

var (
	// ErrCaseNotFound Кейса с таким ID нет в каталоге
	ErrCaseNotFound = errors.New("case not found")
	// ErrInsufficientBalance Баланса не хватает на открытие кейса
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrItemNotFound Предмета нет в инвентаре (уже продан или чужой ID)
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidAmount Сумма пополнения должна быть положительной
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrUnauthorized В контексте запроса нет ID пользователя
	ErrUnauthorized = errors.New("user id not found in context")
)
