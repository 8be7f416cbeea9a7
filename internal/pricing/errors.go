package pricing

import "errors"

var (
	// ErrInvalidInput возвращается для отрицательных габаритов или веса.
	ErrInvalidInput = errors.New("invalid package dimensions")
	// ErrInvalidTier возвращается для тарифа с отрицательными ставками.
	ErrInvalidTier = errors.New("invalid rate tier")
)
