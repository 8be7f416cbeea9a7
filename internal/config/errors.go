package config

import "errors"

// ErrInvalidConfig возвращается для несогласованной конфигурации.
var ErrInvalidConfig = errors.New("invalid config")
