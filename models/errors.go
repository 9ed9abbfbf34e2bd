package models

import (
	"github.com/pkg/errors"
)

// Базовые виды ошибок, наружу отдаются через errors.Wrap,
// вид проверяется через errors.Is.
var (
	ErrValidation        = errors.New("некорректные данные")
	ErrInvalidTransition = errors.New("смена статуса недоступна")
	ErrNotFound          = errors.New("запись не найдена")
)
