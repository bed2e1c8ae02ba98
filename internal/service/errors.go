package service

import "fmt"

// ValidationError — клиентская ошибка приема: обязательное поле
// отсутствует или null. Состояние хранилища не меняется.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q is required and must not be null", e.Field)
}

// NotFoundError — запрос к пустому хранилищу.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// SerializationError — не удалось собрать экспортный документ.
// Серверная ошибка, частичный вывод наружу не отдается.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("failed to serialize export document: %v", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}
