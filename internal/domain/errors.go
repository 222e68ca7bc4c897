package domain

import "errors"

// Errores de dominio (sin dependencias externas). El caller clasifica con
// errors.Is contra estos centinelas.
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrNotFound     = errors.New("recurso no encontrado")
)

// taggedError lleva un mensaje para el usuario y envuelve el centinela que
// clasifica la falla, de modo que Error() se muestra tal cual y errors.Is
// sigue funcionando.
type taggedError struct {
	sentinel error
	msg      string
}

func (e *taggedError) Error() string { return e.msg }
func (e *taggedError) Unwrap() error { return e.sentinel }

// Validation construye una falla de validación con mensaje para el usuario.
func Validation(msg string) error {
	return &taggedError{sentinel: ErrInvalidInput, msg: msg}
}

// Conflict construye una falla de unicidad con mensaje para el usuario.
func Conflict(msg string) error {
	return &taggedError{sentinel: ErrDuplicate, msg: msg}
}

// NotFound construye una falla de recurso inexistente con mensaje para el usuario.
func NotFound(msg string) error {
	return &taggedError{sentinel: ErrNotFound, msg: msg}
}
