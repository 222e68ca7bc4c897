package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErroresEtiquetados(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
		msg      string
	}{
		{Validation("El nombre del color es requerido"), ErrInvalidInput, "El nombre del color es requerido"},
		{Conflict("Ya existe un color con el nombre 'rojo'"), ErrDuplicate, "Ya existe un color con el nombre 'rojo'"},
		{NotFound("No se encontró un color con ID 7"), ErrNotFound, "No se encontró un color con ID 7"},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.sentinel)
		assert.Equal(t, tc.msg, tc.err.Error())
	}
}

func TestErroresEtiquetados_SobrevivenWrapping(t *testing.T) {
	err := fmt.Errorf("crear color: %w", Conflict("Ya existe un color con el nombre 'rojo'"))
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.False(t, errors.Is(err, ErrNotFound))
}
