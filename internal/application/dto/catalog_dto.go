package dto

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jhoicas/catalogos-api/internal/domain/entity"
)

// CatalogItemRequest entrada para crear o actualizar un elemento de catálogo.
// Abbreviation y Description solo se leen en los catálogos que los manejan.
type CatalogItemRequest struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Description  string `json:"description"`
	// Active solo se acepta al crear y solo en catálogos que lo permiten
	// (unidades de medida); nil equivale a true. En update se ignora: la
	// baja es exclusiva de Delete.
	Active *bool `json:"active"`
}

// Validate aplica las reglas estructurales del catálogo indicado. Los campos
// deben venir ya recortados (TrimSpace).
func (r CatalogItemRequest) Validate(kind entity.CatalogKind) error {
	fields := []*validation.FieldRules{
		validation.Field(&r.Name,
			validation.Required.Error(fmt.Sprintf("El nombre %s es requerido", kind.Del())),
			validation.RuneLength(1, entity.NameMaxLen).Error(
				fmt.Sprintf("El nombre no puede exceder %d caracteres", entity.NameMaxLen)),
		),
	}
	if kind.HasAbbreviation {
		fields = append(fields, validation.Field(&r.Abbreviation,
			validation.Required.Error(fmt.Sprintf("La abreviatura %s es requerida", kind.Del())),
			validation.RuneLength(1, entity.AbbreviationMaxLen).Error(
				fmt.Sprintf("La abreviatura no puede exceder %d caracteres", entity.AbbreviationMaxLen)),
		))
	}
	if kind.HasDescription {
		fields = append(fields, validation.Field(&r.Description,
			validation.RuneLength(0, kind.DescriptionMax).Error(
				fmt.Sprintf("La descripción no puede exceder %d caracteres", kind.DescriptionMax)),
		))
	}
	return validation.ValidateStruct(&r, fields...)
}

// CatalogItemResponse salida serializada de un elemento de catálogo. Los
// campos de auditoría de actor no se exponen.
type CatalogItemResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Abbreviation string     `json:"abbreviation,omitempty"`
	Description  string     `json:"description,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// CatalogListResponse listado de elementos activos de un catálogo.
type CatalogListResponse struct {
	Items []CatalogItemResponse `json:"items"`
}

// NewCatalogItemResponse serializa una entidad de catálogo.
func NewCatalogItemResponse(it *entity.CatalogItem) *CatalogItemResponse {
	if it == nil {
		return nil
	}
	return &CatalogItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Abbreviation: it.Abbreviation,
		Description:  it.Description,
		Active:       it.Active,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
		DeletedAt:    it.DeletedAt,
	}
}
