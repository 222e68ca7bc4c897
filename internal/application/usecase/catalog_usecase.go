package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jhoicas/catalogos-api/internal/application/dto"
	"github.com/jhoicas/catalogos-api/internal/domain"
	"github.com/jhoicas/catalogos-api/internal/domain/entity"
	"github.com/jhoicas/catalogos-api/internal/domain/repository"
)

// CatalogUseCase ciclo de vida genérico de un catálogo de referencia:
// validar → chequear unicidad → persistir → serializar. Se instancia una vez
// por catálogo; todo el estado mutable compartido vive en el repositorio.
type CatalogUseCase struct {
	kind entity.CatalogKind
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso para un catálogo concreto.
func NewCatalogUseCase(kind entity.CatalogKind, repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{kind: kind, repo: repo}
}

// Kind devuelve el descriptor del catálogo que atiende este caso de uso.
func (uc *CatalogUseCase) Kind() entity.CatalogKind { return uc.kind }

// List devuelve los elementos activos serializados.
func (uc *CatalogUseCase) List() (*dto.CatalogListResponse, error) {
	items, err := uc.repo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *dto.NewCatalogItemResponse(it))
	}
	return &dto.CatalogListResponse{Items: out}, nil
}

// Create valida la entrada, verifica unicidad y persiste un elemento nuevo.
// El actor, si no es vacío, queda registrado en created_by/updated_by.
func (uc *CatalogUseCase) Create(in dto.CatalogItemRequest, actor string) (*dto.CatalogItemResponse, error) {
	in = normalize(in)
	if err := in.Validate(uc.kind); err != nil {
		return nil, domain.Validation(validationMessage(err))
	}
	if err := uc.checkUnique(in, 0); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &entity.CatalogItem{
		Name:      in.Name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if uc.kind.HasAbbreviation {
		item.Abbreviation = in.Abbreviation
	}
	if uc.kind.HasDescription {
		item.Description = in.Description
	}
	if uc.kind.AllowActiveInput && in.Active != nil && !*in.Active {
		// Un elemento creado inactivo queda fechado como baja para sostener
		// el invariante deleted_at ⟺ no activo.
		item.Active = false
		item.DeletedAt = &now
	}
	if actor != "" {
		item.CreatedBy = &actor
		item.UpdatedBy = &actor
	}

	if err := uc.repo.Insert(item); err != nil {
		// Carrera perdida contra el índice único: misma falla que el pre-chequeo.
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, uc.conflictName(in.Name, false)
		}
		return nil, err
	}
	return dto.NewCatalogItemResponse(item), nil
}

// GetByID devuelve el elemento crudo (por ejemplo para pre-poblar un
// formulario de edición). Un elemento dado de baja se reporta como no
// encontrado.
func (uc *CatalogUseCase) GetByID(id int64) (*entity.CatalogItem, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.Active {
		return nil, domain.NotFound(fmt.Sprintf(
			"No se encontró %s %s con ID %d", uc.kind.Un(), uc.kind.Singular, id))
	}
	return item, nil
}

// Update valida la entrada, verifica unicidad excluyendo al propio elemento
// y persiste los campos editables. Identidad, estado activo y campos de
// creación no se tocan.
func (uc *CatalogUseCase) Update(id int64, in dto.CatalogItemRequest, actor string) (*dto.CatalogItemResponse, error) {
	item, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	in = normalize(in)
	if err := in.Validate(uc.kind); err != nil {
		return nil, domain.Validation(validationMessage(err))
	}
	if err := uc.checkUnique(in, id); err != nil {
		return nil, err
	}

	item.Name = in.Name
	if uc.kind.HasAbbreviation {
		item.Abbreviation = in.Abbreviation
	}
	if uc.kind.HasDescription {
		item.Description = in.Description
	}
	item.UpdatedAt = time.Now()
	if actor != "" {
		item.UpdatedBy = &actor
	}

	if err := uc.repo.Save(item); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, uc.conflictName(in.Name, true)
		}
		return nil, err
	}
	return dto.NewCatalogItemResponse(item), nil
}

// Delete marca el elemento como inactivo y fecha la baja. Una segunda
// llamada sobre el mismo ID reporta no encontrado: el elemento ya no está
// activo.
func (uc *CatalogUseCase) Delete(id int64, actor string) error {
	item, err := uc.GetByID(id)
	if err != nil {
		return err
	}
	now := time.Now()
	item.Active = false
	item.DeletedAt = &now
	item.UpdatedAt = now
	if actor != "" {
		item.DeletedBy = &actor
	}
	return uc.repo.Save(item)
}

// checkUnique ejecuta el pre-chequeo de unicidad, con alcance de create
// (excludeID 0) o de update. La ventana de carrera que deja abierta la
// cierra el índice único del almacén.
func (uc *CatalogUseCase) checkUnique(in dto.CatalogItemRequest, excludeID int64) error {
	existing, err := uc.repo.FindByName(in.Name, excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return uc.conflictName(in.Name, excludeID > 0)
	}
	if uc.kind.HasAbbreviation {
		existing, err = uc.repo.FindByAbbreviation(in.Abbreviation, excludeID)
		if err != nil {
			return err
		}
		if existing != nil {
			return uc.conflictAbbreviation(in.Abbreviation, excludeID > 0)
		}
	}
	return nil
}

func (uc *CatalogUseCase) conflictName(name string, update bool) error {
	article := uc.kind.Un()
	if update {
		article = uc.kind.Otro()
	}
	return domain.Conflict(fmt.Sprintf(
		"Ya existe %s %s con el nombre '%s'", article, uc.kind.Singular, name))
}

func (uc *CatalogUseCase) conflictAbbreviation(abbreviation string, update bool) error {
	article := uc.kind.Un()
	if update {
		article = uc.kind.Otro()
	}
	return domain.Conflict(fmt.Sprintf(
		"Ya existe %s %s con la abreviatura '%s'", article, uc.kind.Singular, abbreviation))
}

func normalize(in dto.CatalogItemRequest) dto.CatalogItemRequest {
	in.Name = strings.TrimSpace(in.Name)
	in.Abbreviation = strings.TrimSpace(in.Abbreviation)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// validationMessage extrae un único mensaje de las fallas de ozzo, con el
// nombre siempre primero.
func validationMessage(err error) string {
	var ve validation.Errors
	if errors.As(err, &ve) {
		for _, field := range []string{"name", "abbreviation", "description"} {
			if fieldErr, ok := ve[field]; ok {
				return fieldErr.Error()
			}
		}
	}
	return err.Error()
}
