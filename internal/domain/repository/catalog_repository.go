package repository

import "github.com/jhoicas/catalogos-api/internal/domain/entity"

// CatalogRepository define el puerto de persistencia para un catálogo (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay fila.
type CatalogRepository interface {
	// Insert persiste un elemento nuevo y asigna su ID. Devuelve
	// domain.ErrDuplicate si la escritura pierde la carrera contra el
	// índice único del almacén.
	Insert(item *entity.CatalogItem) error
	GetByID(id int64) (*entity.CatalogItem, error)
	// FindByName busca por nombre sin distinguir mayúsculas. Un excludeID
	// mayor que cero excluye ese ID (alcance de unicidad en update).
	FindByName(name string, excludeID int64) (*entity.CatalogItem, error)
	// FindByAbbreviation igual que FindByName, para catálogos con abreviatura.
	FindByAbbreviation(abbreviation string, excludeID int64) (*entity.CatalogItem, error)
	ListActive() ([]*entity.CatalogItem, error)
	// Save persiste la mutación de un elemento ya leído; mismas semánticas
	// de ErrDuplicate que Insert.
	Save(item *entity.CatalogItem) error
}
