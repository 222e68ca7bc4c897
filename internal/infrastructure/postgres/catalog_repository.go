package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogos-api/internal/domain"
	"github.com/jhoicas/catalogos-api/internal/domain/entity"
	"github.com/jhoicas/catalogos-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogTable describe la tabla física de un catálogo.
type CatalogTable struct {
	Name            string
	IDColumn        string
	HasAbbreviation bool
	HasDescription  bool
}

// Tablas de los catálogos soportados, una por kind (ver migrations).
var (
	ColorsTable         = CatalogTable{Name: "colors", IDColumn: "id_color"}
	RolesTable          = CatalogTable{Name: "roles", IDColumn: "id_role"}
	UnitOfMeasuresTable = CatalogTable{Name: "unit_of_measures", IDColumn: "id_unit_of_measure", HasAbbreviation: true}
	WoodTypesTable      = CatalogTable{Name: "wood_types", IDColumn: "id_wood_type", HasDescription: true}
	FurnitureTypesTable = CatalogTable{Name: "furniture_types", IDColumn: "id_furniture_type", HasDescription: true}
)

// columns devuelve las columnas escribibles en orden estable (sin el ID).
func (t CatalogTable) columns() []string {
	cols := []string{"name"}
	if t.HasAbbreviation {
		cols = append(cols, "abbreviation")
	}
	if t.HasDescription {
		cols = append(cols, "description")
	}
	return append(cols, "active", "created_at", "updated_at", "deleted_at",
		"created_by", "updated_by", "deleted_by")
}

// selectList devuelve la lista SELECT: el ID seguido de columns.
func (t CatalogTable) selectList() string {
	return t.IDColumn + ", " + strings.Join(t.columns(), ", ")
}

// scanDest alinea los destinos de Scan con selectList.
func (t CatalogTable) scanDest(it *entity.CatalogItem) []any {
	dest := []any{&it.ID, &it.Name}
	if t.HasAbbreviation {
		dest = append(dest, &it.Abbreviation)
	}
	if t.HasDescription {
		dest = append(dest, &it.Description)
	}
	return append(dest, &it.Active, &it.CreatedAt, &it.UpdatedAt, &it.DeletedAt,
		&it.CreatedBy, &it.UpdatedBy, &it.DeletedBy)
}

// values alinea los valores a escribir con columns.
func (t CatalogTable) values(it *entity.CatalogItem) []any {
	vals := []any{it.Name}
	if t.HasAbbreviation {
		vals = append(vals, it.Abbreviation)
	}
	if t.HasDescription {
		vals = append(vals, it.Description)
	}
	return append(vals, it.Active, it.CreatedAt, it.UpdatedAt, it.DeletedAt,
		it.CreatedBy, it.UpdatedBy, it.DeletedBy)
}

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL,
// parametrizada por tabla. Usable con pool o tx (Querier).
type CatalogRepo struct {
	q     Querier
	table CatalogTable
}

// NewCatalogRepository construye el adaptador de persistencia para la tabla dada.
func NewCatalogRepository(q Querier, table CatalogTable) *CatalogRepo {
	return &CatalogRepo{q: q, table: table}
}

// Insert persiste un elemento nuevo y asigna el ID generado por la secuencia.
// Una violación del índice único se reporta como domain.ErrDuplicate.
func (r *CatalogRepo) Insert(item *entity.CatalogItem) error {
	cols := r.table.columns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.table.Name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), r.table.IDColumn)

	err := r.q.QueryRow(context.Background(), query, r.table.values(item)...).Scan(&item.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert %s: %w", r.table.Name, err)
	}
	return nil
}

// GetByID obtiene un elemento por ID, activo o no.
func (r *CatalogRepo) GetByID(id int64) (*entity.CatalogItem, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		r.table.selectList(), r.table.Name, r.table.IDColumn)
	return r.queryOne(query, id)
}

// FindByName busca por nombre sin distinguir mayúsculas, activos e inactivos
// por igual; excludeID > 0 excluye ese ID.
func (r *CatalogRepo) FindByName(name string, excludeID int64) (*entity.CatalogItem, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE LOWER(name) = LOWER($1) AND %s <> $2",
		r.table.selectList(), r.table.Name, r.table.IDColumn)
	return r.queryOne(query, name, excludeID)
}

// FindByAbbreviation busca por abreviatura sin distinguir mayúsculas.
func (r *CatalogRepo) FindByAbbreviation(abbreviation string, excludeID int64) (*entity.CatalogItem, error) {
	if !r.table.HasAbbreviation {
		return nil, nil
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE LOWER(abbreviation) = LOWER($1) AND %s <> $2",
		r.table.selectList(), r.table.Name, r.table.IDColumn)
	return r.queryOne(query, abbreviation, excludeID)
}

// ListActive lista los elementos activos ordenados por nombre.
func (r *CatalogRepo) ListActive() ([]*entity.CatalogItem, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE active ORDER BY name",
		r.table.selectList(), r.table.Name)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table.Name, err)
	}
	defer rows.Close()

	var list []*entity.CatalogItem
	for rows.Next() {
		var it entity.CatalogItem
		if err := rows.Scan(r.table.scanDest(&it)...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table.Name, err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Save persiste la mutación de un elemento ya leído. Mismas semánticas de
// ErrDuplicate que Insert.
func (r *CatalogRepo) Save(item *entity.CatalogItem) error {
	cols := r.table.columns()
	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $1",
		r.table.Name, strings.Join(sets, ", "), r.table.IDColumn)

	args := append([]any{item.ID}, r.table.values(item)...)
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update %s: %w", r.table.Name, err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) queryOne(query string, args ...any) (*entity.CatalogItem, error) {
	var it entity.CatalogItem
	err := r.q.QueryRow(context.Background(), query, args...).Scan(r.table.scanDest(&it)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table.Name, err)
	}
	return &it, nil
}
