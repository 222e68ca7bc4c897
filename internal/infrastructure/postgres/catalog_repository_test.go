package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogos-api/internal/domain/entity"
)

// Las consultas se arman a partir del descriptor de tabla; estos tests fijan
// el contrato de alineación entre columns, selectList, scanDest y values para
// que un cambio en una de las cuatro no pase desapercibido.

func TestCatalogTable_ColumnasOpcionales(t *testing.T) {
	assert.NotContains(t, ColorsTable.columns(), "abbreviation")
	assert.NotContains(t, ColorsTable.columns(), "description")
	assert.NotContains(t, RolesTable.columns(), "abbreviation")

	assert.Contains(t, UnitOfMeasuresTable.columns(), "abbreviation")
	assert.NotContains(t, UnitOfMeasuresTable.columns(), "description")

	assert.Contains(t, WoodTypesTable.columns(), "description")
	assert.NotContains(t, WoodTypesTable.columns(), "abbreviation")
	assert.Contains(t, FurnitureTypesTable.columns(), "description")
}

func TestCatalogTable_AlineacionScanYValues(t *testing.T) {
	tables := []CatalogTable{
		ColorsTable, RolesTable, UnitOfMeasuresTable, WoodTypesTable, FurnitureTypesTable,
	}
	for _, tbl := range tables {
		t.Run(tbl.Name, func(t *testing.T) {
			var it entity.CatalogItem
			cols := tbl.columns()

			// values escribe exactamente las columnas de columns; scanDest lee
			// además el ID que encabeza selectList.
			assert.Len(t, tbl.values(&it), len(cols))
			require.Len(t, tbl.scanDest(&it), len(cols)+1)

			assert.Equal(t, "name", cols[0])
			assert.Same(t, &it.ID, tbl.scanDest(&it)[0].(*int64))
			assert.Same(t, &it.Name, tbl.scanDest(&it)[1].(*string))
		})
	}
}

func TestCatalogTable_SelectListEmpiezaConID(t *testing.T) {
	assert.Equal(t,
		"id_color, name, active, created_at, updated_at, deleted_at, created_by, updated_by, deleted_by",
		ColorsTable.selectList())
	assert.Equal(t,
		"id_unit_of_measure, name, abbreviation, active, created_at, updated_at, deleted_at, created_by, updated_by, deleted_by",
		UnitOfMeasuresTable.selectList())
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(assert.AnError))
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"})))
}
