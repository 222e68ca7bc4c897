package entity

import "time"

// Límites de longitud compartidos por todos los catálogos.
const (
	NameMaxLen         = 50
	AbbreviationMaxLen = 10
)

// CatalogItem es un registro de un catálogo de referencia (colores, roles,
// unidades de medida, tipos de madera, tipos de mueble). Los campos
// opcionales aplican según el CatalogKind correspondiente.
type CatalogItem struct {
	ID           int64
	Name         string
	Abbreviation string // solo unidades de medida
	Description  string // solo tipos de madera y tipos de mueble
	Active       bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // no nulo exactamente cuando Active es false

	CreatedBy *string
	UpdatedBy *string
	DeletedBy *string
}

// CatalogKind describe la forma de un catálogo: qué campos opcionales maneja,
// sus límites y el género gramatical para los mensajes al usuario.
type CatalogKind struct {
	Code             string // identificador estable: "colors", "roles", ...
	Singular         string // "color", "unidad de medida", ...
	Feminine         bool
	HasAbbreviation  bool
	HasDescription   bool
	DescriptionMax   int
	AllowActiveInput bool // el caller puede fijar Active al crear
}

// Catálogos soportados.
var (
	KindColor = CatalogKind{Code: "colors", Singular: "color"}

	KindRole = CatalogKind{Code: "roles", Singular: "rol"}

	KindUnitOfMeasure = CatalogKind{
		Code:             "unit_of_measures",
		Singular:         "unidad de medida",
		Feminine:         true,
		HasAbbreviation:  true,
		AllowActiveInput: true,
	}

	KindWoodType = CatalogKind{
		Code:           "wood_types",
		Singular:       "tipo de madera",
		HasDescription: true,
		DescriptionMax: 200,
	}

	KindFurnitureType = CatalogKind{
		Code:           "furniture_types",
		Singular:       "tipo de mueble",
		HasDescription: true,
		DescriptionMax: 255,
	}
)

// Un devuelve el artículo indefinido: "un color", "una unidad de medida".
func (k CatalogKind) Un() string {
	if k.Feminine {
		return "una"
	}
	return "un"
}

// Otro devuelve "otro"/"otra" según el género del catálogo.
func (k CatalogKind) Otro() string {
	if k.Feminine {
		return "otra"
	}
	return "otro"
}

// Del devuelve el genitivo: "del color", "de la unidad de medida".
func (k CatalogKind) Del() string {
	if k.Feminine {
		return "de la " + k.Singular
	}
	return "del " + k.Singular
}
