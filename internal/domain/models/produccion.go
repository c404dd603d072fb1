package models

// Production types as encoded by the farm API.
const (
	ProduccionLeche = "leche"
	ProduccionCarne = "carne"
	ProduccionLana  = "lana"
)

// RegistroProduccion is one yield measurement (milk volume, carcass
// weight, ...) for an animal on a date.
type RegistroProduccion struct {
	ID             int    `json:"id"`
	FincaID        int    `json:"finca_id"`
	AnimalID       int    `json:"animal_id"`
	TipoProduccion string `json:"tipo_produccion"`
	Fecha          string `json:"fecha"`

	// Milk production only.
	CantidadLitros *float64 `json:"cantidad_litros"`
	Turno          *string  `json:"turno"`

	// Meat production only.
	PesoVenta *float64 `json:"peso_venta"`

	Calidad       *string `json:"calidad"`
	Observaciones *string `json:"observaciones"`
	AnimalNumero  *string `json:"animal_numero,omitempty"`
	AnimalNombre  *string `json:"animal_nombre,omitempty"`
}

// RegistroProduccionList is the paginated list envelope returned by the farm API.
type RegistroProduccionList struct {
	Total int                  `json:"total"`
	Items []RegistroProduccion `json:"items"`
	Skip  int                  `json:"skip"`
	Limit int                  `json:"limit"`
}
