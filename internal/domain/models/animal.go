package models

// Animal mirrors the farm API representation of a single animal.
// Dates travel as ISO calendar strings (YYYY-MM-DD); nullable columns map to pointers.
type Animal struct {
	ID                   int      `json:"id"`
	FincaID              int      `json:"finca_id"`
	NumeroIdentificacion string   `json:"numero_identificacion"`
	Nombre               *string  `json:"nombre"`
	Sexo                 string   `json:"sexo"`
	FechaNacimiento      string   `json:"fecha_nacimiento"`
	Raza                 string   `json:"raza"`
	Categoria            *string  `json:"categoria"`
	Proposito            string   `json:"proposito"`
	Estado               string   `json:"estado"`
	PesoActual           *float64 `json:"peso_actual"`
	TipoAdquisicion      string   `json:"tipo_adquisicion"`
	FechaIngreso         string   `json:"fecha_ingreso"`
	LoteActual           *string  `json:"lote_actual"`
	PotreroActual        *string  `json:"potrero_actual"`
	Observaciones        *string  `json:"observaciones"`
}

// EstadoActivo is the inventory status of animals currently on the farm.
const EstadoActivo = "activo"

// AnimalList is the paginated list envelope returned by the farm API.
type AnimalList struct {
	Total int      `json:"total"`
	Items []Animal `json:"items"`
	Skip  int      `json:"skip"`
	Limit int      `json:"limit"`
}
