package models

// Reproductive event types as encoded by the farm API.
const (
	EventoServicio    = "servicio"
	EventoDiagnostico = "diagnostico"
	EventoParto       = "parto"
	EventoAborto      = "aborto"
	EventoSecado      = "secado"
)

// Diagnosis outcomes attached to EventoDiagnostico records.
const (
	DiagnosticoPrenada = "prenada"
	DiagnosticoVacia   = "vacia"
	DiagnosticoDudosa  = "dudosa"
)

// ControlReproductivo is one breeding-cycle event (service, diagnosis,
// birth, abortion, drying-off) for a female animal.
type ControlReproductivo struct {
	ID          int    `json:"id"`
	FincaID     int    `json:"finca_id"`
	AnimalID    int    `json:"animal_id"`
	TipoEvento  string `json:"tipo_evento"`
	FechaEvento string `json:"fecha_evento"`

	// Diagnosis fields, present when TipoEvento == EventoDiagnostico.
	Diagnostico        *string `json:"diagnostico"`
	MetodoDiagnostico  *string `json:"metodo_diagnostico"`
	DiasGestacion      *int    `json:"dias_gestacion"`
	FechaProbableParto *string `json:"fecha_probable_parto"`

	Veterinario   *string  `json:"veterinario"`
	Costo         *float64 `json:"costo"`
	Observaciones *string  `json:"observaciones"`

	// Denormalized animal info the API attaches to list responses.
	AnimalNumero *string `json:"animal_numero,omitempty"`
	AnimalNombre *string `json:"animal_nombre,omitempty"`
}

// ControlReproductivoList is the paginated list envelope returned by the farm API.
type ControlReproductivoList struct {
	Total int                   `json:"total"`
	Items []ControlReproductivo `json:"items"`
	Skip  int                   `json:"skip"`
	Limit int                   `json:"limit"`
}
