package models

// ControlSanitario is a veterinary intervention (vaccination, treatment,
// deworming, surgery) recorded against one animal.
type ControlSanitario struct {
	ID           int      `json:"id"`
	FincaID      int      `json:"finca_id"`
	AnimalID     int      `json:"animal_id"`
	TipoEvento   string   `json:"tipo_evento"`
	FechaEvento  string   `json:"fecha_evento"`
	Producto     *string  `json:"producto"`
	Dosis        *string  `json:"dosis"`
	Veterinario  *string  `json:"veterinario"`
	Costo        *float64 `json:"costo"`
	ProximaDosis *string  `json:"proxima_dosis"`

	// Denormalized animal info the API attaches to list responses.
	AnimalNumero *string `json:"animal_numero,omitempty"`
	AnimalNombre *string `json:"animal_nombre,omitempty"`
}

// ControlSanitarioList is the paginated list envelope returned by the farm API.
type ControlSanitarioList struct {
	Total int                `json:"total"`
	Items []ControlSanitario `json:"items"`
	Skip  int                `json:"skip"`
	Limit int                `json:"limit"`
}
