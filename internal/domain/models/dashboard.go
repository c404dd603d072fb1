package models

import "time"

// DashboardStats is the snapshot of counters shown on the dashboard.
// It is a value recomputed from the raw record lists on every request;
// the scheduler additionally persists one per day for history.
type DashboardStats struct {
	TotalAnimales          int     `bson:"total_animales" json:"total_animales"`
	AnimalesActivos        int     `bson:"animales_activos" json:"animales_activos"`
	ControlesSanitariosMes int     `bson:"controles_sanitarios_mes" json:"controles_sanitarios_mes"`
	HembrasPrenadas        int     `bson:"hembras_prenadas" json:"hembras_prenadas"`
	ProduccionLecheMes     float64 `bson:"produccion_leche_mes" json:"produccion_leche_mes"`
	BalanceMes             float64 `bson:"balance_mes" json:"balance_mes"`
	AlertasPendientes      int     `bson:"alertas_pendientes" json:"alertas_pendientes"`
	ProximosPartos         int     `bson:"proximos_partos" json:"proximos_partos"`
}

// StatsSnapshot wraps a DashboardStats with the moment it was computed,
// for persistence.
type StatsSnapshot struct {
	Stats     DashboardStats `bson:"stats" json:"stats"`
	Fecha     string         `bson:"fecha" json:"fecha"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
}

// Alert categories.
const (
	AlertaParto        = "parto"
	AlertaVacuna       = "vacuna"
	AlertaSanitario    = "sanitario"
	AlertaReproductivo = "reproductivo"
	AlertaOtro         = "otro"
)

// Alert priorities.
const (
	PrioridadAlta  = "alta"
	PrioridadMedia = "media"
	PrioridadBaja  = "baja"
)

// Alerta is a derived, never-persisted notice about a time-sensitive
// condition (an upcoming birth, a recent health intervention). IDs are
// "{tipo}-{source record id}", unique within one derivation pass.
type Alerta struct {
	ID           string  `json:"id"`
	Tipo         string  `json:"tipo"`
	Prioridad    string  `json:"prioridad"`
	Titulo       string  `json:"titulo"`
	Descripcion  string  `json:"descripcion"`
	Fecha        string  `json:"fecha"`
	AnimalID     *int    `json:"animal_id,omitempty"`
	AnimalNumero *string `json:"animal_numero,omitempty"`
	AnimalNombre *string `json:"animal_nombre,omitempty"`
}
