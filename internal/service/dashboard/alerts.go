package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/ovalle/ganaderia/internal/domain/models"
)

// BuildAlerts derives the time-sensitive alert feed from reproductive
// and health event records. Pure; the resulting slice is sorted
// ascending by date and never persisted.
func BuildAlerts(
	reproductivos []models.ControlReproductivo,
	sanitarios []models.ControlSanitario,
	now time.Time,
) []models.Alerta {
	hoy := startOfDay(now)
	limite := hoy.AddDate(0, 0, 30)

	alertas := make([]models.Alerta, 0, len(reproductivos)+len(sanitarios))

	// Upcoming births: confirmed pregnancies due within 30 days.
	for _, r := range reproductivos {
		if r.Diagnostico == nil || *r.Diagnostico != models.DiagnosticoPrenada || r.FechaProbableParto == nil {
			continue
		}
		fechaParto, err := time.Parse(dateLayout, *r.FechaProbableParto)
		if err != nil {
			continue
		}
		if fechaParto.Before(hoy) || fechaParto.After(limite) {
			continue
		}

		diasRestantes := daysBetween(fechaParto, hoy)
		prioridad := models.PrioridadMedia
		if diasRestantes <= 7 {
			prioridad = models.PrioridadAlta
		}

		animalID := r.AnimalID
		alertas = append(alertas, models.Alerta{
			ID:           fmt.Sprintf("%s-%d", models.AlertaParto, r.ID),
			Tipo:         models.AlertaParto,
			Prioridad:    prioridad,
			Titulo:       "Próximo Parto",
			Descripcion:  fmt.Sprintf("%s - Parto estimado en %d días", animalLabel(r.AnimalNumero), diasRestantes),
			Fecha:        *r.FechaProbableParto,
			AnimalID:     &animalID,
			AnimalNumero: r.AnimalNumero,
			AnimalNombre: r.AnimalNombre,
		})
	}

	// Recent health interventions from the past 30 days.
	for _, s := range sanitarios {
		fechaEvento, err := time.Parse(dateLayout, s.FechaEvento)
		if err != nil {
			continue
		}
		diasDesde := daysBetween(hoy, fechaEvento)
		if diasDesde < 0 || diasDesde > 30 {
			continue
		}

		producto := s.TipoEvento
		if s.Producto != nil && *s.Producto != "" {
			producto = *s.Producto
		}

		animalID := s.AnimalID
		alertas = append(alertas, models.Alerta{
			ID:           fmt.Sprintf("%s-%d", models.AlertaSanitario, s.ID),
			Tipo:         models.AlertaSanitario,
			Prioridad:    models.PrioridadBaja,
			Titulo:       fmt.Sprintf("Control: %s", s.TipoEvento),
			Descripcion:  fmt.Sprintf("%s - %s hace %d días", animalLabel(s.AnimalNumero), producto, diasDesde),
			Fecha:        s.FechaEvento,
			AnimalID:     &animalID,
			AnimalNumero: s.AnimalNumero,
			AnimalNombre: s.AnimalNombre,
		})
	}

	sort.SliceStable(alertas, func(i, j int) bool {
		return alertas[i].Fecha < alertas[j].Fecha
	})

	return alertas
}

func animalLabel(numero *string) string {
	if numero != nil && *numero != "" {
		return *numero
	}
	return "Animal"
}
