package dashboard

import (
	"time"

	"github.com/ovalle/ganaderia/internal/domain/models"
)

const dateLayout = "2006-01-02"

// ComputeStats derives the dashboard counters from the raw record lists.
// It is a pure function of its inputs and the reference time; callers
// pass time.Now() (or a fixed instant in tests).
func ComputeStats(
	animales []models.Animal,
	sanitarios []models.ControlSanitario,
	reproductivos []models.ControlReproductivo,
	produccion []models.RegistroProduccion,
	transacciones []models.Transaccion,
	now time.Time,
) models.DashboardStats {
	// ISO dates sort lexicographically in chronological order, so the
	// month filters compare strings directly against YYYY-MM-01.
	inicioMes := now.Format("2006-01") + "-01"

	activos := 0
	for _, a := range animales {
		if a.Estado == models.EstadoActivo {
			activos++
		}
	}

	controlesMes := 0
	for _, c := range sanitarios {
		if c.FechaEvento >= inicioMes {
			controlesMes++
		}
	}

	// Latest diagnosis per animal wins; earlier outcomes are superseded.
	ultimoDiagnostico := make(map[int]models.ControlReproductivo)
	for _, r := range reproductivos {
		if r.TipoEvento != models.EventoDiagnostico || r.AnimalID == 0 {
			continue
		}
		existing, ok := ultimoDiagnostico[r.AnimalID]
		if !ok || r.FechaEvento > existing.FechaEvento {
			ultimoDiagnostico[r.AnimalID] = r
		}
	}
	prenadas := 0
	for _, r := range ultimoDiagnostico {
		if r.Diagnostico != nil && *r.Diagnostico == models.DiagnosticoPrenada {
			prenadas++
		}
	}

	var litrosMes float64
	for _, p := range produccion {
		if p.Fecha < inicioMes {
			continue
		}
		if p.CantidadLitros != nil {
			litrosMes += *p.CantidadLitros
		}
	}

	var ventasMes, gastosMes float64
	for _, t := range transacciones {
		if t.Fecha < inicioMes {
			continue
		}
		switch t.Tipo {
		case models.TransaccionVenta:
			ventasMes += t.Monto
		case models.TransaccionCompra, models.TransaccionGasto:
			gastosMes += t.Monto
		}
	}

	hoy := startOfDay(now)
	limite := hoy.AddDate(0, 0, 30)
	partos := 0
	for _, r := range reproductivos {
		// Any event carrying an expected birth date counts here; the
		// stricter pregnant-diagnosis filter applies to alerts only.
		if r.FechaProbableParto == nil {
			continue
		}
		fechaParto, err := time.Parse(dateLayout, *r.FechaProbableParto)
		if err != nil {
			continue
		}
		if !fechaParto.Before(hoy) && !fechaParto.After(limite) {
			partos++
		}
	}

	return models.DashboardStats{
		TotalAnimales:          len(animales),
		AnimalesActivos:        activos,
		ControlesSanitariosMes: controlesMes,
		HembrasPrenadas:        prenadas,
		ProduccionLecheMes:     litrosMes,
		BalanceMes:             ventasMes - gastosMes,
		AlertasPendientes:      partos + controlesMes,
		ProximosPartos:         partos,
	}
}

// startOfDay truncates the reference time to its calendar day in UTC so
// day-difference math against parsed YYYY-MM-DD dates stays exact.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
