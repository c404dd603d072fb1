package dashboard

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ovalle/ganaderia/internal/domain/models"
	"github.com/ovalle/ganaderia/pkg/clients/farmapi"
)

// listPageLimit caps each collection fetch. The farm API defaults to a
// small page; the dashboard wants the full inventory in one request.
const listPageLimit = 1000

// Service derives dashboard stats and alerts from the remote farm API.
// A fetch failure degrades to an empty feed / all-zero snapshot rather
// than an error: the dashboard treats missing data as "nothing yet".
type Service struct {
	api    farmapi.Client
	logger *zap.Logger

	seq    atomic.Uint64
	latest atomic.Pointer[versionedSnapshot]
}

// versionedSnapshot tags a stored snapshot with the refresh sequence
// that produced it, so an out-of-order refresh cannot clobber newer data.
type versionedSnapshot struct {
	seq      uint64
	snapshot models.StatsSnapshot
}

// NewService wires a new dashboard service instance.
func NewService(api farmapi.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

// Stats fetches the five record collections concurrently and derives the
// dashboard snapshot for the given reference time. Any fetch failure
// aborts the whole batch and yields an all-zero snapshot; the cause is
// logged, never returned.
func (s *Service) Stats(ctx context.Context, now time.Time) models.DashboardStats {
	var (
		animales      *models.AnimalList
		sanitarios    *models.ControlSanitarioList
		reproductivos *models.ControlReproductivoList
		produccion    *models.RegistroProduccionList
		transacciones *models.TransaccionList
	)

	params := farmapi.ListParams{Limit: listPageLimit}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		animales, err = s.api.ListAnimales(gctx, params)
		return err
	})
	g.Go(func() (err error) {
		sanitarios, err = s.api.ListControlesSanitarios(gctx, params)
		return err
	})
	g.Go(func() (err error) {
		reproductivos, err = s.api.ListControlesReproductivos(gctx, params)
		return err
	})
	g.Go(func() (err error) {
		produccion, err = s.api.ListProduccion(gctx, params)
		return err
	})
	g.Go(func() (err error) {
		transacciones, err = s.api.ListTransacciones(gctx, params)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard stats fetch failed", zap.Error(err))
		return models.DashboardStats{}
	}

	return ComputeStats(animales.Items, sanitarios.Items, reproductivos.Items, produccion.Items, transacciones.Items, now)
}

// Alertas fetches reproductive and health events concurrently and builds
// the alert feed for the given reference time. Any fetch failure yields
// an empty feed; the cause is logged, never returned.
func (s *Service) Alertas(ctx context.Context, now time.Time) []models.Alerta {
	var (
		reproductivos *models.ControlReproductivoList
		sanitarios    *models.ControlSanitarioList
	)

	params := farmapi.ListParams{Limit: listPageLimit}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		reproductivos, err = s.api.ListControlesReproductivos(gctx, params)
		return err
	})
	g.Go(func() (err error) {
		sanitarios, err = s.api.ListControlesSanitarios(gctx, params)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("dashboard alerts fetch failed", zap.Error(err))
		return []models.Alerta{}
	}

	return BuildAlerts(reproductivos.Items, sanitarios.Items, now)
}

// Refresh recomputes the stats snapshot and stores it as the latest one,
// unless a refresh issued later has already completed. Returns the
// snapshot it computed and whether it was stored.
func (s *Service) Refresh(ctx context.Context, now time.Time) (models.StatsSnapshot, bool) {
	seq := s.seq.Add(1)

	snapshot := models.StatsSnapshot{
		Stats:     s.Stats(ctx, now),
		Fecha:     now.Format(dateLayout),
		CreatedAt: now,
	}
	candidate := &versionedSnapshot{seq: seq, snapshot: snapshot}

	for {
		current := s.latest.Load()
		if current != nil && current.seq > seq {
			s.logger.Debug("discarding stale stats refresh",
				zap.Uint64("seq", seq),
				zap.Uint64("latest_seq", current.seq))
			return snapshot, false
		}
		if s.latest.CompareAndSwap(current, candidate) {
			return snapshot, true
		}
	}
}

// Latest returns the most recently stored snapshot, if any.
func (s *Service) Latest() (models.StatsSnapshot, bool) {
	current := s.latest.Load()
	if current == nil {
		return models.StatsSnapshot{}, false
	}
	return current.snapshot, true
}
