package farmapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovalle/ganaderia/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.FarmAPIConfig{
		BaseURL: srv.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
}

func TestListAnimales(t *testing.T) {
	t.Run("Should decode the list envelope and send auth plus pagination", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/animales/", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "25", r.URL.Query().Get("skip"))
			assert.Equal(t, "50", r.URL.Query().Get("limit"))
			assert.Equal(t, "activo", r.URL.Query().Get("estado"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total":2,"items":[{"id":1,"numero_identificacion":"V-001","estado":"activo"},{"id":2,"numero_identificacion":"V-002","estado":"vendido"}],"skip":25,"limit":50}`))
		})

		list, err := client.ListAnimales(context.Background(), ListParams{
			Skip:    25,
			Limit:   50,
			Filtros: map[string]string{"estado": "activo"},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, list.Total)
		require.Len(t, list.Items, 2)
		assert.Equal(t, "V-001", list.Items[0].NumeroIdentificacion)
	})

	t.Run("Should treat a response without items as empty", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total":0}`))
		})

		list, err := client.ListAnimales(context.Background(), ListParams{})

		require.NoError(t, err)
		require.NotNil(t, list.Items)
		assert.Empty(t, list.Items)
	})

	t.Run("Should surface non-2xx responses as errors", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"detail":"database unavailable"}`))
		})

		_, err := client.ListAnimales(context.Background(), ListParams{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status=503")
		assert.Contains(t, err.Error(), "database unavailable")
	})
}

func TestListControlesSanitarios(t *testing.T) {
	t.Run("Should decode health events with nullable product", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/control-sanitario/", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total":1,"items":[{"id":7,"animal_id":3,"tipo_evento":"vacuna","fecha_evento":"2026-03-10","producto":null,"animal_numero":"V-003"}]}`))
		})

		list, err := client.ListControlesSanitarios(context.Background(), ListParams{})

		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		assert.Equal(t, "vacuna", list.Items[0].TipoEvento)
		assert.Nil(t, list.Items[0].Producto)
		require.NotNil(t, list.Items[0].AnimalNumero)
		assert.Equal(t, "V-003", *list.Items[0].AnimalNumero)
	})
}

func TestListControlesReproductivos(t *testing.T) {
	t.Run("Should decode diagnosis fields", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/control-reproductivo/", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total":1,"items":[{"id":4,"animal_id":2,"tipo_evento":"diagnostico","fecha_evento":"2026-02-01","diagnostico":"prenada","fecha_probable_parto":"2026-04-01"}]}`))
		})

		list, err := client.ListControlesReproductivos(context.Background(), ListParams{})

		require.NoError(t, err)
		require.Len(t, list.Items, 1)
		require.NotNil(t, list.Items[0].Diagnostico)
		assert.Equal(t, "prenada", *list.Items[0].Diagnostico)
		require.NotNil(t, list.Items[0].FechaProbableParto)
		assert.Equal(t, "2026-04-01", *list.Items[0].FechaProbableParto)
	})

	t.Run("Should treat a response without items as empty", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		})

		list, err := client.ListControlesReproductivos(context.Background(), ListParams{})

		require.NoError(t, err)
		require.NotNil(t, list.Items)
		assert.Empty(t, list.Items)
	})
}

func TestResumenFinanciero(t *testing.T) {
	t.Run("Should decode the financial summary", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transacciones/resumen/financiero", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"total_ventas":9000,"total_gastos":2500,"balance_neto":6500,"gasto_por_categoria":{"alimento":1500}}`))
		})

		resumen, err := client.ResumenFinanciero(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 9000.0, resumen.TotalVentas)
		assert.Equal(t, 6500.0, resumen.BalanceNeto)
		assert.Equal(t, 1500.0, resumen.GastoPorCategoria["alimento"])
	})
}
