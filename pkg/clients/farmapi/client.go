package farmapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/ovalle/ganaderia/internal/config"
	"github.com/ovalle/ganaderia/internal/domain/models"
)

// Client exposes the farm REST API operations used by the application.
type Client interface {
	ListAnimales(ctx context.Context, params ListParams) (*models.AnimalList, error)
	ListControlesSanitarios(ctx context.Context, params ListParams) (*models.ControlSanitarioList, error)
	ListControlesReproductivos(ctx context.Context, params ListParams) (*models.ControlReproductivoList, error)
	ListProduccion(ctx context.Context, params ListParams) (*models.RegistroProduccionList, error)
	ListTransacciones(ctx context.Context, params ListParams) (*models.TransaccionList, error)
	ResumenFinanciero(ctx context.Context) (*models.ResumenFinanciero, error)
}

// ListParams carries the pagination and filter options shared by the
// list endpoints. Filtros keys follow the API's query names verbatim
// (estado, tipo, animal_id, fecha_desde, fecha_hasta, ...).
type ListParams struct {
	Skip    int
	Limit   int
	Filtros map[string]string
}

func (p ListParams) queryParams() map[string]string {
	q := make(map[string]string, len(p.Filtros)+2)
	if p.Skip > 0 {
		q["skip"] = strconv.Itoa(p.Skip)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	for k, v := range p.Filtros {
		if v != "" {
			q[k] = v
		}
	}
	return q
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a farm API client using the provided configuration values.
func NewClient(cfg config.FarmAPIConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	if cfg.Token != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Token))
	}

	return &APIClient{httpClient: restyClient}
}

// apiError mirrors the error payload of the farm API.
type apiError struct {
	Detail string `json:"detail"`
}

func (c *APIClient) get(ctx context.Context, path string, query map[string]string, result any) error {
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(result).
		SetError(apiErr).
		Get(path)
	if err != nil {
		return fmt.Errorf("farm api GET %s: %w", path, err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("farm api GET %s: status=%d, detail=%s", path, resp.StatusCode(), apiErr.Detail)
	}

	return nil
}

// ListAnimales fetches the animal inventory page described by params.
func (c *APIClient) ListAnimales(ctx context.Context, params ListParams) (*models.AnimalList, error) {
	result := new(models.AnimalList)
	if err := c.get(ctx, "/animales/", params.queryParams(), result); err != nil {
		return nil, err
	}
	// A malformed response without items means "no records", not a failure.
	if result.Items == nil {
		result.Items = []models.Animal{}
	}
	return result, nil
}

// ListControlesSanitarios fetches health event records.
func (c *APIClient) ListControlesSanitarios(ctx context.Context, params ListParams) (*models.ControlSanitarioList, error) {
	result := new(models.ControlSanitarioList)
	if err := c.get(ctx, "/control-sanitario/", params.queryParams(), result); err != nil {
		return nil, err
	}
	if result.Items == nil {
		result.Items = []models.ControlSanitario{}
	}
	return result, nil
}

// ListControlesReproductivos fetches reproductive event records.
func (c *APIClient) ListControlesReproductivos(ctx context.Context, params ListParams) (*models.ControlReproductivoList, error) {
	result := new(models.ControlReproductivoList)
	if err := c.get(ctx, "/control-reproductivo/", params.queryParams(), result); err != nil {
		return nil, err
	}
	if result.Items == nil {
		result.Items = []models.ControlReproductivo{}
	}
	return result, nil
}

// ListProduccion fetches production measurement records.
func (c *APIClient) ListProduccion(ctx context.Context, params ListParams) (*models.RegistroProduccionList, error) {
	result := new(models.RegistroProduccionList)
	if err := c.get(ctx, "/produccion/", params.queryParams(), result); err != nil {
		return nil, err
	}
	if result.Items == nil {
		result.Items = []models.RegistroProduccion{}
	}
	return result, nil
}

// ListTransacciones fetches financial movement records.
func (c *APIClient) ListTransacciones(ctx context.Context, params ListParams) (*models.TransaccionList, error) {
	result := new(models.TransaccionList)
	if err := c.get(ctx, "/transacciones/", params.queryParams(), result); err != nil {
		return nil, err
	}
	if result.Items == nil {
		result.Items = []models.Transaccion{}
	}
	return result, nil
}

// ResumenFinanciero fetches the server-computed financial summary.
func (c *APIClient) ResumenFinanciero(ctx context.Context) (*models.ResumenFinanciero, error) {
	result := new(models.ResumenFinanciero)
	if err := c.get(ctx, "/transacciones/resumen/financiero", nil, result); err != nil {
		return nil, err
	}
	return result, nil
}
