package models

// Transaction types as encoded by the farm API.
const (
	TransaccionVenta  = "venta"
	TransaccionCompra = "compra"
	TransaccionGasto  = "gasto"
)

// Transaccion is one financial movement (sale, purchase, expense)
// affecting the farm balance. Monto is always non-negative; the type
// decides the sign in balance math.
type Transaccion struct {
	ID       int     `json:"id"`
	FincaID  int     `json:"finca_id"`
	Tipo     string  `json:"tipo"`
	Fecha    string  `json:"fecha"`
	Concepto string  `json:"concepto"`
	Monto    float64 `json:"monto"`

	AnimalID       *int     `json:"animal_id"`
	NumeroAnimales *int     `json:"numero_animales"`
	Tercero        *string  `json:"tercero"`
	MetodoPago     *string  `json:"metodo_pago"`
	CategoriaGasto *string  `json:"categoria_gasto"`
	PesoTotal      *float64 `json:"peso_total"`
	Observaciones  *string  `json:"observaciones"`
}

// TransaccionList is the paginated list envelope returned by the farm API.
type TransaccionList struct {
	Total int           `json:"total"`
	Items []Transaccion `json:"items"`
	Skip  int           `json:"skip"`
	Limit int           `json:"limit"`
}

// ResumenFinanciero is the server-computed financial summary endpoint payload.
type ResumenFinanciero struct {
	TotalVentas       float64            `json:"total_ventas"`
	TotalCompras      float64            `json:"total_compras"`
	TotalGastos       float64            `json:"total_gastos"`
	BalanceNeto       float64            `json:"balance_neto"`
	VentasMesActual   float64            `json:"ventas_mes_actual"`
	GastosMesActual   float64            `json:"gastos_mes_actual"`
	GastoPorCategoria map[string]float64 `json:"gasto_por_categoria"`
}
