package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemDTO línea de venta.
type SaleItemDTO struct {
	ID        string          `json:"id" validate:"required"`
	Name      string          `json:"name"`
	UnitValue decimal.Decimal `json:"unitValue"`
}

// CreateSaleRequest checkout. PaymentMethod: cash | card | pix o una etiqueta del
// cliente (dinheiro, cartão, crédito, débito); vacío = cash.
type CreateSaleRequest struct {
	Items          []SaleItemDTO   `json:"items" validate:"required,min=1,dive"`
	Seller         string          `json:"seller" validate:"required"`
	PaymentMethod  string          `json:"paymentMethod"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	ChangeGiven    decimal.Decimal `json:"changeGiven"`
}

// SaleFilter filtros del histórico de ventas.
type SaleFilter struct {
	ID        string `query:"id"`
	From      string `query:"from"`
	To        string `query:"to"`
	Seller    string `query:"seller"`
	ProductID string `query:"productId"`
	Search    string `query:"search"`
	Sort      string `query:"sort" validate:"omitempty,oneof=date_desc date_asc total_desc total_asc"`
	PageRequest
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID             string          `json:"id"`
	Date           time.Time       `json:"date"`
	Seller         string          `json:"seller"`
	PaymentMethod  string          `json:"paymentMethod"`
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	ChangeGiven    decimal.Decimal `json:"changeGiven"`
	TotalItems     int             `json:"totalItems"`
	TotalValue     decimal.Decimal `json:"totalValue"`
	Items          []SaleItemDTO   `json:"items"`
}

// SaleListResponse página de ventas.
type SaleListResponse struct {
	PageResponse
	Results []SaleResponse `json:"results"`
}

// SalesDayBucket agregado de ventas de un día.
type SalesDayBucket struct {
	Date       string          `json:"date"`
	TotalValue decimal.Decimal `json:"totalValue"`
	TotalItems int             `json:"totalItems"`
	Count      int             `json:"count"`
}

// SalesSummaryResponse totales y agregados por día (orden ascendente).
type SalesSummaryResponse struct {
	TotalValue decimal.Decimal  `json:"totalValue"`
	TotalItems int              `json:"totalItems"`
	Count      int              `json:"count"`
	ByDate     []SalesDayBucket `json:"byDate"`
}

// RemoveItemsRequest índices o IDs de producto a quitar de una venta.
// Si vienen índices, se ignoran los productIds.
type RemoveItemsRequest struct {
	Indices    []int    `json:"indices"`
	ProductIDs []string `json:"productIds"`
}

// RemoveItemsResponse cantidad de ítems removidos.
type RemoveItemsResponse struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}
