package repository

import "time"

// Orden soportado en listados de ventas y movimientos.
const (
	SortDateDesc  = "date_desc"
	SortDateAsc   = "date_asc"
	SortTotalDesc = "total_desc"
	SortTotalAsc  = "total_asc"

	SortAmountDesc = "amount_desc"
	SortAmountAsc  = "amount_asc"
)

// Page ventana de paginación. Limit <= 0 significa sin límite.
type Page struct {
	Limit  int
	Offset int
}

// SaleFilter criterios de búsqueda de ventas. Campos vacíos no filtran.
type SaleFilter struct {
	ID        string
	From, To  *time.Time // To exclusivo
	Seller    string
	ProductID string
	Search    string // id, vendedor o nombre de ítem
	Sort      string
	Page
}

// TransactionFilter criterios de búsqueda de sangrias y suprimentos.
type TransactionFilter struct {
	ID       string
	Type     string
	From, To *time.Time
	User     string
	Search   string // descripción o usuario
	Sort     string
	Page
}

// RefundFilter criterios de búsqueda de devoluciones.
type RefundFilter struct {
	SaleID   string
	User     string
	From, To *time.Time
}

// ClosingFilter criterios del histórico de fechamentos.
type ClosingFilter struct {
	Day  string
	User string // subcadena, sin distinguir mayúsculas
	// FromDay y ToDay acotan por día del fechamento (YYYY-MM-DD, inclusivos).
	FromDay, ToDay string
}

// UserFilter criterios de listado de usuarios.
type UserFilter struct {
	Search string
	Role   string
}

// ProductFilter criterios de listado del catálogo.
type ProductFilter struct {
	Search   string
	Category string
	Page
}
