package dto

// PageRequest paginación por número de página (1..N) y tamaño (máx. 100).
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// MaxPageSize tamaño de página máximo aceptado.
const MaxPageSize = 100

// Normalize aplica valores por defecto y el tope de tamaño.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset desplazamiento de la página actual.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// NewPageResponse calcula el número de páginas (mínimo 1).
func NewPageResponse(p PageRequest, total int) PageResponse {
	pages := 1
	if p.PageSize > 0 && total > 0 {
		pages = (total + p.PageSize - 1) / p.PageSize
	}
	return PageResponse{Total: total, Page: p.Page, PageSize: p.PageSize, TotalPages: pages}
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
