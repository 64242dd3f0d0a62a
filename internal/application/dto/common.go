package dto

// PageQuery paginación estilo skip/limit para listados.
type PageQuery struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=1,max=100"`
}

// Normalize aplica valores por defecto y recorta limit al rango permitido.
func (p *PageQuery) Normalize() {
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
}

// Page devuelve el número de página 1-based: (skip / limit) + 1.
func (p PageQuery) Page() int {
	return (p.Skip / p.Limit) + 1
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
