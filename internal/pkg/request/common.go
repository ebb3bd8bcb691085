package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ListParams holds optional paging query parameters.
// PageSize 0 means "no paging".
type ListParams struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// Normalize fills defaults after binding.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
}
