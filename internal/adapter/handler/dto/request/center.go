package request

type ListCentersRequest struct {
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	UF      string `form:"uf" binding:"omitempty,len=2"`
}
