package models

// ListQuery carries the offset/limit window shared by every list endpoint.
type ListQuery struct {
	Skip  int `form:"skip" binding:"omitempty,gte=0"`
	Limit int `form:"limit" binding:"omitempty,gte=0"`
}

// Window returns skip and limit with the default page size applied
func (q ListQuery) Window() (int, int) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	skip := q.Skip
	if skip < 0 {
		skip = 0
	}
	return skip, limit
}
