package domain

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// NormalizePage aplica página 1 e o limite padrão a valores ausentes e corta no limite máximo
func NormalizePage(page, limit, defaultLimit, maxLimit int) (int, int) {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = defaultLimit
	}

	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return page, limit
}

func NewPagination(total int64, page, limit int) Pagination {
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}

	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
