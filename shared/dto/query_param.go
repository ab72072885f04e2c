package dto

import (
	"net/http"
	"strconv"

	"todolist/shared/constant"
	"todolist/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// PageRequest is the zero-based page/size pair accepted by list endpoints.
type PageRequest struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// FromRequest reads `page` and `size`. It reports whether the caller asked for a page at all,
// so list endpoints can answer with a plain array when neither is present.
func (p *PageRequest) FromRequest(r *http.Request) (bool, error) {
	query := r.URL.Query()
	rawPage := query.Get(constant.RequestParamPage)
	rawSize := query.Get(constant.RequestParamSize)

	p.Page = 0
	p.Size = constant.DefaultValueLimit

	if rawPage == "" && rawSize == "" {
		return false, nil
	}

	if rawPage != "" {
		page, err := strconv.Atoi(rawPage)
		if err != nil || page < 0 {
			return true, failure.InvalidPageParam
		}

		p.Page = page
	}

	if rawSize != "" {
		size, err := strconv.Atoi(rawSize)
		if err != nil || size <= 0 || size > constant.MaxValueLimit {
			return true, failure.InvalidSizeParam
		}

		p.Size = size
	}

	return true, nil
}

// ToQueryParams converts to the one-based paging used by the repositories, newest first.
func (p PageRequest) ToQueryParams() QueryParams {
	return QueryParams{
		Page:    p.Page + 1,
		Limit:   p.Size,
		SortBy:  constant.FieldCreatedAt,
		SortDir: SortDirDesc,
	}
}
