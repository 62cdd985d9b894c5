package models

import (
	"encoding/json"
	"net/url"
	"strconv"
)

const (
	DefaultPage     int64 = 0
	DefaultPageSize int64 = 100
)

// Pagination - параметры страницы, page считается с нуля
type Pagination struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, Size: DefaultPageSize}
}

func (p Pagination) Offset() int64 {
	return p.Page * p.Size
}

func (p Pagination) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.FormatInt(p.Page, 10))
	v.Set("size", strconv.FormatInt(p.Size, 10))
	return v
}

// UnmarshalJSON подставляет значения по умолчанию для отсутствующих полей
func (p *Pagination) UnmarshalJSON(data []byte) error {
	type raw struct {
		Page *int64 `json:"page"`
		Size *int64 `json:"size"`
	}
	var r raw
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	*p = DefaultPagination()
	if r.Page != nil {
		p.Page = *r.Page
	}
	if r.Size != nil {
		p.Size = *r.Size
	}
	return nil
}

type PageInfo struct {
	Size          int64 `json:"size"`
	Number        int64 `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
}

type PagedResponse[T any] struct {
	Content []T      `json:"content"`
	Page    PageInfo `json:"page"`
}

// NewPagedResponse считает totalPages = ceil(total/size); Number повторяет
// запрошенную страницу, даже если такой страницы нет.
func NewPagedResponse[T any](content []T, p Pagination, totalElements int64) PagedResponse[T] {
	var totalPages int64
	if p.Size > 0 {
		totalPages = (totalElements + p.Size - 1) / p.Size
	}
	return PagedResponse[T]{
		Content: content,
		Page: PageInfo{
			Size:          p.Size,
			Number:        p.Page,
			TotalElements: totalElements,
			TotalPages:    totalPages,
		},
	}
}
