// Package page carries list pagination from query strings down to SQL.
package page

import (
	"net/url"
	"strconv"
)

const (
	DefaultSize = 12
	MaxSize     = 100
)

// Request is a 1-based page number and a page size.
type Request struct {
	Number int
	Size   int
}

// FromQuery reads "page" and "page_size", falling back to defaults on
// missing or malformed values.
func FromQuery(q url.Values) Request {
	req := Request{Number: 1, Size: DefaultSize}

	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		req.Number = n
	}

	if n, err := strconv.Atoi(q.Get("page_size")); err == nil && n > 0 {
		req.Size = min(n, MaxSize)
	}

	return req
}

// Limit returns the SQL LIMIT; a zero Request means "no limit" and yields 0.
func (r Request) Limit() int {
	return r.Size
}

func (r Request) Offset() int {
	if r.Number <= 1 || r.Size <= 0 {
		return 0
	}

	return (r.Number - 1) * r.Size
}

// IsZero reports whether pagination was requested at all.
func (r Request) IsZero() bool {
	return r.Size <= 0
}
