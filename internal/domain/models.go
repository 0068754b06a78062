package domain

import (
	"encoding/json"
	"strings"
)

// Item represents one record returned by the remote resource
type Item struct {
	ID     json.RawMessage `json:"id"`
	UserID json.RawMessage `json:"userId,omitempty"`
	Title  string          `json:"title"`
	Body   string          `json:"body"`
}

// DisplayID returns the id as text, without quotes for string ids
func (i Item) DisplayID() string {
	return rawText(i.ID)
}

// DisplayUserID returns the user id as text ("" if absent)
func (i Item) DisplayUserID() string {
	return rawText(i.UserID)
}

func rawText(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		return ""
	}
	var str string
	if strings.HasPrefix(s, `"`) && json.Unmarshal(raw, &str) == nil {
		return str
	}
	return s
}

// Query represents a single paged search request
type Query struct {
	Text  string // filter text, "" means no filter
	Page  int    // 1-based
	Limit int    // page size
}

// Page represents one decoded response
type Page struct {
	Items      []Item
	TotalCount int  // value of the total-count header
	TotalKnown bool // false when the header is absent or not a number
}

// TotalPages returns ceil(TotalCount/limit), never less than 1
func (p Page) TotalPages(limit int) int {
	if limit <= 0 || p.TotalCount <= 0 {
		return 1
	}
	return (p.TotalCount + limit - 1) / limit
}
