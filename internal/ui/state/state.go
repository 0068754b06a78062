package state

import (
	"fmt"

	"postsearch/internal/domain"
)

// DisplayMode is the branch of the results area currently shown
type DisplayMode int

const (
	ModeIdle DisplayMode = iota
	ModeLoading
	ModeError
	ModeEmpty
	ModeResults
)

func (m DisplayMode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeError:
		return "error"
	case ModeEmpty:
		return "empty"
	case ModeResults:
		return "results"
	default:
		return "idle"
	}
}

// SearchState contains all the search state of the application
type SearchState struct {
	// Query
	QueryText   string // current search text
	CurrentPage int    // 1-based
	TotalPages  int    // never below 1
	TotalKnown  bool   // false when the server did not report a usable total

	// Request lifecycle
	IsLoading bool
	Err       string // "" means no error
	IsEmpty   bool

	// Results
	Items    []domain.Item
	Selected int // index into Items

	// UI state
	StatusMessage string
}

// NewSearchState creates the state a freshly mounted view starts with
func NewSearchState() *SearchState {
	return &SearchState{
		CurrentPage: 1,
		TotalPages:  1,
		TotalKnown:  true,
		Items:       make([]domain.Item, 0),
	}
}

// Mutators

// SetQuery updates the search text and resets to the first page
func (s *SearchState) SetQuery(text string) {
	s.QueryText = text
	s.CurrentPage = 1
}

// SetPage sets the current page, clamped to at least 1
func (s *SearchState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.CurrentPage = page
}

// BeginFetch enters the loading state, clearing stale error and empty flags
func (s *SearchState) BeginFetch() {
	s.IsLoading = true
	s.Err = ""
	s.IsEmpty = false
}

// ApplyPage stores a successful response for the current page
func (s *SearchState) ApplyPage(page domain.Page, limit int) {
	s.IsLoading = false

	if len(page.Items) == 0 {
		s.IsEmpty = true
		s.TotalPages = 1
		s.TotalKnown = true
		s.Items = make([]domain.Item, 0)
		s.Selected = 0
		return
	}

	s.Items = page.Items
	s.Selected = 0
	if page.TotalKnown {
		s.TotalKnown = true
		s.TotalPages = page.TotalPages(limit)
	} else {
		// Unknown total: stay on this page so Next is disabled
		s.TotalKnown = false
		s.TotalPages = s.CurrentPage
	}
	if s.TotalPages < 1 {
		s.TotalPages = 1
	}
}

// ApplyFailure records a failed fetch. Items and page counts are left as they were.
func (s *SearchState) ApplyFailure(message string) {
	s.IsLoading = false
	s.Err = message
}

// MoveSelection moves the item cursor by delta, clamped to the item list
func (s *SearchState) MoveSelection(delta int) {
	if len(s.Items) == 0 {
		s.Selected = 0
		return
	}
	s.Selected += delta
	if s.Selected < 0 {
		s.Selected = 0
	}
	if s.Selected >= len(s.Items) {
		s.Selected = len(s.Items) - 1
	}
}

// Queries

// Mode resolves the display mode: loading, then error, then empty, then results
func (s *SearchState) Mode() DisplayMode {
	switch {
	case s.IsLoading:
		return ModeLoading
	case s.Err != "":
		return ModeError
	case s.IsEmpty:
		return ModeEmpty
	case len(s.Items) > 0:
		return ModeResults
	default:
		return ModeIdle
	}
}

// CanPrev reports whether "Previous" is enabled
func (s *SearchState) CanPrev() bool {
	return s.CurrentPage > 1
}

// CanNext reports whether "Next" is enabled
func (s *SearchState) CanNext() bool {
	return s.CurrentPage < s.TotalPages
}

// PageLabel returns the "Page X of Y" text
func (s *SearchState) PageLabel() string {
	if !s.TotalKnown {
		return fmt.Sprintf("Page %d of ?", s.CurrentPage)
	}
	return fmt.Sprintf("Page %d of %d", s.CurrentPage, s.TotalPages)
}

// SelectedItem returns the item under the cursor
func (s *SearchState) SelectedItem() (domain.Item, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Items) {
		return domain.Item{}, false
	}
	return s.Items[s.Selected], true
}
