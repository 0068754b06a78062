package input

import (
	"postsearch/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.SearchState
}

// ItemCount returns the number of items on the current page
func (c *ModelContext) ItemCount() int {
	return len(c.State.Items)
}

// SelectedIndex returns the item under the cursor
func (c *ModelContext) SelectedIndex() int {
	return c.State.Selected
}

// IsLoading reports whether a fetch is in progress
func (c *ModelContext) IsLoading() bool {
	return c.State.IsLoading
}
