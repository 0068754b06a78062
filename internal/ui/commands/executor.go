package commands

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"postsearch/internal/api"
	"postsearch/internal/ui/state"
)

// Executor handles command execution and applies their results
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.SearchState, searcher Searcher, limit int) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:    state,
			Searcher: searcher,
			Limit:    limit,
		},
	}
}

// ExecuteFetch fetches the given query and page
func (e *Executor) ExecuteFetch(query string, page int) tea.Cmd {
	cmd := NewFetchCommand(e.ctx, query, page)
	return cmd.Execute()
}

// ExecuteReload fetches the current query and page again
func (e *Executor) ExecuteReload() tea.Cmd {
	s := e.ctx.State
	return e.ExecuteFetch(s.QueryText, s.CurrentPage)
}

// ExecuteNextPage moves to the next page if "Next" is enabled
func (e *Executor) ExecuteNextPage() tea.Cmd {
	cmd := NewPageCommand(e.ctx, 1)
	return cmd.Execute()
}

// ExecutePrevPage moves to the previous page if "Previous" is enabled
func (e *Executor) ExecutePrevPage() tea.Cmd {
	cmd := NewPageCommand(e.ctx, -1)
	return cmd.Execute()
}

// Apply folds a fetch result into state. Results from superseded fetches
// are discarded; it reports whether msg was applied.
func (e *Executor) Apply(msg FetchResultMsg) bool {
	if msg.Seq != e.ctx.seq {
		slog.Debug("discarding stale fetch result", "seq", msg.Seq, "latest", e.ctx.seq)
		return false
	}
	if e.ctx.cancel != nil {
		e.ctx.cancel()
		e.ctx.cancel = nil
	}

	s := e.ctx.State
	if msg.Err != nil {
		message := api.Message(msg.Err)
		slog.Warn("fetch failed", "seq", msg.Seq, "q", msg.Query.Text, "page", msg.Query.Page, "err", msg.Err)
		s.ApplyFailure(message)
		return true
	}

	s.ApplyPage(msg.Page, e.ctx.Limit)
	if len(msg.Page.Items) > 0 && !msg.Page.TotalKnown {
		slog.Warn("total count header missing or invalid; next page disabled", "seq", msg.Seq)
	}
	slog.Info("fetch finished",
		"seq", msg.Seq,
		"items", len(msg.Page.Items),
		"page", s.CurrentPage,
		"total_pages", s.TotalPages)
	return true
}

// InFlight reports whether the most recent fetch has not reported back yet
func (e *Executor) InFlight() bool {
	return e.ctx.cancel != nil
}

// Shutdown cancels any in-flight fetch and makes its result stale
func (e *Executor) Shutdown() {
	if e.ctx.cancel != nil {
		e.ctx.cancel()
		e.ctx.cancel = nil
	}
	e.ctx.seq++
}
