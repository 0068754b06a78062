package commands

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"postsearch/internal/domain"
	"postsearch/internal/ui/state"
)

// Searcher fetches one page of results
type Searcher interface {
	Search(ctx context.Context, q domain.Query) (domain.Page, error)
}

// FetchResultMsg carries the outcome of a fetch back to the Update loop
type FetchResultMsg struct {
	Seq   uint64
	Query domain.Query
	Page  domain.Page
	Err   error
}

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State    *state.SearchState
	Searcher Searcher
	Limit    int

	seq    uint64             // generation of the most recent fetch
	cancel context.CancelFunc // cancels the most recent in-flight fetch
}

// supersede cancels any in-flight fetch and returns a context and
// generation number for a new one
func (c *CommandContext) supersede() (context.Context, uint64) {
	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.seq++
	return ctx, c.seq
}

// FetchCommand loads one page of results
type FetchCommand struct {
	ctx   *CommandContext
	query string
	page  int
}

// NewFetchCommand creates a new fetch command
func NewFetchCommand(ctx *CommandContext, query string, page int) *FetchCommand {
	return &FetchCommand{
		ctx:   ctx,
		query: query,
		page:  page,
	}
}

// Execute enters the loading state and returns the network call as a command
func (c *FetchCommand) Execute() tea.Cmd {
	c.ctx.State.BeginFetch()

	reqCtx, seq := c.ctx.supersede()
	q := domain.Query{Text: c.query, Page: c.page, Limit: c.ctx.Limit}
	searcher := c.ctx.Searcher

	slog.Info("fetch started", "seq", seq, "q", q.Text, "page", q.Page, "limit", q.Limit)

	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("search panicked", "seq", seq, "panic", r)
				msg = FetchResultMsg{Seq: seq, Query: q, Err: fmt.Errorf("search panicked: %v", r)}
			}
		}()
		page, err := searcher.Search(reqCtx, q)
		return FetchResultMsg{Seq: seq, Query: q, Page: page, Err: err}
	}
}

// PageCommand moves to an adjacent page and fetches it immediately
type PageCommand struct {
	ctx   *CommandContext
	delta int
}

// NewPageCommand creates a new page change command
func NewPageCommand(ctx *CommandContext, delta int) *PageCommand {
	return &PageCommand{
		ctx:   ctx,
		delta: delta,
	}
}

// Execute does nothing when the matching button is disabled
func (c *PageCommand) Execute() tea.Cmd {
	s := c.ctx.State
	switch {
	case c.delta < 0 && !s.CanPrev():
		return nil
	case c.delta > 0 && !s.CanNext():
		return nil
	case c.delta == 0:
		return nil
	}

	s.SetPage(s.CurrentPage + c.delta)
	return NewFetchCommand(c.ctx, s.QueryText, s.CurrentPage).Execute()
}
