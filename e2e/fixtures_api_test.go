//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
)

type post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// fakeAPI serves a json-server style /posts resource and records every query
type fakeAPI struct {
	*httptest.Server

	mu      sync.Mutex
	posts   []post
	queries []url.Values
	status  int // non-zero forces this status code
}

func newFakeAPI(t *testing.T, count int) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	for i := 1; i <= count; i++ {
		api.posts = append(api.posts, post{
			ID:     i,
			UserID: (i-1)/10 + 1,
			Title:  fmt.Sprintf("post number %d", i),
			Body:   fmt.Sprintf("body of post %d", i),
		})
	}
	api.Server = httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(api.Close)
	return api
}

func (a *fakeAPI) URL() string {
	return a.Server.URL + "/posts"
}

func (a *fakeAPI) failWith(status int) {
	a.mu.Lock()
	a.status = status
	a.mu.Unlock()
}

func (a *fakeAPI) Queries() []url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]url.Values(nil), a.queries...)
}

func (a *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	a.mu.Lock()
	a.queries = append(a.queries, q)
	status := a.status
	posts := a.posts
	a.mu.Unlock()

	if status != 0 {
		http.Error(w, http.StatusText(status), status)
		return
	}

	var matched []post
	filter := strings.ToLower(q.Get("q"))
	for _, p := range posts {
		if filter == "" || strings.Contains(strings.ToLower(p.Title+" "+p.Body), filter) {
			matched = append(matched, p)
		}
	}

	page, _ := strconv.Atoi(q.Get("_page"))
	limit, _ := strconv.Atoi(q.Get("_limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	start := (page - 1) * limit
	end := start + limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	w.Header().Set("X-Total-Count", strconv.Itoa(len(matched)))
	w.Header().Set("Content-Type", "application/json")
	out := matched[start:end]
	if out == nil {
		out = []post{}
	}
	_ = json.NewEncoder(w).Encode(out)
}
