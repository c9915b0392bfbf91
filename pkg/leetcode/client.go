// Package leetcode is a typed client for the LeetCode GraphQL API.
//
// It exposes the five read operations the assistant's tools are built
// on: the daily challenge, problem lookup, problem search, user
// profiles, and recent submissions. An optional LEETCODE_SESSION cookie
// enables authenticated queries; public data works without one.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dviresh/go-leetvoice/internal/httpc"
)

// DefaultBaseURL is the production LeetCode endpoint.
const DefaultBaseURL = "https://leetcode.com"

// ErrNotFound is returned when a query succeeds but matches nothing
// (unknown slug, unknown username, empty daily challenge).
var ErrNotFound = errors.New("leetcode: not found")

// Client talks to the LeetCode GraphQL API.
type Client struct {
	baseURL string
	session string
	http    *http.Client
	logger  *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithSession sets the LEETCODE_SESSION cookie value.
func WithSession(session string) ClientOption {
	return func(c *Client) { c.session = session }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = l.With("component", "leetcode") }
}

// NewClient creates a LeetCode API client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    httpc.NewClient(30 * time.Second),
		logger:  slog.Default().With("component", "leetcode"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DailyChallenge returns today's daily coding challenge.
func (c *Client) DailyChallenge(ctx context.Context) (*DailyChallenge, error) {
	var data struct {
		Active *struct {
			Date     string `json:"date"`
			Link     string `json:"link"`
			Question struct {
				Title      string `json:"title"`
				Difficulty string `json:"difficulty"`
				TitleSlug  string `json:"titleSlug"`
			} `json:"question"`
		} `json:"activeDailyCodingChallengeQuestion"`
	}

	if err := c.query(ctx, dailyChallengeQuery, nil, &data); err != nil {
		return nil, err
	}
	if data.Active == nil {
		return nil, ErrNotFound
	}

	return &DailyChallenge{
		Title:      data.Active.Question.Title,
		Difficulty: data.Active.Question.Difficulty,
		TitleSlug:  data.Active.Question.TitleSlug,
		Date:       data.Active.Date,
		Link:       c.baseURL + data.Active.Link,
	}, nil
}

// Problem returns problem details by title slug (e.g. "two-sum").
func (c *Client) Problem(ctx context.Context, titleSlug string) (*Problem, error) {
	var data struct {
		Question *Problem `json:"question"`
	}

	vars := map[string]interface{}{"titleSlug": titleSlug}
	if err := c.query(ctx, problemQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.Question == nil {
		return nil, ErrNotFound
	}
	return data.Question, nil
}

// Search finds problems by keywords and/or difficulty. Difficulty is
// one of "EASY", "MEDIUM", "HARD" (case-insensitive) or empty for any.
func (c *Client) Search(ctx context.Context, keywords, difficulty string, limit int) (*SearchResult, error) {
	if limit <= 0 {
		limit = 10
	}

	filters := map[string]interface{}{}
	if difficulty != "" {
		filters["difficulty"] = strings.ToUpper(difficulty)
	}
	if keywords != "" {
		filters["searchKeywords"] = keywords
	}

	var data struct {
		List *SearchResult `json:"problemsetQuestionList"`
	}

	vars := map[string]interface{}{
		"categorySlug": "",
		"limit":        limit,
		"skip":         0,
		"filters":      filters,
	}
	if err := c.query(ctx, searchQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.List == nil {
		return nil, ErrNotFound
	}
	return data.List, nil
}

// UserProfile returns a user's public profile and submit statistics.
func (c *Client) UserProfile(ctx context.Context, username string) (*UserProfile, error) {
	var data struct {
		MatchedUser *UserProfile `json:"matchedUser"`
	}

	vars := map[string]interface{}{"username": username}
	if err := c.query(ctx, userProfileQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.MatchedUser == nil {
		return nil, ErrNotFound
	}
	return data.MatchedUser, nil
}

// RecentSubmissions returns a user's most recent submissions.
func (c *Client) RecentSubmissions(ctx context.Context, username string, limit int) (*Submissions, error) {
	if limit <= 0 {
		limit = 10
	}

	var data struct {
		List []Submission `json:"recentSubmissionList"`
	}

	vars := map[string]interface{}{"username": username, "limit": limit}
	if err := c.query(ctx, recentSubmissionsQuery, vars, &data); err != nil {
		return nil, err
	}
	if data.List == nil {
		return nil, ErrNotFound
	}
	return &Submissions{Username: username, Submissions: data.List}, nil
}

// query posts a GraphQL request and decodes the "data" object into out.
func (c *Client) query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	if variables == nil {
		variables = map[string]interface{}{}
	}

	body, err := json.Marshal(map[string]interface{}{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("leetcode: marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("leetcode: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	req.Header.Set("Referer", c.baseURL+"/")
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: "LEETCODE_SESSION", Value: c.session})
		req.AddCookie(&http.Cookie{Name: "csrftoken", Value: "dummy"})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("leetcode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("leetcode: unexpected status %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("leetcode: decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("leetcode: graphql error: %s", envelope.Errors[0].Message)
	}
	if len(envelope.Data) == 0 {
		return ErrNotFound
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("leetcode: decode data: %w", err)
	}
	return nil
}
