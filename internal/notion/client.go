// Package notion translates finished timer entries into Notion page
// creation requests.
package notion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/onnk5188-hash/notion/internal/domain/timer"
)

const (
	defaultBaseURL = "https://api.notion.com"
	apiVersion     = "2022-06-28"
	requestTimeout = 30 * time.Second
)

// RemoteError means Notion rejected the request (status >= 400). The
// response body is kept for diagnostics; the session is preserved so
// the stop can be retried.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("notion API error %d: %s. Verify database permissions and property names", e.Status, e.Body)
}

// NetworkError means no response was received (timeout, connection
// failure).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling Notion: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Client creates time entry pages in a Notion database.
type Client struct {
	Token      string
	DatabaseID string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(token, databaseID string) *Client {
	return &Client{
		Token:      token,
		DatabaseID: databaseID,
		BaseURL:    defaultBaseURL,
		HTTPClient: &http.Client{Timeout: requestTimeout},
	}
}

type textContent struct {
	Content string `json:"content"`
}

type richText struct {
	Text textContent `json:"text"`
}

type titleProperty struct {
	Title []richText `json:"title"`
}

type selectOption struct {
	Name string `json:"name"`
}

type selectProperty struct {
	Select selectOption `json:"select"`
}

type dateValue struct {
	Start string `json:"start"`
}

type dateProperty struct {
	Date dateValue `json:"date"`
}

type numberProperty struct {
	Number float64 `json:"number"`
}

type parentRef struct {
	DatabaseID string `json:"database_id"`
}

type pageRequest struct {
	Parent     parentRef      `json:"parent"`
	Properties map[string]any `json:"properties"`
}

// Record creates one page for the entry. The task maps to the title
// property, the project to a select, start/end to date properties, and
// the duration to a number rounded to two decimals.
func (c *Client) Record(entry timer.Entry) error {
	payload := pageRequest{
		Parent: parentRef{DatabaseID: c.DatabaseID},
		Properties: map[string]any{
			"Task":               titleProperty{Title: []richText{{Text: textContent{Content: entry.Task}}}},
			"Project":            selectProperty{Select: selectOption{Name: entry.Project}},
			"Start":              dateProperty{Date: dateValue{Start: entry.Start.Format(time.RFC3339)}},
			"End":                dateProperty{Date: dateValue{Start: entry.End.Format(time.RFC3339)}},
			"Duration (minutes)": numberProperty{Number: math.Round(entry.DurationMinutes*100) / 100},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", c.baseURL()+"/v1/pages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode >= 400 {
		return &RemoteError{Status: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: requestTimeout}
}
