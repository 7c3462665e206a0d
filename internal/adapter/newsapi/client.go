package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ShayaanRahim/GeoPoli-Invest/internal/domain"
)

// maxPageSize is the largest page the /v2/everything endpoint serves on the
// developer plan.
const maxPageSize = 20

// Client fetches geopolitical news from the NewsAPI /v2/everything endpoint.
// Each FetchLatest call is a single request; retries are left to the caller's
// schedule.
type Client struct {
	BaseURL string
	APIKey  string
	Client  *http.Client

	query  string
	logger *slog.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, tax *domain.Taxonomy, logger *slog.Logger) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: timeout,
		},
		query:  strings.Join(tax.GeoKeywords, " OR "),
		logger: logger,
	}
}

type everythingResponse struct {
	Status       string       `json:"status"`
	Code         string       `json:"code"`
	Message      string       `json:"message"`
	TotalResults int          `json:"totalResults"`
	Articles     []apiArticle `json:"articles"`
}

type apiArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

func (c *Client) FetchLatest(ctx context.Context, limit int) ([]domain.RawArticle, error) {
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	u, err := url.Parse(fmt.Sprintf("%s/v2/everything", c.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	q := u.Query()
	q.Set("q", c.query)
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news endpoint returned status: %d", resp.StatusCode)
	}

	var eResp everythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&eResp); err != nil {
		return nil, fmt.Errorf("failed to decode news response: %w", err)
	}
	if eResp.Status != "ok" {
		return nil, fmt.Errorf("news endpoint rejected request: %s (%s)", eResp.Code, eResp.Message)
	}

	articles := make([]domain.RawArticle, 0, len(eResp.Articles))
	for _, a := range eResp.Articles {
		content := a.Content
		if content == "" {
			content = a.Description
		}
		articles = append(articles, domain.RawArticle{
			Title:       a.Title,
			Content:     content,
			Source:      a.Source.Name,
			PublishDate: a.PublishedAt,
			URL:         a.URL,
		})
	}

	c.logger.Info("fetched news page",
		slog.Int("requested", limit),
		slog.Int("received", len(articles)),
		slog.Int("total_results", eResp.TotalResults))

	return articles, nil
}
