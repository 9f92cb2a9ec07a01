package boosts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/schappie/backend/internal/domain"
)

// Client fetches the externally maintained query→category boost document.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient creates a boost document client
func NewClient(url string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		url: url,
	}
}

// Fetch downloads and decodes the boost document. Unknown categories are
// dropped and weights are clamped into [0,1]; the document is advisory and
// a bad row must never poison ranking.
func (c *Client) Fetch(ctx context.Context) (domain.BoostTable, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Schappie/1.0")
	req.Header.Set("Accept", "application/json")

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[BOOSTS] request error (attempt %d): %v", attempt, err)
			lastErr = fmt.Errorf("%w: %v", domain.ErrBoostsUnavailable, err)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			log.Printf("[BOOSTS] fetch error (attempt %d) - Status: %d", attempt, resp.StatusCode)
			lastErr = fmt.Errorf("%w: status %d", domain.ErrBoostsUnavailable, resp.StatusCode)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var raw map[string]map[string]float64
		if err := json.Unmarshal(body, &raw); err != nil {
			log.Printf("[BOOSTS] JSON decode error: %v", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrBoostsUnavailable, err)
		}

		table := sanitize(raw)
		log.Printf("[BOOSTS] fetched weights for %d queries", len(table))
		return table, nil
	}

	log.Printf("[BOOSTS] all retries failed for %s", c.url)
	return nil, lastErr
}

// sanitize drops unknown categories and clamps weights into [0,1].
func sanitize(raw map[string]map[string]float64) domain.BoostTable {
	table := make(domain.BoostTable, len(raw))
	for query, weights := range raw {
		clean := make(map[domain.Category]float64, len(weights))
		for cat, w := range weights {
			category := domain.Category(cat)
			if !domain.IsUniversalCategory(category) {
				continue
			}
			if w < 0 {
				w = 0
			}
			if w > 1 {
				w = 1
			}
			clean[category] = w
		}
		if len(clean) > 0 {
			table[query] = clean
		}
	}
	return table
}
