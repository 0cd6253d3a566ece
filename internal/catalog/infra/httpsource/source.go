package httpsource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ateliershop/storefront/internal/catalog/domain"
)

// Source fetches the catalog JSON over HTTP. The timeout bounds the
// whole fetch; a hung source falls back instead of wedging startup.
type Source struct {
	url    string
	client *http.Client
}

func New(url string, timeout time.Duration) *Source {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Source{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *Source) Fetch(ctx context.Context) ([]domain.Product, error) {
	if s.url == "" {
		return nil, errors.New("no catalog source configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: unexpected status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return products, nil
}
