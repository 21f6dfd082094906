package vehicleservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Vlok123/carintel/internal/pkg/config"
)

// RDWClient queries the RDW open-data endpoint. Responses come back as
// a JSON array of records; an empty array means the plate is unknown.
type RDWClient struct {
	endpoint string
	client   *http.Client
}

func NewRDWClient(cfg config.RDW) *RDWClient {
	return &RDWClient{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

func (rc *RDWClient) FetchVehicle(ctx context.Context, kenteken string) (json.RawMessage, error) {
	u := rc.endpoint + "?kenteken=" + url.QueryEscape(kenteken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request error: %w", err)
	}

	resp, err := rc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rdw request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rdw status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body error: %w", err)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrNotFound
	}

	return records[0], nil
}
