package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"route-roster-service/internal/domain"
	"route-roster-service/internal/platform/obs"
	"route-roster-service/internal/ports"
)

// CreateRoute submits a route draft to the optimizer and returns the
// created route. Creation is not retried: the optimizer call is not
// guaranteed idempotent.
func (c *Client) CreateRoute(ctx context.Context, draft ports.RouteCreateRequest) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "upstream.CreateRoute")(&err)

	body, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("create route: marshal request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/routes", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code >= 400 && he.Code <= 499 {
			return nil, &ports.RejectedError{Code: he.Code, Message: he.Body}
		}
		return nil, fmt.Errorf("create route: %w", err)
	}
	defer resp.Body.Close()

	var created domain.Route
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("create route: decode response: %w", err)
	}

	return &created, nil
}
