package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// checkStatus passes 2xx responses through unchanged. Any other status is
// logged and returned as an [*HTTPError].
func (c *AuthenticatedClient) checkStatus(resp *resty.Response) (*resty.Response, error) {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return resp, nil
	}

	err := newHTTPError(resp)
	c.logger.Err(err).
		Str("func", "AuthenticatedClient.checkStatus").
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Msg("unexpected response status")

	return nil, err
}

// parseJSON decodes the body of a successful response into T.
func parseJSON[T any](resp *resty.Response) (T, error) {
	var v T
	if err := json.Unmarshal(resp.Body(), &v); err != nil {
		return v, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return v, nil
}
