package adapter

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrDecodeResponse wraps JSON decoding failures of successful responses.
	ErrDecodeResponse = errors.New("error decoding response body")
)

// HTTPError is returned for responses whose status is outside [200, 300).
type HTTPError struct {
	// StatusCode is the numeric HTTP status.
	StatusCode int
	// StatusText is the reason phrase, e.g. "Not Found".
	StatusText string
	// Response is the raw response, body included.
	Response *resty.Response
}

func newHTTPError(resp *resty.Response) *HTTPError {
	return &HTTPError{
		StatusCode: resp.StatusCode(),
		StatusText: statusText(resp),
		Response:   resp,
	}
}

func (e *HTTPError) Error() string {
	return "HTTP Error " + e.StatusText
}

// statusText extracts the reason phrase from a "404 Not Found" status line,
// falling back to the standard text for the code.
func statusText(resp *resty.Response) string {
	code := resp.StatusCode()
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(code)))
	if text == "" {
		text = http.StatusText(code)
	}
	return text
}
