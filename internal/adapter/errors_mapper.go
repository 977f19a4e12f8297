package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil when resp carries want, and otherwise an error
// wrapping the sentinel that matches the received status.
func mapHTTPError(resp *resty.Response, want int) error {
	if resp.StatusCode() == want {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusRequestTimeout:
		return fmt.Errorf("%w: %s", ErrRequestTimeout, body)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServerUnavailable, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		return fmt.Errorf("%w: want %d, got %d: %s", ErrUnexpectedStatus, want, resp.StatusCode(), body)
	}
}
