package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-social-api/internal/app"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	message := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if message == app.MsgWrongPassword {
			return fmt.Errorf("%w: %s", ErrWrongPassword, message)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		if message == app.MsgUserNotFound {
			return fmt.Errorf("%w: %s", ErrUserNotFound, message)
		}
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// errorMessage returns the API's JSON-string error body, the raw body if it
// is not a JSON string, or the status text if it is empty.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var message string
	if err := json.Unmarshal([]byte(body), &message); err == nil {
		body = message
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return body
}
