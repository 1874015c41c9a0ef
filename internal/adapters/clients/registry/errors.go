// Package registry talks to the remote board registry and chains it behind
// the locally installed platforms. The boards subpackage owns the wire
// format.
package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/pio-home/internal/domain"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// errorBody covers both RFC 7807 problem documents (detail, errors) and the
// registry's plain {"message": ...} replies.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Errors  []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

func (b errorBody) text(status int) string {
	switch {
	case b.Detail != "":
		return b.Detail
	case b.Message != "":
		return b.Message
	}
	return http.StatusText(status)
}

// translateStatus turns a non-200 registry response into a domain error.
func translateStatus(resp *http.Response) error {
	body := readErrorBody(resp)
	text := body.text(resp.StatusCode)

	var sentinel error
	switch status := resp.StatusCode; {
	case status == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		if len(body.Errors) > 0 {
			fields := make(map[string]string, len(body.Errors))
			for _, e := range body.Errors {
				fields[e.Location] = e.Message
			}
			return &domain.ValidationError{Fields: fields}
		}
		sentinel = domain.ErrValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		sentinel = domain.ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d: %s", status, text)
	}
	return fmt.Errorf("%s: %w", text, sentinel)
}

// readErrorBody decodes a JSON error body. Anything else, or anything
// malformed, yields the zero value.
func readErrorBody(resp *http.Response) errorBody {
	var b errorBody
	if resp.Body == nil {
		return b
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || (mt != "application/json" && mt != "application/problem+json") {
		return b
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&b); err != nil {
		return errorBody{}
	}
	return b
}
