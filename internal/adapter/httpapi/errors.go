package httpapi

import (
	"errors"
	"strings"

	"leetcode-relay/internal/domain/model"
)

// Client-facing failure messages.
const (
	MsgInvalidURL     = "Invalid URL. Please enter a correct LeetCode problem URL."
	MsgFetchFailed    = "Failed to fetch problem data. Please try again later."
	MsgNotFound       = "Problem not found."
	MsgCORS           = "CORS error: Please visit https://cors-anywhere.herokuapp.com/corsdemo to activate demo access"
	MsgInvalidBody    = "invalid request body"
	MsgInternalServer = "Internal server error"
)

// userMessage maps a lookup error onto the message returned to clients.
// Invalid URLs and missing problems always get their fixed message; any other
// error whose text mentions "cors" is replaced by the proxy activation hint.
// Unclassified errors keep their own text.
func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidURL):
		return MsgInvalidURL
	case errors.Is(err, model.ErrProblemNotFound):
		return MsgNotFound
	case strings.Contains(err.Error(), "cors"):
		return MsgCORS
	case errors.Is(err, model.ErrUpstreamUnavailable):
		return MsgFetchFailed
	default:
		return err.Error()
	}
}
