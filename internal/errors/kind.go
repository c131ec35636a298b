package errors

import (
	"errors"
)

// Kind is the user-facing classification of a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidCredentials
	KindUnauthorized
	KindNetwork
	KindServer
	KindStorage
	KindInvalidInput
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCredentials:
		return "InvalidCredentials"
	case KindUnauthorized:
		return "Unauthorized"
	case KindNetwork:
		return "NetworkError"
	case KindServer:
		return "ServerError"
	case KindStorage:
		return "StorageError"
	case KindInvalidInput:
		return "InvalidInput"
	case KindConfiguration:
		return "ConfigurationError"
	default:
		return "Unknown"
	}
}

// KindOf classifies err. Order matters: a joined error carrying an
// authorization failure is reported as Unauthorized first.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrStorage):
		return KindStorage
	case errors.Is(err, ErrNetwork):
		return KindNetwork
	case errors.Is(err, ErrServer):
		return KindServer
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	default:
		return KindUnknown
	}
}

// UserMessage renders err the way it should be shown to the user.
func UserMessage(err error) string {
	switch KindOf(err) {
	case KindInvalidCredentials:
		return "Invalid username or password"
	case KindUnauthorized:
		return "Your session has expired. Please log in again."
	case KindNetwork:
		return "Network error. Please check your connection."
	case KindServer:
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && httpErr.Message != "" {
			return httpErr.Message
		}
		return "The server could not complete the request"
	case KindStorage:
		return "Could not access saved credentials"
	case KindUnknown:
		if err == nil {
			return ""
		}
	}
	return err.Error()
}
