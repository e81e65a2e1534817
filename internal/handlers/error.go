package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Error is returned by handlers to select the response status and the
// client-visible message. Err is logged but never sent to the client.
type Error struct {
	Status  int
	Message string
	Err     error
}

func NewError(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HandlerFunc is an http.HandlerFunc that reports failure instead of writing it.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to net/http. Returned errors are logged once here and
// written as plain text; anything that is not an *Error becomes a 500.
func Handle(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}

		var herr *Error
		if !errors.As(err, &herr) {
			herr = NewError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
		}

		var evt *zerolog.Event
		if herr.Status >= http.StatusInternalServerError {
			evt = log.Error()
		} else {
			evt = log.Warn()
		}
		evt.Err(herr.Err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Int("status", herr.Status).
			Msg(herr.Message)

		RespondWithError(w, herr.Status, herr.Message)
	}
}
