package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/uranus"
	"github.com/dmitrymomot/uranus/pkg/logger"
)

type validateResponse struct {
	Valid    bool           `json:"valid"`
	Messages []string       `json:"messages"`
	Report   *uranus.Result `json:"report"`
}

type rulesResponse struct {
	Rules []string `json:"rules"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PostValidate decodes a JSON or YAML document and validates it. The
// "progressive" query parameter overrides the document, which overrides
// the server default.
func (a *api) PostValidate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, a.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			a.writeError(w, r, http.StatusRequestEntityTooLarge, "body_too_large", err)
			return
		}
		a.writeError(w, r, http.StatusBadRequest, "input_error", err)
		return
	}

	req, err := uranus.ParseRequest(body)
	if err != nil {
		a.writeFailure(w, r, err)
		return
	}

	progressive := a.fallback.Progressive()
	if req.Progressive != nil {
		progressive = *req.Progressive
	}
	if q := r.URL.Query().Get("progressive"); q != "" {
		p, err := strconv.ParseBool(q)
		if err != nil {
			a.writeError(w, r, http.StatusBadRequest, "input_error", fmt.Errorf("progressive: %w", err))
			return
		}
		progressive = p
	}

	res, err := a.engines[progressive].ValidateAll(req.Input)
	if err != nil {
		a.writeFailure(w, r, err)
		return
	}

	a.writeJSON(w, http.StatusOK, validateResponse{
		Valid:    res.IsValid(),
		Messages: res.Messages(),
		Report:   res,
	})
}

// GetRules lists the names known to the engine registry.
func (a *api) GetRules(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, rulesResponse{Rules: a.fallback.RuleNames()})
}

func (a *api) registryLoaded(context.Context) error {
	if a.fallback.Registry().Len() == 0 {
		return errors.New("rule registry is empty")
	}
	return nil
}

// writeFailure maps engine errors to HTTP statuses.
func (a *api) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, uranus.ErrConfiguration):
		a.writeError(w, r, http.StatusBadRequest, "configuration_error", err)
	case errors.Is(err, uranus.ErrInputShape):
		a.writeError(w, r, http.StatusBadRequest, "input_error", err)
	case errors.Is(err, uranus.ErrPredicate):
		a.writeError(w, r, http.StatusUnprocessableEntity, "predicate_error", err)
	default:
		a.writeError(w, r, http.StatusInternalServerError, "internal_error", err)
	}
}

func (a *api) writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	a.log.WarnContext(r.Context(), "validation request rejected",
		logger.Error(err),
		slog.Int("status", status),
	)
	a.writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: err.Error()}})
}

func (a *api) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Error("failed to encode response", logger.Error(err))
	}
}
