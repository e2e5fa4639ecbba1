package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests. An empty body
// generates a password with the documented defaults.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerateQuery handles GET /api/v1/generate requests with
// options passed as query parameters.
func (h *GeneratorHandler) HandleGenerateQuery(w http.ResponseWriter, r *http.Request) {
	req, err := generateRequestFromQuery(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGenerateBatch handles POST /api/v1/generate/batch requests.
func (h *GeneratorHandler) HandleGenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req model.BatchGenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GenerateBatch(req)
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// generateRequestFromQuery builds a generation request from query
// parameters, applying the loose boolean coercion the boundary owns.
func generateRequestFromQuery(q url.Values) (model.GenerateRequest, error) {
	var req model.GenerateRequest

	if v := q.Get("length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return model.GenerateRequest{}, errors.New("invalid length parameter")
		}
		req.Length = n
	}

	boolParams := []struct {
		name string
		dst  *model.FlexBool
	}{
		{"uppercase", &req.Uppercase},
		{"lowercase", &req.Lowercase},
		{"numbers", &req.Numbers},
		{"symbols", &req.Symbols},
		{"exclude_ambiguous", &req.ExcludeAmbiguous},
		{"require_each", &req.RequireEach},
	}
	for _, p := range boolParams {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		b, err := model.ParseBool(v)
		if err != nil {
			return model.GenerateRequest{}, errors.New("invalid " + p.name + " parameter")
		}
		*p.dst = model.Flex(b)
	}

	req.ExcludeChars = q.Get("exclude_chars")
	return req, nil
}

// writeGenerationError maps core generation errors onto HTTP statuses:
// validation failures are the client's fault, anything else (random
// source faults) is a 500.
func writeGenerationError(w http.ResponseWriter, err error) {
	if isValidationError(err) {
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}

func isValidationError(err error) bool {
	var exhausted *crypto.CategoryExhaustedError
	return errors.Is(err, crypto.ErrInvalidLength) ||
		errors.Is(err, crypto.ErrNoActiveCategory) ||
		errors.Is(err, crypto.ErrLengthTooSmallForCategories) ||
		errors.Is(err, crypto.ErrInvalidCount) ||
		errors.As(err, &exhausted)
}

// decodeBody decodes a JSON request body into dst, tolerating an empty
// body. It writes the error response itself and reports whether the
// handler should proceed.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			// Empty body: fall through to defaults.
			return true
		case err.Error() == "http: request body too large":
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		default:
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]any {
	return map[string]any{"success": false, "error": msg}
}
