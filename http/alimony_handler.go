package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"alimony-calculator/service"
)

const (
	maxBodyBytes         = 1 << 20
	calculationIDHeader  = "X-Calculation-ID"
	internalErrorMessage = "An error occurred during calculation"
)

type AlimonyHandler struct {
	service *service.AlimonyService
	logger  *zap.Logger
}

func NewAlimonyHandler(service *service.AlimonyService, logger *zap.Logger) *AlimonyHandler {
	return &AlimonyHandler{service: service, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Errors []string `json:"errors"`
}

func (h *AlimonyHandler) CalculateAlimony(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	raw, err := decodeBody(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	record, err := h.service.Calculate(r.Context(), raw)
	if err != nil {
		var invalid *service.InvalidInputError
		switch {
		case errors.Is(err, service.ErrMissingFields):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: service.MissingFieldsMessage})
		case errors.As(err, &invalid):
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{Errors: invalid.Errors})
		default:
			h.logger.Error("calculation failed",
				zap.String("request_id", RequestIDFromContext(r.Context())),
				zap.Error(err),
			)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: internalErrorMessage})
		}
		return
	}

	w.Header().Set(calculationIDHeader, record.ID)
	writeJSON(w, http.StatusOK, record.Result)
}

// decodeBody reads exactly one JSON object. An empty body yields a nil map.
// Numbers stay json.Number so an overflowing literal reaches validation as a
// range error instead of failing the decode.
func decodeBody(body io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}
	return raw, nil
}

func (h *AlimonyHandler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, service.ErrCalculationNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "calculation not found"})
		return
	}
	if err != nil {
		h.logger.Error("calculation lookup failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
