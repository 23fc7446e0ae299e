// Package server serves the web UI and the JSON API that drives it.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/ops-optimizer/internal/config"
	"github.com/iwvelando/ops-optimizer/internal/report"
	"github.com/iwvelando/ops-optimizer/pkg/constants"
	"github.com/iwvelando/ops-optimizer/pkg/operations"
	"github.com/iwvelando/ops-optimizer/pkg/output"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Options configures the handler.
type Options struct {
	MaxBodySize int64
	Version     string
	// Defaults supplies the initial form values and the curve resolution.
	Defaults *config.Configuration
}

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	defaults    config.Configuration
}

// NewHandler constructs the HTTP handler that serves the web UI and calculation API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	defaults := opts.Defaults
	if defaults == nil {
		defaults = config.Default()
	}

	h := &handler{
		logger:      logger,
		maxBodySize: opts.MaxBodySize,
		version:     trimmedVersion,
		defaults:    *defaults,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/eoq", h.handleEOQ)
	mux.HandleFunc("/api/line-balance", h.handleLineBalance)

	// Workbook download of one or both calculations
	mux.HandleFunc("/api/export", h.handleExport)

	// Initial form values
	mux.HandleFunc("/api/defaults", h.handleDefaults)

	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return mux
}

type eoqRequest struct {
	report.EOQInputs
	Points *int `json:"points,omitempty"`
}

type eoqResponse struct {
	ID       string                  `json:"id"`
	Result   operations.EOQResult    `json:"result"`
	Curve    []operations.CurvePoint `json:"curve,omitempty"`
	Summary  string                  `json:"summary"`
	Duration string                  `json:"duration"`
}

type lineBalanceResponse struct {
	ID        string                       `json:"id"`
	TaskTimes []float64                    `json:"taskTimes"`
	Result    operations.LineBalanceResult `json:"result"`
	Summary   string                       `json:"summary"`
	Duration  string                       `json:"duration"`
}

type exportRequest struct {
	EOQ         *report.EOQInputs         `json:"eoq,omitempty"`
	LineBalance *report.LineBalanceInputs `json:"lineBalance,omitempty"`
}

type defaultsResponse struct {
	EOQ         report.EOQInputs         `json:"eoq"`
	LineBalance report.LineBalanceInputs `json:"lineBalance"`
	ChartPoints int                      `json:"chartPoints"`
}

type errorResponse struct {
	ID     string `json:"id"`
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Detail string `json:"detail,omitempty"`
}

// Error kinds reported to the UI.
const (
	kindRequest    = "request"
	kindValidation = "validation"
	kindFormat     = "format"
	kindInternal   = "internal"
)

func (h *handler) handleEOQ(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEOQ"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	id := newRequestID(w)

	var req eoqRequest
	if !h.decode(w, r, &req, id, op) {
		return
	}

	points := h.defaults.Chart.Points
	if req.Points != nil {
		points = *req.Points
		if points < constants.MinCurvePoints || points > constants.MaxCurvePoints {
			h.respondError(w, http.StatusBadRequest, errorResponse{
				ID:    id,
				Error: fmt.Sprintf("points must be between %d and %d", constants.MinCurvePoints, constants.MaxCurvePoints),
				Kind:  kindRequest,
			}, op)
			return
		}
	}

	rep, err := report.RunEOQ(h.logger, req.EOQInputs, points)
	if err != nil {
		h.respondCalculationError(w, err, id, op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("economic order quantity computed",
		zap.String("op", op),
		zap.String("requestId", id),
		zap.Float64("optimalQuantity", rep.Result.OptimalQuantity),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, eoqResponse{
		ID:       id,
		Result:   rep.Result,
		Curve:    rep.Curve,
		Summary:  rep.Summary(),
		Duration: elapsed.String(),
	})
}

func (h *handler) handleLineBalance(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLineBalance"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	id := newRequestID(w)

	var req report.LineBalanceInputs
	if !h.decode(w, r, &req, id, op) {
		return
	}

	rep, err := report.RunLineBalance(h.logger, req)
	if err != nil {
		h.respondCalculationError(w, err, id, op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("line balance computed",
		zap.String("op", op),
		zap.String("requestId", id),
		zap.Int("minStations", rep.Result.MinStations),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, lineBalanceResponse{
		ID:        id,
		TaskTimes: rep.TaskTimes,
		Result:    rep.Result,
		Summary:   rep.Summary(),
		Duration:  elapsed.String(),
	})
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	id := newRequestID(w)

	var req exportRequest
	if !h.decode(w, r, &req, id, op) {
		return
	}
	if req.EOQ == nil && req.LineBalance == nil {
		h.respondError(w, http.StatusBadRequest, errorResponse{ID: id, Error: "nothing to export", Kind: kindRequest}, op)
		return
	}

	var rep report.Report
	switch {
	case req.EOQ != nil && req.LineBalance != nil:
		rep.Mode = constants.ModeAll
	case req.EOQ != nil:
		rep.Mode = constants.ModeEOQ
	default:
		rep.Mode = constants.ModeLineBalance
	}

	if req.EOQ != nil {
		eoq, err := report.RunEOQ(h.logger, *req.EOQ, h.defaults.Chart.Points)
		if err != nil {
			h.respondCalculationError(w, err, id, op)
			return
		}
		rep.EOQ = &eoq
	}
	if req.LineBalance != nil {
		balance, err := report.RunLineBalance(h.logger, *req.LineBalance)
		if err != nil {
			h.respondCalculationError(w, err, id, op)
			return
		}
		rep.LineBalance = &balance
	}

	f, err := output.Workbook(rep)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, errorResponse{ID: id, Error: err.Error(), Kind: kindInternal}, op)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			h.logger.Warn("failed to close workbook",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", constants.DefaultWorkbookFile))
	w.WriteHeader(http.StatusOK)
	if _, err := f.WriteTo(w); err != nil {
		h.logger.Error("failed to write workbook",
			zap.String("op", op),
			zap.String("requestId", id),
			zap.Error(err),
		)
		return
	}

	h.logger.Info("workbook exported",
		zap.String("op", op),
		zap.String("requestId", id),
		zap.String("mode", rep.Mode),
	)
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, defaultsResponse{
		EOQ: report.EOQInputs{
			Demand:      h.defaults.EOQ.Demand,
			OrderCost:   h.defaults.EOQ.OrderCost,
			HoldingCost: h.defaults.EOQ.HoldingCost,
		},
		LineBalance: report.LineBalanceInputs{
			TaskTimes:     h.defaults.LineBalance.TaskTimes,
			AvailableTime: h.defaults.LineBalance.AvailableTime,
			Demand:        h.defaults.LineBalance.Demand,
		},
		ChartPoints: h.defaults.Chart.Points,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decode reads a size-limited JSON body into dst. On failure it writes the
// error response and returns false.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}, id, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, errorResponse{
				ID:    id,
				Error: fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize),
				Kind:  kindRequest,
			}, op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, errorResponse{
			ID:    id,
			Error: fmt.Sprintf("failed to decode request: %v", err),
			Kind:  kindRequest,
		}, op)
		return false
	}
	return true
}

// respondCalculationError maps calculation failures onto the two messages the
// UI shows: a format error for the task list and a generic validation error
// for everything numeric.
func (h *handler) respondCalculationError(w http.ResponseWriter, err error, id, op string) {
	resp := errorResponse{ID: id, Detail: err.Error()}
	status := http.StatusBadRequest
	switch {
	case report.IsFormatError(err):
		resp.Error = report.FormatMessage
		resp.Kind = kindFormat
	case report.IsValidationError(err):
		resp.Error = report.ValidationMessage
		resp.Kind = kindValidation
	default:
		status = http.StatusInternalServerError
		resp.Error = "calculation failed"
		resp.Kind = kindInternal
	}
	h.respondError(w, status, resp, op)
}

func (h *handler) respondError(w http.ResponseWriter, status int, resp errorResponse, op string) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("requestId", resp.ID),
		zap.Int("status", status),
		zap.String("kind", resp.Kind),
		zap.String("error", resp.Error),
	}
	if resp.Detail != "" {
		fields = append(fields, zap.String("detail", resp.Detail))
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("calculation request failed", fields...)
	} else {
		h.logger.Warn("calculation request rejected", fields...)
	}

	h.writeJSON(w, status, resp)
}

// writeJSON encodes payload before writing the header. A payload that cannot
// be encoded is answered with a 500.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Int("status", status),
			zap.Error(err),
		)
		buf.Reset()
		status = http.StatusInternalServerError
		fmt.Fprintf(&buf, "{\"id\":%q,\"error\":\"failed to encode response\",\"kind\":%q}\n", w.Header().Get("X-Request-ID"), kindInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}

func newRequestID(w http.ResponseWriter) string {
	id := uuid.NewString()
	w.Header().Set("X-Request-ID", id)
	return id
}
