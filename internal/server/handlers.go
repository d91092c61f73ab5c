package server

import (
	"encoding/json"
	"net/http"

	"github.com/MantraGGR/nvidiaTradingBotWGUI/internal/types"
	"github.com/MantraGGR/nvidiaTradingBotWGUI/pkg/errors"
	"go.uber.org/zap"
)

// handleStrategies returns the closed set of strategy names.
func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(types.AllStrategies))
	for _, name := range types.AllStrategies {
		names = append(names, string(name))
	}

	s.writeJSON(w, http.StatusOK, StrategiesResponse{Strategies: names})
}

// handleBacktest runs a single strategy over the server's feed.
func (s *Server) handleBacktest(w http.ResponseWriter, r *http.Request) {
	var req BacktestRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	name := types.StrategyName(req.Strategy)
	if !types.IsValidStrategy(name) {
		s.writeError(w, http.StatusBadRequest,
			errors.Newf(errors.ErrCodeUnknownStrategy, "unknown strategy %q", req.Strategy))

		return
	}

	result, err := s.runnerFor(req.InitialCapital).Run(s.feed, name)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)

		return
	}

	s.log.Info("Backtest completed",
		zap.String("strategy", req.Strategy),
		zap.String("run_id", result.ID),
		zap.Int("trades", len(result.Trades)),
	)

	s.writeJSON(w, http.StatusOK, backtestResponseDTO(result))
}

// handleCompareStrategies runs several strategies independently over the same
// feed. An empty strategy list compares every known strategy.
func (s *Server) handleCompareStrategies(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !s.decodeRequest(w, r, &req) {
		return
	}

	names := make([]types.StrategyName, 0, len(req.Strategies))

	if len(req.Strategies) == 0 {
		names = append(names, types.AllStrategies...)
	} else {
		for _, raw := range req.Strategies {
			name := types.StrategyName(raw)
			if !types.IsValidStrategy(name) {
				s.writeError(w, http.StatusBadRequest,
					errors.Newf(errors.ErrCodeUnknownStrategy, "unknown strategy %q", raw))

				return
			}

			names = append(names, name)
		}
	}

	results, err := s.runnerFor(req.InitialCapital).Compare(s.feed, names)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)

		return
	}

	response := make(map[string]ComparisonEntryDTO, len(results))
	for name, entry := range results {
		response[string(name)] = ComparisonEntryDTO{
			EquityCurve: equityCurveDTO(entry.EquityCurve),
			FinalValue:  entry.FinalValue,
			Metrics:     metricsDTO(entry.Metrics),
		}
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleStockData returns the feed the server was started with.
func (s *Server) handleStockData(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, stockDataDTO(s.feed))
}

// decodeRequest parses and validates a JSON request body. On failure it
// writes a 400 response and returns false.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidRequest, "invalid request body", err))

		return false
	}

	if err := s.validate.Struct(dst); err != nil {
		s.writeError(w, http.StatusBadRequest,
			errors.Wrap(errors.ErrCodeInvalidRequest, "invalid request", err))

		return false
	}

	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.Warn("Request failed", zap.Int("status", status), zap.Error(err))
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
