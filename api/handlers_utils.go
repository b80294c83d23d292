package api

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/status-im/market-dashboard/cache"
	"github.com/status-im/market-dashboard/market_errors"
)

// errorResponse is the body of every failed request
type errorResponse struct {
	Error     string   `json:"error"`
	Kind      string   `json:"kind"`
	Warnings  []string `json:"warnings,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// setCacheStatusHeader sets the Cache-Status header based on cache status
func (s *Server) setCacheStatusHeader(w http.ResponseWriter, cacheStatus cache.Status) {
	if cacheStatus != "" {
		w.Header().Set("Cache-Status", cacheStatus.String())
	}
}

// setWarningHeaders adds one Warning header per correction made to the request
func (s *Server) setWarningHeaders(w http.ResponseWriter, warnings []string) {
	for _, warning := range warnings {
		w.Header().Add("Warning", fmt.Sprintf("199 - %s", strconv.Quote(warning)))
	}
}

// sendJSONResponse is a common wrapper for JSON responses that sets Content-Type,
// Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	s.sendJSONWithStatus(w, http.StatusOK, data)
}

func (s *Server) sendJSONWithStatus(w http.ResponseWriter, status int, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	// ETag is the MD5 of the body
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")
	w.WriteHeader(status)

	if _, err := w.Write(responseBytes); err != nil {
		zap.L().Error("Error writing response", zap.Error(err))
	}
}

// sendError maps a failure to its HTTP status and renders it as JSON
func (s *Server) sendError(w http.ResponseWriter, r *http.Request, err error, warnings []string) {
	status := market_errors.HTTPStatus(err)
	requestID := r.Header.Get(requestIDHeader)

	zap.L().Warn("Request failed",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("kind", market_errors.KindOf(err).String()),
		zap.String("request_id", requestID),
		zap.Error(err))

	s.setWarningHeaders(w, warnings)
	s.sendJSONWithStatus(w, status, errorResponse{
		Error:     err.Error(),
		Kind:      market_errors.KindOf(err).String(),
		Warnings:  warnings,
		RequestID: requestID,
	})
}

func getParamLowercase(r *http.Request, key string) string {
	if r == nil {
		return ""
	}
	value := r.URL.Query().Get(key)
	if value != "" {
		return strings.ToLower(value)
	}
	return ""
}

// splitParam splits a comma separated parameter, keeping case
func splitParam(param string) []string {
	if param == "" {
		return []string{}
	}

	parts := strings.Split(param, ",")
	result := []string{}
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// getIntParam reads an optional integer parameter. Unparsable values fall back
// to 0 (the default) and produce a warning.
func getIntParam(r *http.Request, key string) (int, []string) {
	return getIntParamOrDefault(r, key, 0)
}

// getIntParamOrDefault returns def when the parameter is absent or not a number.
// An explicit value, zero included, is passed through.
func getIntParamOrDefault(r *http.Request, key string, def int) (int, []string) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def, []string{fmt.Sprintf("invalid value for %s parameter %q, using default", key, raw)}
	}
	return value, nil
}
