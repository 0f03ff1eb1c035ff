package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
)

var validate = validator.New()

// writeJSON encodes v as the response body with the given status code.
// An unencodable v is answered with 500 and an error body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "status", status, "error", err)
		buf.Reset()
		buf.WriteString(`{"error":"Internal server error"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
