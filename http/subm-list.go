package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/stimmen-archiv/backend/srvcerror"
)

func (httpserver *HttpServer) listResponses(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type listResponsesResponse struct {
		Items   []Submission `json:"items"`
		Warning string       `json:"warning,omitempty"`
	}

	items, skipped, err := httpserver.submSrvc.ListSubmissions(r.Context())
	if err != nil {
		details := err.Error()
		srvcErr := &srvcerror.Error{}
		if errors.As(err, &srvcErr) {
			details = errorDetails(srvcErr)
		}
		logger.Error("failed to list responses", "error", err)
		writeJson(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "Failed to fetch responses",
			"details": details,
		})
		return
	}

	response := listResponsesResponse{Items: mapSubmList(items)}
	if skipped > 0 {
		logger.Warn("degraded listing", "skipped", skipped)
		response.Warning = fmt.Sprintf("%d submissions could not be read and were omitted", skipped)
	}

	writeJson(w, http.StatusOK, response)
}
