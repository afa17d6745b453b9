package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/stimmen-archiv/backend/srvcerror"
	"github.com/stimmen-archiv/backend/subm"
)

func (httpserver *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		writeErrorJson(w, http.StatusBadRequest, "Content-Type must be application/json")
		return
	}

	type createSubmissionRequest struct {
		Subject  string                `json:"subject"`
		Message  string                `json:"message"`
		ReplyTo  string                `json:"replyTo"`
		Honeypot string                `json:"honeypot"`
		Files    []subm.FileAttachment `json:"files"`
		Lang     string                `json:"lang"`
	}

	var request createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeErrorJson(w, http.StatusBadRequest, "Request body must be valid JSON")
		return
	}

	// A filled honeypot marks automated spam: acknowledge and drop without
	// touching storage or mail.
	if strings.TrimSpace(request.Honeypot) != "" {
		logger.Info("honeypot filled, dropping submission")
		writeJson(w, http.StatusOK, map[string]any{"success": true})
		return
	}

	result, err := httpserver.submSrvc.CreateSubmission(r.Context(), subm.CreateSubmissionParams{
		Subject: request.Subject,
		Message: request.Message,
		ReplyTo: request.ReplyTo,
		Lang:    request.Lang,
		Files:   request.Files,
	})
	if err != nil {
		handleCreateError(logger, w, err)
		return
	}

	if result.Warning != "" {
		writeJson(w, http.StatusAccepted, map[string]any{
			"success": true,
			"warning": result.Warning,
		})
		return
	}

	writeJson(w, http.StatusOK, map[string]any{"success": true})
}

func handleCreateError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerror.Error{}
	if errors.As(err, &srvcErr) {
		if srvcErr.HttpStatusCode() == http.StatusBadRequest {
			logger.Warn("submission rejected", "code", srvcErr.ErrorCode(), "error", err)
			writeErrorJson(w, http.StatusBadRequest, srvcErr.Error())
			return
		}
		logger.Error("submission failed",
			"code", srvcErr.ErrorCode(), "error", err, "debug", srvcErr.DebugInfo())
		writeJson(w, srvcErr.HttpStatusCode(), map[string]any{
			"success": false,
			"error":   "Failed to save submission",
			"details": errorDetails(srvcErr),
		})
		return
	}

	logger.Error("submission failed", "error", err)
	writeJson(w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"error":   "Failed to save submission",
		"details": err.Error(),
	})
}

func errorDetails(e *srvcerror.Error) string {
	if dbg := e.DebugInfo(); dbg != nil {
		return e.Error() + ": " + dbg.Error()
	}
	return e.Error()
}
