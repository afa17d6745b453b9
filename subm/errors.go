package subm

import (
	"net/http"

	"github.com/stimmen-archiv/backend/srvcerror"
)

const ErrCodeMessageMissing = "message_missing"

func newErrMessageMissing() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMessageMissing,
		"Missing required fields: message",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeFileDataInvalid = "file_data_invalid"

func newErrFileDataInvalid(name string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFileDataInvalid,
		"File "+name+" is not valid base64",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeStoreNotConfigured = "store_not_configured"

func newErrStoreNotConfigured(what string) *srvcerror.Error {
	return srvcerror.New(
		ErrCodeStoreNotConfigured,
		"Storage configuration missing: "+what,
	).SetHttpStatusCode(http.StatusInternalServerError)
}

const ErrCodeStoreUnavailable = "store_unavailable"

func newErrStoreUnavailable() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeStoreUnavailable,
		"Failed to save submission",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

const ErrCodeMailNotConfigured = "mail_not_configured"

func newErrMailNotConfigured() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMailNotConfigured,
		"Email configuration missing: SENDER_EMAIL or DESTINATION_EMAIL not set",
	).SetHttpStatusCode(http.StatusInternalServerError)
}

const ErrCodeConcurrentModification = "concurrent_modification"

func newErrConcurrentModification() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeConcurrentModification,
		"Submission index was updated concurrently, retry the submission",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
