package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/arc-portal/internal/app"
	"github.com/MKhiriev/arc-portal/internal/service"
)

// errorResponse is the status and client-facing message an error maps to.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is scanned in order; the first match wins. Errors that do
// not match any entry are answered with a bare 500 so that internal details
// never reach the client.
var errorResponses = []errorResponse{
	{service.ErrDatabaseConnection, http.StatusInternalServerError, app.MsgDatabaseConnectionFailed},

	{service.ErrNoRecordsToInsert, http.StatusBadRequest, app.MsgNoRecordsToInsert},
	{service.ErrRecordIDRequired, http.StatusBadRequest, app.MsgRecordIDRequired},
	{service.ErrInvalidRecordID, http.StatusBadRequest, app.MsgInvalidRecordID},
	{service.ErrRecordNotFound, http.StatusNotFound, app.MsgRecordNotFound},
	{service.ErrNoValidIDs, http.StatusBadRequest, app.MsgNoValidIDs},
	{service.ErrFetchRecords, http.StatusInternalServerError, app.MsgUnableToFetchRecords},
	{service.ErrInsertRecords, http.StatusInternalServerError, app.MsgUnableToInsertRecord},
	{service.ErrUpdateRecord, http.StatusInternalServerError, app.MsgUnableToUpdateRecord},
	{service.ErrDeleteRecords, http.StatusInternalServerError, app.MsgUnableToDeleteRecords},

	{service.ErrFileNameAndDataRequired, http.StatusBadRequest, app.MsgFileNameAndDataRequired},
	{service.ErrInvalidBase64, http.StatusBadRequest, app.MsgInvalidBase64},
	{service.ErrFileTooLarge, http.StatusRequestEntityTooLarge, app.MsgFileTooLarge},
	{service.ErrInvalidDocumentID, http.StatusBadRequest, app.MsgInvalidDocumentID},
	{service.ErrDocumentNotFound, http.StatusNotFound, app.MsgDocumentNotFound},
	{service.ErrStoreDocument, http.StatusInternalServerError, app.MsgUnableToStoreDocument},
	{service.ErrFetchDocument, http.StatusInternalServerError, app.MsgUnableToFetchDocument},
	{service.ErrListDocuments, http.StatusInternalServerError, app.MsgUnableToListDocuments},

	{service.ErrEmailAndPasswordRequired, http.StatusBadRequest, app.MsgEmailAndPasswordRequired},
	{service.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{service.ErrEmailAlreadyRegistered, http.StatusConflict, app.MsgEmailAlreadyRegistered},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrRegistrationFailed, http.StatusInternalServerError, app.MsgRegistrationFailed},
	{service.ErrAuthenticationFailed, http.StatusInternalServerError, app.MsgAuthenticationFailed},

	{errInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSONBody},
	{errBodyTooLarge, http.StatusRequestEntityTooLarge, app.MsgFileTooLarge},
	{errNoSessionToken, http.StatusUnauthorized, app.MsgUnauthorized},
}

func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
