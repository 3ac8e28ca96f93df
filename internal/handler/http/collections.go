package http

import (
	"net/http"

	"github.com/MKhiriev/arc-portal/internal/service"
	"github.com/MKhiriev/arc-portal/models"
)

// listRecords answers GET with every record of the collection.
func (h *Handler) listRecords(svc service.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, records)
	}
}

// createRecords answers POST. A JSON object inserts one record and returns
// it; a JSON array inserts a batch and returns an array.
func (h *Handler) createRecords(svc service.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeJSON(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		records, batch, err := recordsFromPayload(payload)
		if err != nil {
			writeError(w, r, err)
			return
		}

		inserted, err := svc.Create(r.Context(), records)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if batch {
			writeJSON(w, r, http.StatusCreated, inserted)
			return
		}
		writeJSON(w, r, http.StatusCreated, inserted[0])
	}
}

// updateRecord answers PUT with the record as stored after the update.
func (h *Handler) updateRecord(svc service.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeJSON(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if models.IsFalsy(payload) {
			writeError(w, r, errInvalidJSON)
			return
		}

		// Arrays and scalars carry no _id and are rejected as such.
		record, _ := payload.(map[string]any)

		updated, err := svc.Update(r.Context(), record)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

// deleteRecords answers DELETE with the number of removed records. A body
// that does not parse names no identifiers.
func (h *Handler) deleteRecords(svc service.CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.DeleteRequest
		if payload, err := decodeJSON(r); err == nil {
			if obj, ok := payload.(map[string]any); ok {
				req = models.DeleteRequest{ID: obj["id"], IDs: obj["ids"]}
			}
		}

		deleted, err := svc.Delete(r.Context(), req)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, models.DeleteResponse{DeletedCount: deleted})
	}
}

// recordsFromPayload turns a decoded POST body into records. Falsy array
// entries are dropped; any other non-object entry rejects the batch.
func recordsFromPayload(payload any) ([]models.Record, bool, error) {
	switch value := payload.(type) {
	case map[string]any:
		return []models.Record{value}, false, nil
	case []any:
		records := make([]models.Record, 0, len(value))
		for _, entry := range value {
			if models.IsFalsy(entry) {
				continue
			}
			obj, ok := entry.(map[string]any)
			if !ok {
				return nil, true, errInvalidJSON
			}
			records = append(records, obj)
		}
		return records, true, nil
	default:
		return nil, false, errInvalidJSON
	}
}
