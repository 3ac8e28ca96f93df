package models

// MessageResponse is the uniform JSON shape of every error and informational
// response: {"message": "..."}.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteRequest is the body accepted by collection deletes. Either a single
// ID or a list of IDs may be given; IDs wins when it is a JSON array.
type DeleteRequest struct {
	ID  any `json:"id"`
	IDs any `json:"ids"`
}

// Identifiers returns the raw identifier values named by the request, in
// request order. Values are not checked for shape.
func (r DeleteRequest) Identifiers() []any {
	if ids, ok := r.IDs.([]any); ok {
		return ids
	}
	if !IsFalsy(r.ID) {
		return []any{r.ID}
	}
	return nil
}

// DeleteResponse reports how many documents a delete removed.
type DeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}
