package midway

import (
	"encoding/json"
	"net/http"
)

// JSON creates an application/json response with 200 OK status.
// JSON encoding is performed directly to the response writer.
func JSON(v any) Response {
	return &jsonResponse{
		data:       v,
		statusCode: http.StatusOK,
	}
}

// JSONWithStatus creates an application/json response with custom status code.
func JSONWithStatus(v any, status int) Response {
	return &jsonResponse{
		data:       v,
		statusCode: status,
	}
}

// jsonResponse implements Response interface for JSON encoding directly to the writer.
type jsonResponse struct {
	data       any
	statusCode int
}

// Render implements the Response interface by encoding JSON directly to the response writer.
func (r *jsonResponse) Render(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	status := r.statusCode
	if status == 0 {
		if r.data == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}
	w.WriteHeader(status)

	// 204 and 304 must not carry a body per HTTP spec.
	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}

	return json.NewEncoder(w).Encode(r.data)
}
