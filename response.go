package midway

import (
	"net/http"
)

// Response renders HTTP responses. Implementations should set headers,
// status, and body. Rendering errors are handled by the server adapter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// baseResponse implements Response interface with bytes content.
type baseResponse struct {
	content     []byte
	statusCode  int
	contentType string
}

// Render implements the Response interface.
func (r baseResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if r.contentType != "" {
		w.Header().Set("Content-Type", r.contentType)
	}

	status := r.statusCode
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if len(r.content) > 0 {
		_, err := w.Write(r.content)
		return err
	}

	return nil
}

// String creates a text/plain response with 200 OK status.
func String(content string) Response {
	return baseResponse{
		content:     []byte(content),
		statusCode:  http.StatusOK,
		contentType: "text/plain; charset=utf-8",
	}
}

// StringWithStatus creates a text/plain response with custom status code.
func StringWithStatus(content string, status int) Response {
	return baseResponse{
		content:     []byte(content),
		statusCode:  status,
		contentType: "text/plain; charset=utf-8",
	}
}

// HTML creates a text/html response with 200 OK status.
func HTML(content string) Response {
	return baseResponse{
		content:     []byte(content),
		statusCode:  http.StatusOK,
		contentType: "text/html; charset=utf-8",
	}
}

// HTMLWithStatus creates a text/html response with custom status code.
func HTMLWithStatus(content string, status int) Response {
	return baseResponse{
		content:     []byte(content),
		statusCode:  status,
		contentType: "text/html; charset=utf-8",
	}
}

// Bytes creates a response with custom content type and 200 OK status.
func Bytes(content []byte, contentType string) Response {
	return baseResponse{
		content:     content,
		statusCode:  http.StatusOK,
		contentType: contentType,
	}
}

// headersResponse wraps a Response and adds custom headers.
type headersResponse struct {
	wrapped Response
	headers map[string]string
}

// Render implements the Response interface.
func (r *headersResponse) Render(w http.ResponseWriter, req *http.Request) error {
	for k, v := range r.headers {
		w.Header().Set(k, v)
	}
	return r.wrapped.Render(w, req)
}

// WithHeaders wraps a Response with custom HTTP headers.
// Headers are set before the wrapped response is rendered.
func WithHeaders(response Response, headers map[string]string) Response {
	if response == nil {
		return nil
	}
	if len(headers) == 0 {
		return response
	}
	return &headersResponse{
		wrapped: response,
		headers: headers,
	}
}
