package httpx

import (
	"bytes"
	"net/http"
)

// BufferedResponse captures what a handler writes so the caller can inspect
// it before deciding to forward it.
type BufferedResponse struct {
	status int
	header http.Header
	body   bytes.Buffer
}

func NewBufferedResponse() *BufferedResponse {
	return &BufferedResponse{header: http.Header{}}
}

func (b *BufferedResponse) Header() http.Header {
	return b.header
}

func (b *BufferedResponse) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *BufferedResponse) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

// Status is 200 when the handler wrote a body without a status, like
// net/http does.
func (b *BufferedResponse) Status() int {
	if b.status == 0 {
		return http.StatusOK
	}
	return b.status
}

func (b *BufferedResponse) Body() []byte {
	return b.body.Bytes()
}

// Flush copies headers, status and body to w.
func (b *BufferedResponse) Flush(w http.ResponseWriter) error {
	header := w.Header()
	for key, values := range b.header {
		header[key] = values
	}
	w.WriteHeader(b.Status())
	_, err := w.Write(b.body.Bytes())
	return err
}
