package models

import (
	"net/http"
	"time"
)

// MFetchRequest describes a single outbound HTTP call
type MFetchRequest struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
	Timeout time.Duration // zero means network.timeout
}

// MFetchResponse is the structured result of an outbound call
type MFetchResponse struct {
	StatusCode int
	Header     http.Header
	Cookies    []*http.Cookie
	Body       []byte
}

// Cookie returns the value of the named response cookie, if present
func (r *MFetchResponse) Cookie(name string) (string, bool) {
	for _, c := range r.Cookies {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

func (r *MFetchResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
