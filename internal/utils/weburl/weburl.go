package weburl

import "net/http"

// Base derives the public base URL for links in responses. When
// override is set (deployments behind a proxy or TLS terminator) it
// wins; otherwise the scheme and host come from the request itself.
func Base(r *http.Request, override string) string {
	if override != "" {
		return override
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// Photo builds the fully-qualified URL for a stored photo filename.
func Photo(r *http.Request, override, filename string) string {
	return Base(r, override) + "/uploads/" + filename
}
