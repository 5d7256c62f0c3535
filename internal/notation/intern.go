package notation

// String interning for common tokens.
//
// The Go compiler optimizes map lookups with string([]byte) keys
// to avoid allocating the temporary string, so internMethod(someBytes)
// is zero-alloc for known methods.

var methods = map[string]string{
	"GET": "GET", "HEAD": "HEAD", "POST": "POST",
	"PUT": "PUT", "DELETE": "DELETE", "CONNECT": "CONNECT",
	"OPTIONS": "OPTIONS", "TRACE": "TRACE", "PATCH": "PATCH",
}

var headerNames = map[string]string{
	"Accept":            "Accept",
	"Accept-Encoding":   "Accept-Encoding",
	"Accept-Language":   "Accept-Language",
	"Authorization":     "Authorization",
	"Cache-Control":     "Cache-Control",
	"Connection":        "Connection",
	"Content-Encoding":  "Content-Encoding",
	"Content-Length":    "Content-Length",
	"Content-Type":      "Content-Type",
	"Cookie":            "Cookie",
	"Host":              "Host",
	"If-Match":          "If-Match",
	"If-None-Match":     "If-None-Match",
	"Origin":            "Origin",
	"Referer":           "Referer",
	"Transfer-Encoding": "Transfer-Encoding",
	"User-Agent":        "User-Agent",
	"X-Request-ID":      "X-Request-ID",
}

// internMethod returns an interned string for known methods, avoiding allocation.
func internMethod(b []byte) string {
	if s, ok := methods[string(b)]; ok {
		return s
	}
	return string(b)
}

// internHeaderName returns an interned string for known header names, avoiding allocation.
func internHeaderName(b []byte) string {
	if s, ok := headerNames[string(b)]; ok {
		return s
	}
	return string(b)
}
