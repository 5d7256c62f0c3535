package httpreq

import "strings"

// Version is one of the protocol versions the emitters understand.
type Version uint8

const (
	Unknown Version = iota
	HTTP09
	HTTP10
	HTTP11
	HTTP2
	HTTP3
)

var versionNames = [...]string{
	HTTP09: "HTTP/0.9",
	HTTP10: "HTTP/1.0",
	HTTP11: "HTTP/1.1",
	HTTP2:  "HTTP/2.0",
	HTTP3:  "HTTP/3.0",
}

var versionNumbers = [...][2]int{
	HTTP09: {0, 9},
	HTTP10: {1, 0},
	HTTP11: {1, 1},
	HTTP2:  {2, 0},
	HTTP3:  {3, 0},
}

var validVersions = strings.Join(versionNames[HTTP09:], ", ")

// ParseVersion maps a version literal onto the enumeration. Matching is exact.
func ParseVersion(s string) (Version, bool) {
	for v := HTTP09; v <= HTTP3; v++ {
		if versionNames[v] == s {
			return v, true
		}
	}
	return Unknown, false
}

// String returns the version literal, or "" for Unknown.
func (v Version) String() string {
	if v == Unknown || int(v) >= len(versionNames) {
		return ""
	}
	return versionNames[v]
}

// Numbers returns the major and minor version numbers.
func (v Version) Numbers() (major, minor int) {
	if int(v) >= len(versionNumbers) {
		return 0, 0
	}
	n := versionNumbers[v]
	return n[0], n[1]
}

// version resolves r.Version, reporting a *VersionError for unknown literals.
// An empty version resolves to Unknown without error.
func (r *Request) version() (Version, error) {
	if r.Version == "" {
		return Unknown, nil
	}
	v, ok := ParseVersion(r.Version)
	if !ok {
		return Unknown, &VersionError{Version: r.Version, Method: r.Method, URI: r.URI}
	}
	return v, nil
}
