package notation

import "fmt"

// UnmarshalRequest parses data as a request.
func UnmarshalRequest(data []byte) (*Request, error) {
	return NewParser(data).ParseRequest()
}

// Validate checks that data is a well-formed request without returning it.
func Validate(data []byte) error {
	if _, err := UnmarshalRequest(data); err != nil {
		return fmt.Errorf("httpreq: %w", err)
	}
	return nil
}
