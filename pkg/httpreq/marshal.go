package httpreq

import (
	"fmt"
	"sync"
)

// bufPool pools []byte slices for the encoder fast path.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 1024)
		return &b
	},
}

// Marshal returns the request notation of v.
//
// v must be a *Request or implement Marshaler. Parsing the output again
// yields the same method, uri, version, ordered headers and body, except
// that header values come back with leading and trailing spaces dropped
// and inner runs of spaces collapsed to one; a value of only spaces comes
// back as "".
//
// Marshal uses a sync.Pool buffer internally.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("httpreq: Marshal(nil)")
	}

	if m, ok := v.(Marshaler); ok {
		return m.MarshalNotation()
	}

	req, ok := v.(*Request)
	if !ok {
		return nil, fmt.Errorf("httpreq: Marshal unsupported type %T (expected *Request)", v)
	}

	bp := bufPool.Get().(*[]byte)
	buf, err := appendRequest((*bp)[:0], req)
	if err != nil {
		bufPool.Put(bp)
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	*bp = buf
	bufPool.Put(bp)
	return result, nil
}

// MarshalString is Marshal for a *Request, returning a string.
func MarshalString(req *Request) (string, error) {
	data, err := Marshal(req)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
