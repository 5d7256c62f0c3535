package httpreq

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"

	"github.com/indigo-web/utils/strcomp"
)

// EmitOptions configures EmitGo.
type EmitOptions struct {
	// Package, when set, makes EmitGo produce a complete file with a package
	// clause and imports. Otherwise only the function declaration is emitted.
	Package string

	// Func is the name of the generated function. Defaults to "NewRequest".
	Func string

	// BuilderOnly rejects requests that carry a body with ErrBodyNotAllowed
	// and always passes a nil body.
	BuilderOnly bool
}

var emitTemplate = template.Must(template.New("request").Parse(`
{{- if .Package}}package {{.Package}}

import (
	"context"
	"net/http"
{{- if .Body}}
	"strings"
{{- end}}
)

{{end -}}
func {{.Func}}(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, {{.Method}}, {{.URI}}, {{if .Body}}strings.NewReader({{.Body}}){{else}}nil{{end}})
	if err != nil {
		return nil, err
	}
{{- if .Proto}}
	req.Proto, req.ProtoMajor, req.ProtoMinor = {{.Proto}}, {{.Major}}, {{.Minor}}
{{- end}}
{{- if .Host}}
	req.Host = {{.Host}}
{{- end}}
{{- range .Headers}}
	req.Header.Add({{.Name}}, {{.Value}})
{{- end}}
	return req, nil
}
`))

type emitData struct {
	Package      string
	Func         string
	Method       string
	URI          string
	Body         string
	Proto        string
	Major, Minor int
	Host         string
	Headers      []Header
}

// EmitGo renders Go source for a function that builds the same
// *net/http.Request as r.HTTPRequest would. All literals are quoted with
// strconv.Quote and the result is gofmt-ed.
func EmitGo(r *Request, opts EmitOptions) ([]byte, error) {
	if r.Method == "" || r.URI == "" {
		return nil, fmt.Errorf("httpreq: EmitGo: method and uri are required")
	}
	if opts.BuilderOnly && len(r.Body) > 0 {
		return nil, fmt.Errorf("httpreq: EmitGo: %w in builder-only mode", ErrBodyNotAllowed)
	}

	v, err := r.version()
	if err != nil {
		return nil, err
	}

	data := emitData{
		Package: opts.Package,
		Func:    opts.Func,
		Method:  strconv.Quote(r.Method),
		URI:     strconv.Quote(r.URI),
	}
	if data.Func == "" {
		data.Func = "NewRequest"
	}
	if len(r.Body) > 0 {
		data.Body = strconv.Quote(string(r.Body))
	}
	if v != Unknown {
		data.Proto = strconv.Quote(v.String())
		data.Major, data.Minor = v.Numbers()
	}
	for i, h := range r.Headers {
		if h.Name == "" {
			return nil, fmt.Errorf("httpreq: EmitGo: header %d: %w", i, ErrMissingHeaderName)
		}
		if strcomp.EqualFold(h.Name, "Host") {
			data.Host = strconv.Quote(h.Value)
			continue
		}
		data.Headers = append(data.Headers, Header{
			Name:  strconv.Quote(h.Name),
			Value: strconv.Quote(h.Value),
		})
	}

	var buf bytes.Buffer
	if err := emitTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("httpreq: EmitGo: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("httpreq: EmitGo: %w", err)
	}
	return src, nil
}
