package httpmsg

const (
	HeaderContentType = "Content-Type"

	ContentTypeText        = "text/plain"
	ContentTypeOctetStream = "application/octet-stream"
)

// Request is what the host delivers for one invocation. The program only reads it.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    []byte
}

// HasBody reports whether the request carries a non-empty body.
func (r Request) HasBody() bool {
	return len(r.Body) > 0
}

// Response is built fresh for every request and handed back to the host.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// Empty returns a response with the given status, no headers and no body.
func Empty(status int) Response {
	return Response{StatusCode: status}
}

// Text returns a response whose body is the UTF-8 encoding of body.
func Text(status int, contentType, body string) Response {
	return Bytes(status, contentType, []byte(body))
}

// Bytes returns a response carrying body verbatim.
func Bytes(status int, contentType string, body []byte) Response {
	return Response{
		StatusCode: status,
		Headers:    map[string]string{HeaderContentType: contentType},
		Body:       body,
	}
}

// Header returns the value of the named response header, or "" if unset.
func (r Response) Header(name string) string {
	return r.Headers[name]
}
