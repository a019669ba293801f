/*
client implements the transport and authentication core for the Open WebUI
API. It owns the endpoint, the credential state, request construction and
response decoding, and maps remote failures onto a small set of error
kinds. All requests from the typed client pass through Do or
DoWithContext; there are no retries and no error recovery.
*/
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	// Packages
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the HTTP transport for the Open WebUI API. It is safe for
// concurrent use: the credential can be replaced while requests are in
// flight, and each request carries the credential which was attached
// when it was dispatched.
type Client struct {
	*http.Client

	endpoint *url.URL
	ua       string
	headers  map[string]string
	timeout  time.Duration

	trace   io.Writer
	verbose bool
	tracer  trace.Tracer

	mu    sync.RWMutex
	token Token
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "mutablelogic/go-openwebui"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given options. The OptEndpoint
// option is required.
func New(opts ...ClientOpt) (*Client, error) {
	c := &Client{
		Client:  new(http.Client),
		timeout: defaultTimeout,
		ua:      defaultUserAgent,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.endpoint == nil {
		return nil, ErrBadParameter.With("missing endpoint")
	}
	return c, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Endpoint returns the endpoint for the client.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Do performs a request and decodes the response into out.
// See DoWithContext.
func (c *Client) Do(in Payload, out any, opts ...RequestOpt) error {
	return c.DoWithContext(context.Background(), in, out, opts...)
}

// DoWithContext performs a single request described by the payload and
// decodes the response into out. When in is nil a GET request with no
// body is sent. The out parameter can be nil to discard the response,
// a pointer to a []byte for the raw response, a pointer to a string
// for the response text, an io.Writer to stream the response into, or
// a pointer to a value for a JSON response.
//
// A response status of 400 or above is returned as a StatusError, and
// a failure to obtain any response is returned as ErrConnectivity. A
// success response which cannot be decoded as requested is returned
// as ErrUnexpectedResponse.
func (c *Client) DoWithContext(ctx context.Context, in Payload, out any, opts ...RequestOpt) (err error) {
	// Apply request options
	var o requestOpts
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	// Method, body and content type from the payload
	method := http.MethodGet
	accept := ContentTypeJson
	mimetype := ""
	var body io.Reader
	if in != nil {
		method = in.Method()
		accept = in.Accept()
		if mimetype = in.Type(); mimetype != "" {
			body = in
		}
	}

	// Resolve the request URL
	u := c.requestUrl(&o)

	// Emit a span for the request
	if c.tracer != nil {
		var endSpan func(error)
		ctx, endSpan = startSpan(c.tracer, ctx, method+" "+u.Path,
			attribute.String("http.method", method),
			attribute.String("url.full", u.String()),
		)
		defer func() { endSpan(err) }()
	}

	// Apply the request timeout
	if c.timeout > 0 && !o.noTimeout {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// Assemble the request
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return ErrBadParameter.Withf("%v", err)
	}
	if mimetype != "" {
		req.Header.Set("Content-Type", mimetype)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if c.ua != "" {
		req.Header.Set("User-Agent", c.ua)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	for key, value := range o.headers {
		req.Header.Set(key, value)
	}

	// Attach the credential active at dispatch. Replacing the credential
	// on the client does not affect this request once sent.
	if token := c.Token(); !token.IsZero() {
		req.Header.Set("Authorization", token.String())
	}

	// Trace the request
	c.traceRequest(req)

	// Perform the request. A transport failure means no response was
	// received, which is distinct from the endpoint reporting an error.
	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	// Trace the response
	c.traceResponse(resp)

	// The endpoint reported a failure
	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		return newStatusError(resp.StatusCode, data)
	}

	// Decode the response
	return decodeResponse(resp, out)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// requestUrl resolves the endpoint, path segments and query parameters
// into the request URL.
func (c *Client) requestUrl(o *requestOpts) *url.URL {
	base := c.endpoint.Path
	if o.abs {
		base = ""
	}

	u := *c.endpoint
	escaped := joinPath(base, o.path)
	if unescaped, err := url.PathUnescape(escaped); err == nil {
		u.Path = unescaped
	} else {
		u.Path = escaped
	}
	u.RawPath = escaped
	u.RawQuery = ""
	if len(o.query) > 0 {
		u.RawQuery = o.query.Encode()
	}
	return &u
}

// joinPath joins a base path with request path segments. Each segment
// may contain slashes separating constant path elements, and each
// element is individually escaped. A trailing slash on the final
// segment is preserved, since the endpoint distinguishes collection
// paths from item paths.
func joinPath(base string, segments []string) string {
	var path strings.Builder
	path.WriteString(strings.TrimSuffix(base, "/"))
	trailing := false
	for _, segment := range segments {
		trailing = strings.HasSuffix(segment, "/")
		for _, elem := range strings.Split(segment, "/") {
			if elem == "" {
				continue
			}
			path.WriteString("/")
			path.WriteString(url.PathEscape(elem))
		}
	}
	if trailing || path.Len() == 0 {
		path.WriteString("/")
	}
	return path.String()
}

// decodeResponse decodes a success response into out.
func decodeResponse(resp *http.Response, out any) error {
	switch out := out.(type) {
	case nil:
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			return fmt.Errorf("%w: %w", ErrConnectivity, err)
		}
	case *[]byte:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConnectivity, err)
		}
		*out = data
	case *string:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConnectivity, err)
		}
		*out = string(data)
	case io.Writer:
		if _, err := io.Copy(out, resp.Body); err != nil {
			return fmt.Errorf("%w: %w", ErrConnectivity, err)
		}
	default:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConnectivity, err)
		}
		if err := json.Unmarshal(data, out); err != nil {
			return ErrUnexpectedResponse.Withf("decoding %q response: %v", resp.Header.Get("Content-Type"), err)
		}
	}
	return nil
}
