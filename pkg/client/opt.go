package client

import (
	"io"
	"net/url"
	"time"

	// Packages
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ClientOpt is a client option, which can be passed to New.
type ClientOpt func(*Client) error

// RequestOpt is a request option, which can be passed to Do and
// DoWithContext.
type RequestOpt func(*requestOpts) error

type requestOpts struct {
	path      []string
	abs       bool
	query     url.Values
	headers   map[string]string
	noTimeout bool
}

///////////////////////////////////////////////////////////////////////////////
// CLIENT OPTIONS

// OptEndpoint sets the endpoint for all requests, which should be an
// absolute http or https URL.
func OptEndpoint(endpoint string) ClientOpt {
	return func(c *Client) error {
		u, err := url.Parse(endpoint)
		if err != nil {
			return ErrBadParameter.Withf("endpoint: %v", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return ErrBadParameter.Withf("endpoint: %q", endpoint)
		}
		c.endpoint = u
		return nil
	}
}

// OptReqToken sets the credential attached to requests. Use SetToken
// and DeleteToken to change the credential after the client is created.
func OptReqToken(token Token) ClientOpt {
	return func(c *Client) error {
		c.token = token
		return nil
	}
}

// OptTimeout sets the timeout for each request. A zero duration means
// no timeout. The default is 30 seconds.
func OptTimeout(timeout time.Duration) ClientOpt {
	return func(c *Client) error {
		c.timeout = timeout
		return nil
	}
}

// OptUserAgent sets the User-Agent header for all requests.
func OptUserAgent(agent string) ClientOpt {
	return func(c *Client) error {
		c.ua = agent
		return nil
	}
}

// OptHeader sets a header on all requests.
func OptHeader(key, value string) ClientOpt {
	return func(c *Client) error {
		if c.headers == nil {
			c.headers = make(map[string]string)
		}
		c.headers[key] = value
		return nil
	}
}

// OptTrace writes a line for each request and response to w. When
// verbose is set, headers and bodies are written too.
func OptTrace(w io.Writer, verbose bool) ClientOpt {
	return func(c *Client) error {
		c.trace = w
		c.verbose = verbose
		return nil
	}
}

// OptTracer emits an OpenTelemetry span for each request.
func OptTracer(tracer trace.Tracer) ClientOpt {
	return func(c *Client) error {
		c.tracer = tracer
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST OPTIONS

// OptPath appends path segments to the endpoint path. Segments are
// split on "/" and each element is path-escaped, so that constant
// segments can be written as "v1/chats" while identifiers taken from
// arguments are escaped. A trailing slash on the final segment is
// preserved.
func OptPath(segments ...string) RequestOpt {
	return func(o *requestOpts) error {
		o.path = append(o.path, segments...)
		return nil
	}
}

// OptAbsPath is like OptPath, but the path is resolved from the server
// root rather than the endpoint path.
func OptAbsPath(segments ...string) RequestOpt {
	return func(o *requestOpts) error {
		o.path = append(o.path, segments...)
		o.abs = true
		return nil
	}
}

// OptQuery adds query parameters to the request.
func OptQuery(query url.Values) RequestOpt {
	return func(o *requestOpts) error {
		if o.query == nil {
			o.query = make(url.Values, len(query))
		}
		for key, values := range query {
			for _, value := range values {
				o.query.Add(key, value)
			}
		}
		return nil
	}
}

// OptReqHeader sets a header on the request.
func OptReqHeader(key, value string) RequestOpt {
	return func(o *requestOpts) error {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
		return nil
	}
}

// OptNoTimeout disables the client timeout for the request, for
// operations which can legitimately run for a long time.
func OptNoTimeout() RequestOpt {
	return func(o *requestOpts) error {
		o.noTimeout = true
		return nil
	}
}
