package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"

	// Packages
	attribute "go.opentelemetry.io/otel/attribute"
	codes "go.opentelemetry.io/otel/codes"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// startSpan starts a span and returns a function which records any error
// and ends the span.
func startSpan(tracer trace.Tracer, ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}
}

// traceRequest writes the outgoing request to the trace writer.
func (c *Client) traceRequest(req *http.Request) {
	if c.trace == nil {
		return
	}
	if c.verbose {
		if dump, err := httputil.DumpRequestOut(req, true); err == nil {
			c.trace.Write(dump)
			fmt.Fprintln(c.trace)
			return
		}
	}
	fmt.Fprintf(c.trace, "%s %s\n", req.Method, req.URL)
}

// traceResponse writes the received response to the trace writer.
func (c *Client) traceResponse(resp *http.Response) {
	if c.trace == nil {
		return
	}
	if c.verbose {
		if dump, err := httputil.DumpResponse(resp, true); err == nil {
			c.trace.Write(dump)
			fmt.Fprintln(c.trace)
			return
		}
	}
	fmt.Fprintf(c.trace, "%s %s\n", resp.Proto, resp.Status)
}
