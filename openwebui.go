/*
openwebui implements an API client for the Open WebUI backend
https://docs.openwebui.com/

The client wraps the transport core from pkg/client and provides one
typed method per remote operation, grouped into one file per API
router (auths, users, chats, models, and so on). Each method performs
a single request; errors from the endpoint are returned unchanged and
can be tested against the error kinds with errors.Is:

	owui, err := openwebui.New("http://localhost:3000/api")
	if err != nil { ... }
	user, err := owui.SignIn(ctx, "admin@example.com", "password")
	if errors.Is(err, openwebui.ErrAuthentication) { ... }
*/
package openwebui

import (
	"time"

	// Packages
	client "github.com/mutablelogic/go-openwebui/pkg/client"
	modelcache "github.com/mutablelogic/go-openwebui/pkg/modelcache"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	*modelcache.ModelCache
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// modelCacheTTL is how long workspace model lookups are cached by
	// the workflow helpers. The typed model methods always hit the
	// endpoint.
	modelCacheTTL = time.Minute
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client for the given endpoint, which should include
// the API base path, e.g. "http://localhost:3000/api". Authenticate
// with an API key by passing client.OptReqToken, or by calling SignIn.
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	c, err := client.New(append(opts, client.OptEndpoint(endpoint))...)
	if err != nil {
		return nil, err
	}
	return &Client{c, modelcache.NewModelCache(modelCacheTTL, 40)}, nil
}
