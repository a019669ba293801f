package opt_test

import (
	"errors"
	"testing"

	// Packages
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
	assert "github.com/stretchr/testify/assert"
)

func TestApplyEmpty(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply()
	assert.NoError(err)
	assert.NotNil(opts)
	assert.False(opts.Has("missing"))
}

func TestStringOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.WithString("key", "value1", "value2"))
	assert.NoError(err)
	assert.Equal("value1", opts.GetString("key"))
	query := opts.Query("key")
	assert.Equal([]string{"value1", "value2"}, query["key"])
}

func TestUintOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.WithUint(opt.LimitKey, 10))
	assert.NoError(err)
	assert.Equal(uint(10), opts.GetUint(opt.LimitKey))
	assert.Equal("10", opts.Query(opt.LimitKey).Get(opt.LimitKey))
}

func TestBoolOptions(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(opt.WithBool("flag", false))
	assert.NoError(err)
	// GetBool reports presence, so an explicit false is still present
	assert.True(opts.GetBool("flag"))
	assert.Equal("false", opts.Query("flag").Get("flag"))
}

func TestQuerySelectsKeys(t *testing.T) {
	assert := assert.New(t)
	opts, err := opt.Apply(
		opt.WithString(opt.QueryKey, "hello"),
		opt.WithUint(opt.PageKey, 2),
		opt.WithString(opt.OrderByKey, "name"),
	)
	assert.NoError(err)

	// Only the requested keys appear in the query
	query := opts.Query(opt.QueryKey, opt.PageKey)
	assert.Equal("hello", query.Get(opt.QueryKey))
	assert.Equal("2", query.Get(opt.PageKey))
	assert.Empty(query.Get(opt.OrderByKey))
}

func TestErrorOption(t *testing.T) {
	assert := assert.New(t)
	bad := errors.New("bad option")
	_, err := opt.Apply(opt.WithString("key", "value"), opt.Error(bad))
	assert.ErrorIs(err, bad)
}

func TestWithOpts(t *testing.T) {
	assert := assert.New(t)
	combined := opt.WithOpts(
		opt.WithString(opt.QueryKey, "hello"),
		opt.WithUint(opt.PageKey, 1),
	)
	opts, err := opt.Apply(combined)
	assert.NoError(err)
	assert.Equal("hello", opts.GetString(opt.QueryKey))
	assert.Equal(uint(1), opts.GetUint(opt.PageKey))
}
