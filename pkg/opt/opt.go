package opt

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which collects optional request parameters
type Opt func(*opts) error

// set of options
type opts struct {
	url.Values
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Keys for optional request parameters
const (
	QueryKey      = "query"
	TextKey       = "text"
	OrderByKey    = "order_by"
	DirectionKey  = "direction"
	PageKey       = "page"
	LimitKey      = "limit"
	SkipKey       = "skip"
	IdKey         = "id"
	ContentKey    = "content"
	FolderKey     = "folder_id"
	SharedKey     = "share_to_all"
	ShareKey      = "share"
	ViewKey       = "view_option"
	TagKey        = "tag"
	AttachmentKey = "attachment"
	UserKey       = "user_id"
	PinnedKey     = "include_pinned"
	FoldersKey    = "include_folders"
	FilenameKey   = "filename"
	ProcessKey    = "process"
	BackgroundKey = "process_in_background"
	MetadataKey   = "metadata"
	DeleteFileKey = "delete_file"
	ContentsKey   = "delete_contents"
	PermissionKey = "permission"
	ValvesKey     = "include_valves"
	TypeKey       = "type"
	LanguageKey   = "language"
	ModelKey      = "model"
	VoiceKey      = "voice"
	ServerKey     = "urlIdx"
	EmailKey      = "email"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Apply returns a structure of applied options
func Apply(o ...Opt) (*opts, error) {
	opts := &opts{Values: make(url.Values)}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Query returns the values for the given keys, for use as request
// query parameters
func (o *opts) Query(keys ...string) url.Values {
	query := make(url.Values)
	for _, key := range keys {
		if value, ok := o.Values[key]; ok {
			query[key] = value
		}
	}
	return query
}

// GetString returns the trimmed value for key, or empty string if not set
func (o *opts) GetString(key string) string {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// GetBool returns true if key is present, false if absent
func (o *opts) GetBool(key string) bool {
	_, ok := o.Values[key]
	return ok
}

// GetUint returns the uint value for key, or 0 if not set or invalid
func (o *opts) GetUint(key string) uint {
	if values, ok := o.Values[key]; ok && len(values) > 0 {
		if v, err := strconv.ParseUint(strings.TrimSpace(values[0]), 10, 64); err == nil {
			return uint(v)
		}
	}
	return 0
}

// Has returns true if the key exists
func (o *opts) Has(key string) bool {
	_, ok := o.Values[key]
	return ok
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

// Error returns an option that always returns an error
func Error(err error) Opt {
	return func(o *opts) error {
		return err
	}
}

// WithOpts combines multiple options into a single option
func WithOpts(options ...Opt) Opt {
	return func(o *opts) error {
		for _, opt := range options {
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

func WithString(key string, value ...string) Opt {
	return func(o *opts) error {
		for _, v := range value {
			o.Values.Add(key, v)
		}
		return nil
	}
}

func WithUint(key string, value ...uint) Opt {
	return func(o *opts) error {
		for _, v := range value {
			o.Values.Add(key, fmt.Sprintf("%d", v))
		}
		return nil
	}
}

func WithBool(key string, value bool) Opt {
	return func(o *opts) error {
		o.Values.Set(key, strconv.FormatBool(value))
		return nil
	}
}
