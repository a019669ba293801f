package openwebui

import (
	"encoding/json"

	// Packages
	opt "github.com/mutablelogic/go-openwebui/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithQuery filters list results by a search query.
func WithQuery(query string) opt.Opt {
	return opt.WithString(opt.QueryKey, query)
}

// WithOrderBy sets the field to order list results by, e.g. "name",
// "email", "created_at", "last_active_at".
func WithOrderBy(field string) opt.Opt {
	return opt.WithString(opt.OrderByKey, field)
}

// WithDirection sets the sort direction, "asc" or "desc".
func WithDirection(direction string) opt.Opt {
	return opt.WithString(opt.DirectionKey, direction)
}

// WithPage sets the page of list results to return. Pages start at 1.
func WithPage(page uint) opt.Opt {
	return opt.WithUint(opt.PageKey, page)
}

// WithLimit sets the maximum number of results to return.
func WithLimit(limit uint) opt.Opt {
	return opt.WithUint(opt.LimitKey, limit)
}

// WithSkip sets the number of results to skip.
func WithSkip(skip uint) opt.Opt {
	return opt.WithUint(opt.SkipKey, skip)
}

// WithFolder filters list results by folder ID.
func WithFolder(id string) opt.Opt {
	return opt.WithString(opt.FolderKey, id)
}

// WithContent includes item content in list results.
func WithContent(include bool) opt.Opt {
	return opt.WithBool(opt.ContentKey, include)
}

// WithShare filters groups by their share status.
func WithShare(share bool) opt.Opt {
	return opt.WithBool(opt.ShareKey, share)
}

// WithView selects a listing view, e.g. "created" or "shared".
func WithView(view string) opt.Opt {
	return opt.WithString(opt.ViewKey, view)
}

// WithTag filters list results by tag name.
func WithTag(tag string) opt.Opt {
	return opt.WithString(opt.TagKey, tag)
}

// WithPermission filters list results by access level, "read" or
// "write".
func WithPermission(permission string) opt.Opt {
	return opt.WithString(opt.PermissionKey, permission)
}

// WithIncludePinned includes pinned chats in chat listings.
func WithIncludePinned() opt.Opt {
	return opt.WithBool(opt.PinnedKey, true)
}

// WithIncludeFolders includes chats inside folders in chat listings.
func WithIncludeFolders() opt.Opt {
	return opt.WithBool(opt.FoldersKey, true)
}

// WithAttachment requests file content with a Content-Disposition of
// attachment.
func WithAttachment() opt.Opt {
	return opt.WithBool(opt.AttachmentKey, true)
}

// WithProcess controls whether content is extracted from an uploaded
// file.
func WithProcess(process bool) opt.Opt {
	return opt.WithBool(opt.ProcessKey, process)
}

// WithProcessInBackground controls whether content extraction happens
// asynchronously. When false, the upload waits for processing to
// complete.
func WithProcessInBackground(background bool) opt.Opt {
	return opt.WithBool(opt.BackgroundKey, background)
}

// WithMetadata attaches metadata to an uploaded file.
func WithMetadata(metadata map[string]any) opt.Opt {
	data, err := json.Marshal(metadata)
	if err != nil {
		return opt.Error(err)
	}
	return opt.WithString(opt.MetadataKey, string(data))
}

// WithDeleteFile also removes the underlying file when removing a
// file from a knowledge base.
func WithDeleteFile() opt.Opt {
	return opt.WithBool(opt.DeleteFileKey, true)
}

// WithDeleteContents controls whether the chats inside a folder are
// removed along with it.
func WithDeleteContents(del bool) opt.Opt {
	return opt.WithBool(opt.ContentsKey, del)
}

// WithIncludeValves includes valve settings when exporting functions.
func WithIncludeValves() opt.Opt {
	return opt.WithBool(opt.ValvesKey, true)
}

// WithType prefixes the client id with a type when registering an
// OAuth client.
func WithType(t string) opt.Opt {
	return opt.WithString(opt.TypeKey, t)
}

// WithLanguage sets the language code which guides an audio
// transcription, for example "en".
func WithLanguage(language string) opt.Opt {
	return opt.WithString(opt.LanguageKey, language)
}

// WithModel overrides the configured model for speech synthesis.
func WithModel(model string) opt.Opt {
	return opt.WithString(opt.ModelKey, model)
}

// WithVoice overrides the configured voice for speech synthesis.
func WithVoice(voice string) opt.Opt {
	return opt.WithString(opt.VoiceKey, voice)
}

// WithServerIndex selects the pipeline server an operation applies
// to, by its index in the server list.
func WithServerIndex(idx uint) opt.Opt {
	return opt.WithUint(opt.ServerKey, idx)
}
