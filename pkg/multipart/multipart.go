// Package multipart encodes structs as multipart/form-data request
// bodies. Struct fields are named by their json tags, and fields of
// type File are written as file parts rather than form values.
package multipart

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"reflect"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// File is a file attachment. The Path provides the filename reported
// to the remote endpoint and Body provides the content.
type File struct {
	Path string
	Body io.Reader
}

// Encoder writes multipart/form-data to an underlying writer.
type Encoder struct {
	w *multipart.Writer
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewEncoder creates a new encoder which writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: multipart.NewWriter(w)}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ContentType returns the Content-Type header value for the encoded
// body, including the part boundary.
func (enc *Encoder) ContentType() string {
	return enc.w.FormDataContentType()
}

// Close finishes the encoded body by writing the trailing boundary.
func (enc *Encoder) Close() error {
	return enc.w.Close()
}

// Encode writes the fields of v, which should be a struct or pointer to
// struct. Fields are named by their json tag, fields tagged with
// omitempty are skipped when they hold the zero value, and File fields
// become file parts. Values which are not files or scalars are
// JSON-encoded into a single form value.
func (enc *Encoder) Encode(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("multipart: expected struct, got %T", v)
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		// Anonymous embedded structs are flattened
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := enc.Encode(rv.Field(i).Interface()); err != nil {
				return err
			}
			continue
		}

		name, omitempty := parseTag(field)
		if name == "-" {
			continue
		}
		value := rv.Field(i)
		if omitempty && value.IsZero() {
			continue
		}

		if err := enc.encodeField(name, value); err != nil {
			return err
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (enc *Encoder) encodeField(name string, value reflect.Value) error {
	// Dereference pointers, skipping nil values
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	// File parts
	if file, ok := value.Interface().(File); ok {
		if file.Body == nil {
			return nil
		}
		part, err := enc.w.CreateFormFile(name, filepath.Base(file.Path))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Body); err != nil {
			return err
		}
		return nil
	}

	// Form values
	switch value.Kind() {
	case reflect.String:
		return enc.w.WriteField(name, value.String())
	case reflect.Bool:
		return enc.w.WriteField(name, fmt.Sprint(value.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return enc.w.WriteField(name, fmt.Sprint(value.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return enc.w.WriteField(name, fmt.Sprint(value.Uint()))
	case reflect.Float32, reflect.Float64:
		return enc.w.WriteField(name, fmt.Sprint(value.Float()))
	default:
		// Structs, maps and slices are sent as a JSON-encoded value
		data, err := json.Marshal(value.Interface())
		if err != nil {
			return err
		}
		return enc.w.WriteField(name, string(data))
	}
}

func parseTag(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, false
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if name == "" {
		name = field.Name
	}
	omitempty := false
	for _, part := range parts[1:] {
		if part == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty
}
