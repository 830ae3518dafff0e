package harvest

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// resourceKey derives the JSON envelope key for a resource type from its Go
// name: DayEntry wraps as "day_entry", InvoiceCategory as "invoice_category".
func resourceKey[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return strcase.ToSnake(t.Name())
}

// unwrap decodes a single enveloped resource, e.g. {"client": {...}}.
func unwrap[T any](data []byte) (T, error) {
	var zero T
	key := resourceKey[T]()
	var env map[string]json.RawMessage
	if err := json.Unmarshal(data, &env); err != nil {
		return zero, fmt.Errorf("decoding %s envelope: %w", key, err)
	}
	raw, ok := env[key]
	if !ok {
		return zero, &DecodeError{Resource: key}
	}
	return decodeResource[T](key, raw)
}

// unwrapList decodes an array of per-element envelopes, e.g.
// [{"day_entry": {...}}, ...]. An empty array yields an empty slice; any
// failing element fails the whole decode.
func unwrapList[T any](data []byte) ([]T, error) {
	key := resourceKey[T]()
	var envs []map[string]json.RawMessage
	if err := json.Unmarshal(data, &envs); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", key, err)
	}
	out := make([]T, 0, len(envs))
	for _, env := range envs {
		raw, ok := env[key]
		if !ok {
			return nil, &DecodeError{Resource: key}
		}
		v, err := decodeResource[T](key, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeResource decodes one bare resource object, enforcing the fields
// tagged `harvest:"required"` before the typed unmarshal. key is the
// envelope key, used in error reporting.
func decodeResource[T any](key string, raw json.RawMessage) (T, error) {
	var v T
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return v, fmt.Errorf("decoding %s: %w", key, err)
	}

	t := reflect.TypeOf(v)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Tag.Get("harvest") != "required" {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		fv, ok := fields[name]
		if !ok || string(fv) == "null" {
			return v, &DecodeError{Resource: key, Field: name, Expected: f.Type.String()}
		}
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		var ute *json.UnmarshalTypeError
		if errors.As(err, &ute) {
			return v, &DecodeError{Resource: key, Field: ute.Field, Expected: ute.Type.String()}
		}
		return v, fmt.Errorf("decoding %s: %w", key, err)
	}
	return v, nil
}

// wrap builds the single-key write body the service expects,
// e.g. {"project": {...}}.
func wrap(key string, v any) ([]byte, error) {
	body, err := json.Marshal(map[string]any{key: v})
	if err != nil {
		return nil, fmt.Errorf("encoding %s body: %w", key, err)
	}
	return body, nil
}

// idRef is the {"id": N} payload used when attaching an existing record,
// as in assigning a user or task to a project.
type idRef struct {
	ID int64 `json:"id"`
}

// nameRef is the {"name": S} payload used by add_with_create_new_task.
type nameRef struct {
	Name string `json:"name"`
}
