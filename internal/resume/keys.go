package resume

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var documentType = reflect.TypeOf(types.ResumeDocument{})

// pruneUnknownKeys removes object keys that do not exactly match a JSON field
// name of the document types. encoding/json matches keys case-insensitively,
// so without this a stray "Summary" would override "summary".
func pruneUnknownKeys(data []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}

	prune(value, documentType)
	return json.Marshal(value)
}

// prune walks value alongside the Go type it will be decoded into
func prune(value any, t reflect.Type) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		object, ok := value.(map[string]any)
		if !ok {
			return
		}
		fields := jsonFields(t)
		for key, child := range object {
			fieldType, known := fields[key]
			if !known {
				delete(object, key)
				continue
			}
			prune(child, fieldType)
		}
	case reflect.Slice:
		items, ok := value.([]any)
		if !ok {
			return
		}
		for _, item := range items {
			prune(item, t.Elem())
		}
	}
}

// jsonFields maps exact JSON names to field types
func jsonFields(t reflect.Type) map[string]reflect.Type {
	fields := make(map[string]reflect.Type, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields[name] = f.Type
	}
	return fields
}
