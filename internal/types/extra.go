package types

import (
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

var knownKeysCache sync.Map // reflect.Type -> map[string]struct{}

// jsonKeys returns the set of JSON object keys produced by the exported fields of t
func jsonKeys(t reflect.Type) map[string]struct{} {
	if cached, ok := knownKeysCache.Load(t); ok {
		return cached.(map[string]struct{})
	}
	keys := make(map[string]struct{}, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		keys[name] = struct{}{}
	}
	knownKeysCache.Store(t, keys)
	return keys
}

// marshalWithExtra encodes v and adds every extra key that does not collide with a field of v
func marshalWithExtra(v any, extra map[string]string) ([]byte, error) {
	base, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	known := jsonKeys(reflect.TypeOf(v))
	for key, value := range extra {
		if _, isField := known[key]; isField {
			continue
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		fields[key] = raw
	}
	return json.Marshal(fields)
}

// collectExtra returns the string-valued keys of data that are not fields of v
func collectExtra(data []byte, v any) (map[string]string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	known := jsonKeys(reflect.TypeOf(v))

	var extra map[string]string
	for key, raw := range fields {
		if _, isField := known[key]; isField {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			// non-string unknown values are not carried
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[key] = s
	}
	return extra, nil
}
