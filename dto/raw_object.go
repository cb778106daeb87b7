package dto

import (
	"encoding/json"
	"strings"
)

// RawObject wraps a loosely-typed ActivityPub document. Remote posts arrive
// with wildly varying shapes; accessors here replace scattered type asserts.
type RawObject struct {
	data map[string]any
}

func LoadRawObject(jsonBytes []byte) (*RawObject, error) {
	var data map[string]any
	if err := json.Unmarshal(jsonBytes, &data); err != nil {
		return nil, err
	}
	return &RawObject{data}, nil
}

func NewRawObject(data map[string]any) *RawObject {
	return &RawObject{data}
}

func (r *RawObject) Data() map[string]any {
	return r.data
}

func (r *RawObject) Marshal() ([]byte, error) {
	return json.Marshal(r.data)
}

func (r *RawObject) get(key string) (any, bool) {
	keys := strings.Split(key, ".")
	var value any = r.data
	for _, k := range keys {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok = obj[k]
		if !ok {
			return nil, false
		}
	}
	return value, true
}

func (r *RawObject) Has(key string) bool {
	_, ok := r.get(key)
	return ok
}

func (r *RawObject) GetObject(key string) (*RawObject, bool) {
	value, ok := r.get(key)
	if !ok {
		return nil, false
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}
	return &RawObject{obj}, true
}

func (r *RawObject) GetString(key string) (string, bool) {
	value, ok := r.get(key)
	if !ok {
		return "", false
	}
	str, ok := value.(string)
	return str, ok
}

func (r *RawObject) MustGetString(key string) string {
	str, _ := r.GetString(key)
	return str
}

func (r *RawObject) GetList(key string) ([]any, bool) {
	value, ok := r.get(key)
	if !ok {
		return nil, false
	}
	list, ok := value.([]any)
	return list, ok
}

func (r *RawObject) Set(key string, value any) {
	r.data[key] = value
}
