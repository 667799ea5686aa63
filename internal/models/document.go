package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"

	"gorm.io/datatypes"
)

// IDKey - ключ идентификатора в JSON документе
const IDKey = "_id"

var errNotAnObject = errors.New("document must be a JSON object")

// decodeDocument разбирает JSON объект. Числа остаются json.Number
// и сохраняются в точности как пришли.
func decodeDocument(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errNotAnObject
	}
	return raw, nil
}

// splitDocument переносит строковые значения ключей-колонок в колонки.
// Все остальное, включая ключи-колонки с нестроковыми значениями, остается
// в произвольных полях. Ключи из drop отбрасываются.
func splitDocument(raw map[string]any, columns map[string]**string, drop ...string) datatypes.JSONMap {
	for _, key := range drop {
		delete(raw, key)
	}

	fields := datatypes.JSONMap{}
	for key, value := range raw {
		if dst, ok := columns[key]; ok {
			if s, isString := value.(string); isString {
				*dst = &s
				continue
			}
		}
		fields[key] = value
	}
	return fields
}

// mergeDocument собирает плоский документ: произвольные поля,
// затем заполненные колонки, затем идентификатор.
func mergeDocument(id string, fields datatypes.JSONMap, columns map[string]*string) map[string]any {
	out := make(map[string]any, len(fields)+len(columns)+1)
	maps.Copy(out, fields)
	for key, value := range columns {
		if value != nil {
			out[key] = *value
		}
	}
	out[IDKey] = id
	return out
}
