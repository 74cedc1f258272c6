package mappers

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// stringsToJSON encodes a string list. Nil and empty lists encode as [].
func stringsToJSON(values []string) datatypes.JSON {
	if len(values) == 0 {
		return datatypes.JSON("[]")
	}
	data, _ := json.Marshal(values)
	return datatypes.JSON(data)
}

func stringsFromJSON(data datatypes.JSON) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func rawToJSON(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}

func jsonToRaw(data datatypes.JSON) json.RawMessage {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.RawMessage(data)
}

func nonZero(id uint) *uint {
	if id == 0 {
		return nil
	}
	return &id
}

func orZero(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}
