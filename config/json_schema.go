package config

import (
	"errors"

	"github.com/invopop/jsonschema"
)

var ErrGeneratedSchemaIsNil = errors.New("generated JSON Schema is nil")

// JSONSchema describes config.yaml. Properties use the same keys viper reads.
func JSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:              "mapstructure",
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	schema := r.Reflect(&Config{})
	if schema == nil {
		return nil, ErrGeneratedSchemaIsNil
	}

	return schema.MarshalJSON()
}
