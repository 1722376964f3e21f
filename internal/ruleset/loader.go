package ruleset

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/vagabond-spellcraft/internal/errors"
)

//go:embed deliveries.yaml
var defaultDeliveries []byte

type file struct {
	Deliveries []*Delivery `yaml:"deliveries"`
}

// Default returns the delivery table that ships with the service
func Default() (*Table, error) {
	t, err := Parse(defaultDeliveries)
	if err != nil {
		return nil, errors.Wrap(err, "embedded ruleset")
	}
	return t, nil
}

// LoadFile reads a YAML delivery table from path
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator supplied config path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read ruleset %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML delivery table
func Parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode ruleset")
	}

	if err := validate(f.Deliveries); err != nil {
		return nil, err
	}

	return NewTable(f.Deliveries), nil
}

func validate(deliveries []*Delivery) error {
	vb := errors.NewValidationBuilder()

	if len(deliveries) == 0 {
		vb.RequiredField("deliveries")
	}

	seen := make(map[string]bool, len(deliveries))
	for i, d := range deliveries {
		field := fmt.Sprintf("deliveries[%d]", i)
		if d == nil {
			vb.RequiredField(field)
			continue
		}
		if d.Key == "" {
			vb.RequiredField(field + ".key")
		} else if seen[d.Key] {
			vb.InvalidField(field+".key", "duplicate key "+d.Key)
		}
		seen[d.Key] = true

		if d.Name == "" {
			d.Name = d.Key
		}
		if d.Cost < 0 || d.IncreaseCost < 0 || d.Increment < 0 {
			vb.InvalidField(field, "costs and increment must not be negative")
		}
		if d.HasMagnitude() {
			errors.ValidateEnum(field+".base.kind", string(d.Base.Kind), magnitudeKinds, vb)
		}
	}

	return vb.Build()
}
