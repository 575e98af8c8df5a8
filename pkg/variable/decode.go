package variable

import (
	"fmt"
	"maps"

	"github.com/mitchellh/mapstructure"
)

// Decode builds a Context from loosely typed data such as a parsed YAML or
// JSON file. The built-in entities decode into User, Company, Order and
// Product; any other entity is kept as Values. Entities with a nil property
// map are treated as absent.
func Decode(raw map[string]map[string]any) (Context, error) {
	ctx := make(Context, len(raw))
	for name, props := range raw {
		if props == nil {
			continue
		}

		var (
			p   Provider
			err error
		)
		switch name {
		case "user":
			p, err = decodeEntity[User](props)
		case "company":
			p, err = decodeEntity[Company](props)
		case "order":
			p, err = decodeEntity[Order](props)
		case "product":
			p, err = decodeEntity[Product](props)
		default:
			p = Values(maps.Clone(props))
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidContext, name, err)
		}
		ctx[name] = p
	}
	return ctx, nil
}

func decodeEntity[T Provider](props map[string]any) (Provider, error) {
	var v T
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &v,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(props); err != nil {
		return nil, err
	}
	return v, nil
}
