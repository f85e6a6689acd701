package quick

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/LixenWraith/filelog"
	"github.com/pkg/errors"
)

// config applies configuration strings on top of base.
// Each argument should be in "key=value" format where key matches a Config toml tag.
// The function handles type conversion and validation for each field.
func config(base *filelog.Config, args ...string) (*filelog.Config, error) {
	cfg := *base
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, errors.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(&cfg, key, value); err != nil {
			return nil, errors.Wrap(err, "config error")
		}
	}
	return &cfg, nil
}

// parseKeyValue splits a configuration string into key and value parts.
// Input format must be "key=value"; the value may itself contain "=".
// Leading and trailing spaces are removed from both parts.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
		return "", "", errors.New("invalid format")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// setValue updates a Config field using reflection.
// Field matching is case-insensitive against the toml tags. Level fields must name
// a registered level.
func setValue(cfg *filelog.Config, key, value string) error {
	key = strings.ToLower(key)

	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tag := field.Tag.Get("toml"); tag != key {
			continue
		}
		f := v.Field(i)

		switch f.Kind() {
		case reflect.Int, reflect.Int64:
			val, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return errors.Errorf("invalid integer value for %s: %s", key, value)
			}
			f.SetInt(val)

		case reflect.String:
			if key == "level" || key == "console_level" {
				level, ok := filelog.DefaultRegistry().Lookup(value)
				if !ok {
					return errors.Errorf("invalid level: %s", value)
				}
				value = level.Name
			}
			f.SetString(value)

		case reflect.Bool:
			val, err := strconv.ParseBool(value)
			if err != nil {
				return errors.Errorf("invalid bool value for %s: %s", key, value)
			}
			f.SetBool(val)

		default:
			return errors.Errorf("unsupported config type for %s", key)
		}
		return nil
	}
	return errors.Errorf("unknown config key: %s", key)
}
