package config

import (
	"fmt"
	"log"
	"strings"

	"go.starlark.net/starlark"
)

// ExecScript runs a Starlark config script and returns its globals as a
// generic document. Private names (leading underscore), functions and
// None are left out. predeclared values are visible to the script, frozen.
func ExecScript(name string, src []byte, predeclared map[string]interface{}) (map[string]interface{}, error) {
	thread := &starlark.Thread{
		Name:  name,
		Print: func(_ *starlark.Thread, msg string) { log.Printf("[config] %s: %s", name, msg) },
	}

	env := starlark.StringDict{}
	for k, v := range predeclared {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("predeclared %s: %w", k, err)
		}
		env[k] = val
	}
	env.Freeze()

	globals, err := starlark.ExecFile(thread, name, src, env)
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})
	for k, v := range globals {
		if strings.HasPrefix(k, "_") {
			continue
		}
		if val := FromStarlarkValue(v); val != nil {
			out[k] = val
		}
	}
	return out, nil
}

// FromStarlarkValue converts a Starlark value to its plain Go equivalent.
// Unsupported values convert to nil.
func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case *starlark.List:
		out := make([]interface{}, val.Len())
		for i := range out {
			out[i] = FromStarlarkValue(val.Index(i))
		}
		return out
	case starlark.Tuple:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = FromStarlarkValue(e)
		}
		return out
	case *starlark.Dict:
		out := make(map[string]interface{}, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				out[item[0].String()] = FromStarlarkValue(item[1])
				continue
			}
			out[string(key)] = FromStarlarkValue(item[1])
		}
		return out
	}
	return nil
}

// toStarlarkValue is the inverse of FromStarlarkValue for the scalar and
// container types a config document holds.
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	case []interface{}:
		elems := make([]starlark.Value, len(val))
		for i, e := range val {
			sv, err := toStarlarkValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = sv
		}
		return starlark.NewList(elems), nil
	case map[string]interface{}:
		d := starlark.NewDict(len(val))
		for k, e := range val {
			sv, err := toStarlarkValue(e)
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(starlark.String(k), sv); err != nil {
				return nil, err
			}
		}
		return d, nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}
