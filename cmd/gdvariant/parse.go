package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/electricface/go-gdnative/gdnative"
	"golang.org/x/xerrors"
)

var errBadElement = xerrors.New("bad element")

// parseArg splits "type:value", a bare "nil" has no value.
func parseArg(arg string) (element, error) {
	typ, value, found := strings.Cut(arg, ":")
	if !found && typ != "nil" {
		return element{}, xerrors.Errorf("%q, want type:value: %w", arg, errBadElement)
	}
	return element{Type: typ, Value: value}, nil
}

func parseFloats(s string, n int) ([]float32, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, xerrors.Errorf("%q has %d components, want %d: %w", s, len(parts), n, errBadElement)
	}
	result := make([]float32, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, xerrors.Errorf("component %d of %q: %w", i, s, err)
		}
		result[i] = float32(f)
	}
	return result, nil
}

// newVariant allocates the variant described by e, the caller frees it.
func newVariant(e element) (gdnative.Variant, error) {
	switch strings.ToLower(e.Type) {
	case "nil":
		return gdnative.NewVariantNil()

	case "bool":
		b, err := strconv.ParseBool(e.Value)
		if err != nil {
			return gdnative.Variant{}, err
		}
		return gdnative.NewVariantBool(b)

	case "int":
		i, err := strconv.ParseInt(e.Value, 0, 64)
		if err != nil {
			return gdnative.Variant{}, err
		}
		return gdnative.NewVariantInt(i)

	case "real", "float":
		f, err := strconv.ParseFloat(e.Value, 64)
		if err != nil {
			return gdnative.Variant{}, err
		}
		return gdnative.NewVariantReal(f)

	case "vector2":
		c, err := parseFloats(e.Value, 2)
		if err != nil {
			return gdnative.Variant{}, err
		}
		return gdnative.NewVariantVector2(gdnative.Vector2{X: c[0], Y: c[1]})

	case "rect2":
		c, err := parseFloats(e.Value, 4)
		if err != nil {
			return gdnative.Variant{}, err
		}
		return gdnative.NewVariantRect2(gdnative.Rect2{X: c[0], Y: c[1], W: c[2], H: c[3]})

	case "vector3":
		c, err := parseFloats(e.Value, 3)
		if err != nil {
			return gdnative.Variant{}, err
		}
		return gdnative.NewVariantVector3(gdnative.Vector3{X: c[0], Y: c[1], Z: c[2]})

	case "plane":
		c, err := parseFloats(e.Value, 4)
		if err != nil {
			return gdnative.Variant{}, err
		}
		return gdnative.NewVariantPlane(gdnative.Plane{NormalX: c[0], NormalY: c[1], NormalZ: c[2], D: c[3]})

	case "quat":
		c, err := parseFloats(e.Value, 4)
		if err != nil {
			return gdnative.Variant{}, err
		}
		return gdnative.NewVariantQuat(gdnative.Quat{X: c[0], Y: c[1], Z: c[2], W: c[3]})

	case "color":
		c, err := parseFloats(e.Value, 4)
		if err != nil {
			return gdnative.Variant{}, err
		}
		return gdnative.NewVariantColor(gdnative.Color{R: c[0], G: c[1], B: c[2], A: c[3]})

	default:
		return gdnative.Variant{}, xerrors.Errorf("unsupported type %q: %w", e.Type, errBadElement)
	}
}

// formatVariant renders the value of an initialized variant.
func formatVariant(v gdnative.Variant) string {
	var val interface{}
	var err error
	switch v.Type() {
	case gdnative.VariantTypeNil:
		return "null"
	case gdnative.VariantTypeBool:
		val, err = v.AsBool()
	case gdnative.VariantTypeInt:
		val, err = v.AsInt()
	case gdnative.VariantTypeReal:
		val, err = v.AsReal()
	case gdnative.VariantTypeVector2:
		val, err = v.AsVector2()
	case gdnative.VariantTypeRect2:
		val, err = v.AsRect2()
	case gdnative.VariantTypeVector3:
		val, err = v.AsVector3()
	case gdnative.VariantTypePlane:
		val, err = v.AsPlane()
	case gdnative.VariantTypeQuat:
		val, err = v.AsQuat()
	case gdnative.VariantTypeColor:
		val, err = v.AsColor()
	default:
		return "?"
	}
	if err != nil {
		return err.Error()
	}
	return fmtValue(val)
}

func fmtValue(val interface{}) string {
	switch val.(type) {
	case float64, float32:
		return fmt.Sprintf("%g", val)
	case int64, bool:
		return fmt.Sprintf("%v", val)
	}
	return fmt.Sprintf("%+v", val)
}
