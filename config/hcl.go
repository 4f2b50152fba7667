// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FromHcl returns a Decoder for HCL attributes.
//
// Only top level attributes are read. Nesting is expressed with object
// values, e.g.
//
//	a = 13
//	b = { b = 2 }
//
// Blocks and expressions referencing variables fail with a [DecodeError].
func FromHcl(r io.Reader) Decoder {
	return NewDecoder("hcl", r, decodeHcl)
}

func decodeHcl(b []byte) (map[string]any, error) {
	file, diags := hclparse.NewParser().ParseHCL(b, "config.hcl")
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	m := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := ctyToNative(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		m[name] = native
	}
	return m, nil
}

func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.Number:
		var i int
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return i, nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, err
		}
		return f, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		xs := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			x, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			xs = append(xs, x)
		}
		return xs, nil
	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, elem := it.Element()
			x, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k.AsString(), err)
			}
			m[k.AsString()] = x
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", ty.FriendlyName())
	}
}
