package translate

import (
	"context"
	"reflect"
	"strings"
)

// maxDepth bounds recursion into nested or self-referencing data.
const maxDepth = 64

type walker struct {
	ctx    context.Context
	t      *Translator
	opts   Options
	fields map[string]struct{}
	// all is true when no field restriction applies.
	all bool
}

func newWalker(ctx context.Context, t *Translator, opts Options) *walker {
	fields := make(map[string]struct{}, len(opts.Fields))
	for _, f := range opts.Fields {
		fields[f] = struct{}{}
	}
	return &walker{
		ctx:    ctx,
		t:      t,
		opts:   opts,
		fields: fields,
		all:    len(fields) == 0,
	}
}

func (w *walker) allowed(key string) bool {
	if w.all {
		return true
	}
	_, ok := w.fields[key]
	return ok
}

// walk returns a translated copy of v. allowed reports whether a string at this position may be translated.
func (w *walker) walk(v reflect.Value, allowed bool, depth int) reflect.Value {
	if !v.IsValid() || depth > maxDepth {
		return v
	}

	switch v.Kind() {
	case reflect.String:
		if !allowed {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.SetString(w.t.Translate(w.ctx, v.String(), w.opts))
		return out

	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(w.walk(v.Elem(), allowed, depth))
		return out

	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(w.walk(v.Elem(), allowed, depth+1))
		return out

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		keyed := v.Type().Key().Kind() == reflect.String
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			ok := w.all
			if keyed {
				ok = w.allowed(iter.Key().String())
			}
			out.SetMapIndex(iter.Key(), w.walk(iter.Value(), ok, depth+1))
		}
		return out

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(w.walk(v.Index(i), w.all, depth+1))
		}
		return out

	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(w.walk(v.Index(i), w.all, depth+1))
		}
		return out

	case reflect.Struct:
		typ := v.Type()
		out := reflect.New(typ).Elem()
		out.Set(v)
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			name := fieldName(field)
			if name == "-" {
				continue
			}
			out.Field(i).Set(w.walk(v.Field(i), w.allowed(name), depth+1))
		}
		return out

	default:
		return v
	}
}

// fieldName returns the json name of a struct field, falling back to the Go name.
func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return f.Name
	}
	return name
}
