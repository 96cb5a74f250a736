package entitycache

import (
	"reflect"

	"github.com/goliatone/go-cache-layer/foreign"
)

// Wrap returns the layer's stand-in for v:
//
//   - nil values, errors, scalars and plain data structs are returned as is
//   - values that are already wrapped are returned as is
//   - slices, arrays and plain maps are copied with every element wrapped
//   - funcs are replaced by a func of the same type that wraps its arguments
//     and results
//   - everything else is decorated by the first matching registration, or by
//     a pass-through decorator when none matches
//
// Method values carry their receiver, so a wrapped method keeps calling the
// original it was taken from.
func (l *Layer) Wrap(v any) any {
	if v == nil || IsWrapped(v) {
		return v
	}
	if _, ok := v.(error); ok {
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		return l.wrapSequence(rv)
	case reflect.Array:
		return l.wrapSequence(rv)
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		if rv.NumMethod() > 0 {
			return l.wrapRecord(v, true)
		}
		return l.wrapMap(rv)
	case reflect.Func:
		if rv.IsNil() {
			return v
		}
		return l.wrapFunc(rv)
	case reflect.Pointer:
		if rv.IsNil() {
			return v
		}
		return l.wrapRecord(v, true)
	case reflect.Struct:
		return l.wrapRecord(v, false)
	default:
		return v
	}
}

// wrapRecord decorates a record-like value. Struct values only get the
// reflective Object fallback when they are pointers: a struct passed by value
// is plain data that never crosses back into the foreign runtime.
func (l *Layer) wrapRecord(v any, reference bool) any {
	if reg, ok := l.registry.Resolve(v); ok {
		return reg.New(l, v)
	}
	if w := l.passThrough(v); w != nil {
		return w
	}
	if reference {
		return newObject(l, v)
	}
	return v
}

// wrapAs wraps v and keeps the result only when it still satisfies T.
func wrapAs[T any](l *Layer, v T) T {
	if w, ok := l.Wrap(v).(T); ok {
		return w
	}
	return v
}

// wrapValue wraps a reflected value, keeping its static type. Values whose
// wrapper is not assignable to that type are returned unchanged.
func (l *Layer) wrapValue(rv reflect.Value) reflect.Value {
	if !rv.IsValid() || !rv.CanInterface() {
		return rv
	}
	if nillable(rv.Kind()) && rv.IsNil() {
		return rv
	}

	wrapped := l.Wrap(rv.Interface())
	if wrapped == nil {
		return rv
	}
	wv := reflect.ValueOf(wrapped)
	if !wv.Type().AssignableTo(rv.Type()) {
		return rv
	}
	out := reflect.New(rv.Type()).Elem()
	out.Set(wv)
	return out
}

// wrapSequence returns a copy of a slice or array with every element wrapped.
// The copy keeps the element type when all wrapped elements still fit it and
// degrades to []any otherwise.
func (l *Layer) wrapSequence(rv reflect.Value) any {
	if scalar(rv.Type().Elem().Kind()) {
		return rv.Interface()
	}

	n := rv.Len()
	wrapped := make([]any, n)
	fits := true
	elem := rv.Type().Elem()
	for i := 0; i < n; i++ {
		wrapped[i] = l.Wrap(rv.Index(i).Interface())
		if wrapped[i] != nil && !reflect.TypeOf(wrapped[i]).AssignableTo(elem) {
			fits = false
		}
	}
	if !fits {
		return wrapped
	}

	var out reflect.Value
	if rv.Kind() == reflect.Array {
		out = reflect.New(rv.Type()).Elem()
	} else {
		out = reflect.MakeSlice(rv.Type(), n, n)
	}
	for i, w := range wrapped {
		if w != nil {
			out.Index(i).Set(reflect.ValueOf(w))
		}
	}
	return out.Interface()
}

// wrapMap returns a copy of a map with every value wrapped, using the same
// fallback rule as wrapSequence.
func (l *Layer) wrapMap(rv reflect.Value) any {
	if scalar(rv.Type().Elem().Kind()) {
		return rv.Interface()
	}

	elem := rv.Type().Elem()
	wrapped := make(map[any]any, rv.Len())
	fits := true
	iter := rv.MapRange()
	for iter.Next() {
		w := l.Wrap(iter.Value().Interface())
		if w != nil && !reflect.TypeOf(w).AssignableTo(elem) {
			fits = false
		}
		wrapped[iter.Key().Interface()] = w
	}

	if !fits {
		if rv.Type().Key().Kind() == reflect.String {
			out := make(map[string]any, len(wrapped))
			for k, w := range wrapped {
				out[reflect.ValueOf(k).String()] = w
			}
			return out
		}
		return wrapped
	}

	out := reflect.MakeMapWithSize(rv.Type(), len(wrapped))
	for k, w := range wrapped {
		value := reflect.New(elem).Elem()
		if w != nil {
			value.Set(reflect.ValueOf(w))
		}
		out.SetMapIndex(reflect.ValueOf(k), value)
	}
	return out.Interface()
}

// wrapFunc returns a func of the same type as fn that wraps every argument
// before forwarding it and every result before returning it.
func (l *Layer) wrapFunc(fn reflect.Value) any {
	ft := fn.Type()
	return reflect.MakeFunc(ft, func(args []reflect.Value) []reflect.Value {
		in := make([]reflect.Value, len(args))
		for i, arg := range args {
			in[i] = l.wrapValue(arg)
		}

		var out []reflect.Value
		if ft.IsVariadic() {
			out = fn.CallSlice(in)
		} else {
			out = fn.Call(in)
		}

		for i, result := range out {
			out[i] = l.wrapValue(result)
		}
		return out
	}).Interface()
}

// passThrough returns the non-caching decorator of the known foreign
// capabilities, or nil when v has none.
func (l *Layer) passThrough(v any) Wrapper {
	switch typed := v.(type) {
	case foreign.World:
		return &worldProxy{layer: l, world: typed}
	case foreign.AfterEvents:
		return &afterEventsProxy{layer: l, events: typed}
	case foreign.Dimension:
		return &dimensionProxy{dimension: typed}
	default:
		return nil
	}
}

func nillable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return true
	default:
		return false
	}
}

func scalar(kind reflect.Kind) bool {
	switch kind {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
