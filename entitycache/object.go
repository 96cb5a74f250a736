package entitycache

import (
	"reflect"

	"go.trai.ch/zerr"
)

// Object is the pass-through decorator for foreign values no registration
// claims. It exposes the original's exported fields, map entries and methods
// by name and wraps everything it hands back.
type Object struct {
	layer    *Layer
	original any
	value    reflect.Value
}

func newObject(l *Layer, v any) *Object {
	return &Object{layer: l, original: v, value: reflect.ValueOf(v)}
}

// IsWrapped implements Wrapper.
func (o *Object) IsWrapped() bool { return true }

// Unwrap implements Wrapper.
func (o *Object) Unwrap() any { return o.original }

// Get reads the member called name: an exported field, a map entry or a
// method without arguments, in that order.
func (o *Object) Get(name string) (any, error) {
	if field, ok := o.field(name); ok {
		return o.layer.Wrap(field.Interface()), nil
	}
	if entry, ok := o.entry(name); ok {
		return o.layer.Wrap(entry.Interface()), nil
	}
	if method := o.value.MethodByName(name); method.IsValid() && method.Type().NumIn() == 0 {
		return collect(o.layer, method.Call(nil))
	}
	return nil, o.unknown(name)
}

// Call invokes the method called name with args. Results are wrapped; a
// trailing error result is returned as the error. Methods with several other
// results return them as []any.
func (o *Object) Call(name string, args ...any) (any, error) {
	method := o.value.MethodByName(name)
	if !method.IsValid() {
		return nil, o.unknown(name)
	}

	in, err := arguments(method.Type(), args)
	if err != nil {
		return nil, zerr.With(err, "member", name)
	}
	return collect(o.layer, method.Call(in))
}

// Method returns the method called name as a wrapped func value.
func (o *Object) Method(name string) (any, error) {
	method := o.value.MethodByName(name)
	if !method.IsValid() {
		return nil, o.unknown(name)
	}
	return o.layer.Wrap(method.Interface()), nil
}

func (o *Object) field(name string) (reflect.Value, bool) {
	v := o.value
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	sf, ok := v.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, false
	}
	return v.FieldByIndex(sf.Index), true
}

func (o *Object) entry(name string) (reflect.Value, bool) {
	v := o.value
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return reflect.Value{}, false
	}
	entry := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
	return entry, entry.IsValid()
}

func (o *Object) unknown(name string) error {
	return zerr.With(zerr.With(zerr.Wrap(ErrUnknownMember, "object"), "member", name), "type", o.value.Type().String())
}

// arguments converts args to the parameter types of a method.
func arguments(mt reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := mt.NumIn()
	if mt.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, argumentCount(mt.NumIn(), len(args))
		}
	} else if len(args) != fixed {
		return nil, argumentCount(fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var param reflect.Type
		if i < fixed {
			param = mt.In(i)
		} else {
			param = mt.In(mt.NumIn() - 1).Elem()
		}
		value, ok := argument(param, arg)
		if !ok {
			return nil, zerr.With(zerr.With(zerr.Wrap(ErrArgumentType, "object"), "index", i), "want", param.String())
		}
		in[i] = value
	}
	return in, nil
}

func argument(param reflect.Type, arg any) (reflect.Value, bool) {
	if arg == nil {
		if nillable(param.Kind()) {
			return reflect.Zero(param), true
		}
		return reflect.Value{}, false
	}

	for _, candidate := range []any{arg, Unwrap(arg)} {
		value := reflect.ValueOf(candidate)
		if value.Type().AssignableTo(param) {
			return value, true
		}
		if scalar(value.Kind()) && scalar(param.Kind()) && value.Type().ConvertibleTo(param) &&
			(value.Kind() == reflect.String) == (param.Kind() == reflect.String) {
			return value.Convert(param), true
		}
	}
	return reflect.Value{}, false
}

func argumentCount(want, got int) error {
	return zerr.With(zerr.With(zerr.Wrap(ErrArgumentCount, "object"), "want", want), "got", got)
}

// collect turns method results into a single wrapped value and an error.
func collect(l *Layer, out []reflect.Value) (any, error) {
	if n := len(out); n > 0 && out[n-1].Type() == reflect.TypeFor[error]() {
		if !out[n-1].IsNil() {
			return nil, out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return l.Wrap(out[0].Interface()), nil
	default:
		results := make([]any, len(out))
		for i, result := range out {
			results[i] = l.Wrap(result.Interface())
		}
		return results, nil
	}
}
