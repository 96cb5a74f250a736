package entitycache

// Wrapper is implemented by every value the layer hands out in place of a
// foreign value. Unwrap returns the original the wrapper forwards to.
type Wrapper interface {
	IsWrapped() bool
	Unwrap() any
}

// IsWrapped reports whether v was produced by the layer.
func IsWrapped(v any) bool {
	w, ok := v.(Wrapper)
	return ok && w.IsWrapped()
}

// Unwrap returns the original behind v, or v itself when v is not wrapped.
func Unwrap(v any) any {
	if w, ok := v.(Wrapper); ok && w.IsWrapped() {
		return w.Unwrap()
	}
	return v
}

// UnwrapAs is Unwrap for typed call sites. It returns v unchanged when the
// original does not implement T.
func UnwrapAs[T any](v T) T {
	if original, ok := Unwrap(v).(T); ok {
		return original
	}
	return v
}
