package patch

// Set assigns *v to *dst when v is present and reports whether it did.
func Set[T any](dst *T, v *T) bool {
	if v == nil {
		return false
	}
	*dst = *v
	return true
}

// SetPtr stores a copy of *v in *dst so the caller's value is never aliased.
func SetPtr[T any](dst **T, v *T) bool {
	if v == nil {
		return false
	}
	cp := *v
	*dst = &cp
	return true
}

// SetOrClear behaves like SetPtr, except that a present zero value clears *dst.
func SetOrClear[T comparable](dst **T, v *T) bool {
	if v == nil {
		return false
	}
	var zero T
	if *v == zero {
		*dst = nil
		return true
	}
	return SetPtr(dst, v)
}

// NonZero copies *v, or returns nil when v is absent or holds the zero value.
func NonZero[T comparable](v *T) *T {
	var zero T
	if v == nil || *v == zero {
		return nil
	}
	cp := *v
	return &cp
}
