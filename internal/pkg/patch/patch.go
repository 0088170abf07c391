package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Apply overwrites *dst with *src when src is set.
func Apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ApplyMapped is Apply with a conversion that may fail.
func ApplyMapped[S, T any](dst *T, src *S, convert func(S) (T, error)) error {
	if src == nil {
		return nil
	}
	v, err := convert(*src)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
