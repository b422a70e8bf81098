package grove

import "fmt"

// Value is a generic helper that resolves a member and asserts its type. It
// is the recommended way to retrieve values:
//
//	db, err := grove.Value[*Database](r, "database")
func Value[T any](r Resolver, name string) (T, error) {
	var zero T

	v, err := r.Get(name)
	if err != nil {
		return zero, err
	}

	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("member %q is %T, not %T", name, v, zero)
	}
	return out, nil
}
