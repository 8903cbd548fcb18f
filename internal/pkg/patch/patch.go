package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Optional keeps the current nullable value unless the patch sets it.
// An explicitly empty string clears it.
func Optional(ptr *string, current *string) *string {
	if ptr == nil {
		return current
	}
	if *ptr == "" {
		return nil
	}
	v := *ptr
	return &v
}
