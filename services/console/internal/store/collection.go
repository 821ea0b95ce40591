package store

// Copy-on-write helpers shared by the record slices. None of them modify the
// input slice; a false result means the input is returned untouched.

func appendUnique[T any](items []T, id func(T) string, next T) ([]T, bool) {
	key := id(next)
	for _, item := range items {
		if id(item) == key {
			return items, false
		}
	}
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, next), true
}

func replaceByID[T any](items []T, id func(T) string, next T) ([]T, bool) {
	key := id(next)
	for i, item := range items {
		if id(item) == key {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = next
			return out, true
		}
	}
	return items, false
}

func removeByID[T any](items []T, id func(T) string, key string) ([]T, bool) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != key {
			out = append(out, item)
		}
	}
	if len(out) == len(items) {
		return items, false
	}
	return out, true
}

func patchByID[T any](items []T, id func(T) string, key string, patch func(*T)) ([]T, bool) {
	for i, item := range items {
		if id(item) == key {
			out := make([]T, len(items))
			copy(out, items)
			patch(&out[i])
			return out, true
		}
	}
	return items, false
}

// dedupe copies items keeping the first record for every id.
func dedupe[T any](items []T, id func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := id(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
