package convert

// FirstOf builds a union decoder that tries each alternative in order and
// commits to the first that succeeds. Ordering is part of the schema
// contract: if a value could satisfy two alternatives, the earlier one
// always wins. When every alternative fails the returned UnionError carries
// all per-alternative failures.
func FirstOf[T any](union string, alternatives ...DecodeFunc[T]) DecodeFunc[T] {
	return func(p Path, v any) (T, error) {
		causes := make([]error, 0, len(alternatives))
		for _, alt := range alternatives {
			val, err := alt(p, v)
			if err == nil {
				return val, nil
			}
			causes = append(causes, err)
		}
		var zero T
		return zero, &UnionError{Path: p, Union: union, Causes: causes}
	}
}
