package media

// Manifest maps an asset-kind key to that kind's asset locations.
//
// Keys are open-ended strings; "css" and "js" are used by convention.
// Values are either an ordered []any of location strings or a nested
// map[string]any of the same shape (for example CSS locations grouped
// by media query). Scalar values are tolerated and follow the scalar
// collision rule on merge.
type Manifest map[string]any

// Paths builds an ordered list value from asset location strings.
func Paths(locations ...string) []any {
	out := make([]any, len(locations))
	for i, loc := range locations {
		out[i] = loc
	}
	return out
}

// Clone returns a deep copy of the manifest. Nested maps and lists are
// copied; scalar values are shared.
func (m Manifest) Clone() Manifest {
	if m == nil {
		return nil
	}
	out := make(Manifest, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, nested := range val {
			out[k] = cloneValue(nested)
		}
		return out
	case Manifest:
		return map[string]any(val.Clone())
	case []any:
		out := make([]any, len(val))
		for i, nested := range val {
			out[i] = cloneValue(nested)
		}
		return out
	default:
		return v
	}
}

// Merge overlays the derived contribution on top of the base and
// returns a new manifest. Neither input is mutated.
//
// List values concatenate (base entries first, duplicates kept),
// string-keyed maps merge recursively, and on a scalar collision or a
// shape mismatch the overlay value replaces the base value at that key.
func Merge(base, overlay Manifest) Manifest {
	merged := mergeMaps(toPlainMap(base), toPlainMap(overlay))
	return Manifest(merged)
}

func mergeMaps(base, overlay map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(overlay))
	for k, v := range overlay {
		out[k] = cloneValue(v)
	}
	for k, bv := range base {
		ov, collides := out[k]
		if !collides {
			out[k] = cloneValue(bv)
			continue
		}
		out[k] = mergeValues(bv, ov)
	}
	return out
}

// mergeValues combines a base value with an overlay value at the same
// key. The overlay argument is already a private copy; the base is not.
func mergeValues(base, overlay any) any {
	switch bv := normalizeValue(base).(type) {
	case []any:
		if ov, ok := overlay.([]any); ok {
			out := make([]any, 0, len(bv)+len(ov))
			for _, v := range bv {
				out = append(out, cloneValue(v))
			}
			return append(out, ov...)
		}
	case map[string]any:
		if ov, ok := overlay.(map[string]any); ok {
			return mergeMaps(bv, ov)
		}
	}
	// Scalar collision or shape mismatch: the derived side wins.
	return overlay
}

// normalizeValue collapses the Manifest alias so the merge only ever
// sees plain maps and lists.
func normalizeValue(v any) any {
	if m, ok := v.(Manifest); ok {
		return map[string]any(m)
	}
	return v
}

func toPlainMap(m Manifest) map[string]any {
	if m == nil {
		return nil
	}
	return map[string]any(m)
}
