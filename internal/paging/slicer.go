package paging

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// ParseItemsPerPage resolves a requested page size the way a leading-integer
// parse would: "25" and "25 rows" give 25. Missing, non-numeric and
// non-positive values give UnboundedItemsPerPage.
func ParseItemsPerPage(v any) int {
	n := 0
	switch x := v.(type) {
	case int:
		n = x
	case int32:
		n = int(x)
	case int64:
		n = clampInt64(x)
	case uint:
		n = clampInt64(int64(min(x, math.MaxInt32)))
	case float64:
		n = floatToInt(x)
	case float32:
		n = floatToInt(float64(x))
	case string:
		n = leadingInt(x)
	case fmt.Stringer:
		n = leadingInt(x.String())
	}
	if n <= 0 || n > UnboundedItemsPerPage {
		return UnboundedItemsPerPage
	}
	return n
}

func clampInt64(x int64) int {
	if x > UnboundedItemsPerPage {
		return UnboundedItemsPerPage
	}
	if x < 0 {
		return 0
	}
	return int(x)
}

func floatToInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		return 0
	}
	if f > UnboundedItemsPerPage {
		return UnboundedItemsPerPage
	}
	return int(f)
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || neg {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return UnboundedItemsPerPage
	}
	return clampInt64(n)
}

// bounds returns the [start, end) window of page within n items.
// Pages below 1 are treated as page 1.
func bounds(page, itemsPerPage, n int) (int, int) {
	if page < 1 {
		page = 1
	}
	skipped := page - 1
	start := n
	if skipped <= n/itemsPerPage {
		start = skipped * itemsPerPage
	}
	end := n
	if itemsPerPage < n-start {
		end = start + itemsPerPage
	}
	return start, end
}

// window validates id, records the resolved page size on the instance and
// returns the slice window for a collection of n items.
func (r *Registry) window(id string, itemsPerPage any, n int) (int, int, error) {
	ipp := ParseItemsPerPage(itemsPerPage)
	async, err := r.IsAsyncMode(id)
	if err != nil {
		return 0, 0, ErrUnknownInstance(id)
	}
	page := 1
	if !async {
		if page, err = r.CurrentPage(id); err != nil {
			return 0, 0, ErrUnknownInstance(id)
		}
	}
	if err := r.SetItemsPerPage(id, ipp); err != nil {
		return 0, 0, ErrUnknownInstance(id)
	}
	start, end := bounds(page, ipp, n)
	return start, end, nil
}

func resolveID(id string) string {
	if id == "" {
		return DefaultID
	}
	return id
}

// SliceItems returns a copy of the items on the instance's current page.
// In async mode the items are taken from offset 0 because the caller already
// supplied only the current page.
func SliceItems[T any](r *Registry, items []T, itemsPerPage any, id string) ([]T, error) {
	id = resolveID(id)
	if !r.IsRegistered(id) {
		return nil, ErrUnknownInstance(id)
	}
	start, end, err := r.window(id, itemsPerPage, len(items))
	if err != nil {
		return nil, err
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out, nil
}

// SliceOrdered returns a new Ordered holding the entries of the current page,
// selected over the key order of m.
func SliceOrdered[K comparable, V any](r *Registry, m *Ordered[K, V], itemsPerPage any, id string) (*Ordered[K, V], error) {
	id = resolveID(id)
	if !r.IsRegistered(id) {
		return nil, ErrUnknownInstance(id)
	}
	if m == nil {
		m = NewOrdered[K, V]()
	}
	start, end, err := r.window(id, itemsPerPage, m.Len())
	if err != nil {
		return nil, err
	}
	out := NewOrdered[K, V]()
	for _, k := range m.keys[start:end] {
		out.Set(k, m.values[k])
	}
	return out, nil
}

// Slice dispatches on the dynamic type of collection. Slices and arrays are
// windowed directly, *Ordered[string, any] over its key order, and plain maps
// over their sorted key order. Any other value is returned unchanged once the
// id has been validated.
func Slice(r *Registry, collection any, itemsPerPage any, id string) (any, error) {
	id = resolveID(id)
	if !r.IsRegistered(id) {
		return nil, ErrUnknownInstance(id)
	}
	switch c := collection.(type) {
	case []any:
		return SliceItems(r, c, itemsPerPage, id)
	case *Ordered[string, any]:
		return SliceOrdered(r, c, itemsPerPage, id)
	case nil:
		return nil, nil
	}

	rv := reflect.ValueOf(collection)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		start, end, err := r.window(id, itemsPerPage, rv.Len())
		if err != nil {
			return nil, err
		}
		out := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), 0, end-start)
		for i := start; i < end; i++ {
			out = reflect.Append(out, rv.Index(i))
		}
		return out.Interface(), nil
	case reflect.Map:
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
		start, end, err := r.window(id, itemsPerPage, len(keys))
		if err != nil {
			return nil, err
		}
		out := reflect.MakeMapWithSize(rv.Type(), end-start)
		for _, k := range keys[start:end] {
			out.SetMapIndex(k, rv.MapIndex(k))
		}
		return out.Interface(), nil
	default:
		return collection, nil
	}
}

func keyLess(a, b reflect.Value) bool {
	switch {
	case a.CanInt() && b.CanInt():
		return a.Int() < b.Int()
	case a.CanUint() && b.CanUint():
		return a.Uint() < b.Uint()
	case a.CanFloat() && b.CanFloat():
		return a.Float() < b.Float()
	case a.Kind() == reflect.String && b.Kind() == reflect.String:
		return a.String() < b.String()
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}
