/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

// Value is any value held by a document tree. The concrete types stored are
// string, int64, float64, bool, nil, Array and *Object.
type Value any

// Array is an ordered list of document values.
type Array []Value

// Clone returns a deep copy of the array.
func (a Array) Clone() Array {
	if a == nil {
		return nil
	}
	out := make(Array, len(a))
	for i, v := range a {
		out[i] = cloneValue(v)
	}
	return out
}

// Object is an order-preserving string-keyed collection of document values.
// Keys iterate in insertion order, matching the order they appeared in the
// source document.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject creates an empty document object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Len returns the number of keys in the object.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Has reports whether the object contains the given key.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[key]
	return ok
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Set stores value under key. A new key is appended to the iteration order;
// replacing an existing key keeps its position.
func (o *Object) Set(key string, value Value) {
	if o.values == nil {
		o.values = make(map[string]Value)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Delete removes key from the object. Removing an absent key is a no-op.
func (o *Object) Delete(key string) {
	if o == nil {
		return
	}
	if _, exists := o.values[key]; !exists {
		return
	}
	delete(o.values, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

// String returns the string stored under key, if present and string-typed.
func (o *Object) String(key string) (string, bool) {
	v, ok := o.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Float returns the numeric value stored under key as a float64. Integer
// values convert losslessly.
func (o *Object) Float(key string) (float64, bool) {
	v, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// Int returns the integer value stored under key. Float values are rejected.
func (o *Object) Int(key string) (int64, bool) {
	v, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.(int64)
	return n, ok
}

// Bool returns the boolean stored under key, if present and bool-typed.
func (o *Object) Bool(key string) (bool, bool) {
	v, ok := o.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Object returns the nested object stored under key, if present and
// object-typed.
func (o *Object) Object(key string) (*Object, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Object)
	return sub, ok
}

// Array returns the array stored under key, if present and array-typed.
func (o *Object) Array(key string) (Array, bool) {
	v, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	a, ok := v.(Array)
	return a, ok
}

// Vec3 returns the value under key as a 3-element float vector, if it is a
// numeric array of exactly three entries.
func (o *Object) Vec3(key string) ([3]float64, bool) {
	a, ok := o.Array(key)
	if !ok || len(a) != 3 {
		return [3]float64{}, false
	}
	var out [3]float64
	for i, v := range a {
		switch n := v.(type) {
		case float64:
			out[i] = n
		case int64:
			out[i] = float64(n)
		default:
			return [3]float64{}, false
		}
	}
	return out, true
}

// SetVec3 stores a 3-element float vector under key.
func (o *Object) SetVec3(key string, v [3]float64) {
	o.Set(key, Array{v[0], v[1], v[2]})
}

// EnsureObject returns the nested object under key, creating and storing an
// empty one if the key is absent or holds a non-object value.
func (o *Object) EnsureObject(key string) *Object {
	if sub, ok := o.Object(key); ok {
		return sub
	}
	sub := NewObject()
	o.Set(key, sub)
	return sub
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := NewObject()
	for _, k := range o.keys {
		out.Set(k, cloneValue(o.values[k]))
	}
	return out
}

// Merge copies every key/value pair of other into o verbatim, overwriting
// existing keys, and returns the number of settings merged. Nested objects
// count each of their own settings; an empty nested object counts as one.
func (o *Object) Merge(other *Object) int {
	if other == nil {
		return 0
	}
	count := 0
	for _, k := range other.keys {
		v := other.values[k]
		o.Set(k, cloneValue(v))
		count += settingCount(v)
	}
	return count
}

// Equal reports whether two objects hold identical content. Key order is
// not significant for equality.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	for _, k := range o.keys {
		ov := o.values[k]
		tv, ok := other.values[k]
		if !ok || !valueEqual(ov, tv) {
			return false
		}
	}
	return true
}

func cloneValue(v Value) Value {
	switch t := v.(type) {
	case *Object:
		return t.Clone()
	case Array:
		return t.Clone()
	default:
		return v
	}
}

// settingCount counts the scalar/array settings represented by a value. A
// nested object contributes the sum of its children, minimum one so that
// merging it is still observable.
func settingCount(v Value) int {
	sub, ok := v.(*Object)
	if !ok {
		return 1
	}
	n := 0
	for _, k := range sub.keys {
		n += settingCount(sub.values[k])
	}
	if n == 0 {
		return 1
	}
	return n
}

func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		return ok && av.Equal(bv)
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case float64:
		switch bv := b.(type) {
		case float64:
			return av == bv
		case int64:
			return av == float64(bv)
		}
		return false
	case int64:
		switch bv := b.(type) {
		case int64:
			return av == bv
		case float64:
			return float64(av) == bv
		}
		return false
	default:
		return a == b
	}
}
