package paging

import (
	"bytes"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// collectionJSON keeps numbers as json.Number so decoded elements round-trip
// without loss.
var collectionJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Ordered is an associative collection that remembers key insertion order.
// Slicing an Ordered walks its keys in that order.
type Ordered[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrdered returns an empty Ordered.
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{values: make(map[K]V)}
}

// Set stores v under k. New keys go to the end; existing keys keep their position.
func (o *Ordered[K, V]) Set(k K, v V) {
	if o.values == nil {
		o.values = make(map[K]V)
	}
	if _, ok := o.values[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.values[k] = v
}

func (o *Ordered[K, V]) Get(k K) (V, bool) {
	v, ok := o.values[k]
	return v, ok
}

func (o *Ordered[K, V]) Len() int { return len(o.keys) }

// Keys returns a copy of the keys in insertion order.
func (o *Ordered[K, V]) Keys() []K {
	return append([]K(nil), o.keys...)
}

// MarshalJSON writes the entries as a JSON object in key order.
func (o *Ordered[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	stream := jsoniter.NewStream(collectionJSON, &buf, 256)
	stream.WriteObjectStart()
	for i, k := range o.keys {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(fmt.Sprint(k))
		stream.WriteVal(o.values[k])
	}
	stream.WriteObjectEnd()
	if err := stream.Flush(); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	return buf.Bytes(), nil
}

// DecodeCollection decodes a JSON document into a value the slicer understands.
// Top-level objects become *Ordered[string, any] so their key order survives;
// arrays become []any and numbers stay json.Number. Empty input yields nil.
func DecodeCollection(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !collectionJSON.Valid(raw) {
		return nil, fmt.Errorf("decode collection: invalid JSON")
	}
	iter := jsoniter.ParseBytes(collectionJSON, raw)
	var v any
	if iter.WhatIsNext() == jsoniter.ObjectValue {
		m := NewOrdered[string, any]()
		iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
			m.Set(key, it.Read())
			return true
		})
		v = m
	} else {
		v = iter.Read()
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("decode collection: %w", iter.Error)
	}
	return v, nil
}
