/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package document

import (
	"fmt"
	"os"
)

// Codec reads and writes document objects from and to files. The registry
// hierarchy only ever touches documents through this interface, so alternate
// serialization formats can be substituted without touching registry logic.
type Codec interface {
	// DecodeFile parses the named file into an order-preserving document
	// object.
	DecodeFile(path string) (*Object, error)

	// EncodeFile serializes the document object to the named file,
	// pretty-printed with the codec's fixed indent width.
	EncodeFile(path string, obj *Object) error
}

// JSONCodec is the default Codec, producing one JSON object document per
// file with a fixed-width indent.
type JSONCodec struct {
	// IndentWidth is the pretty-printing indent in spaces. Zero means the
	// default of 2.
	IndentWidth int
}

// DecodeFile implements Codec.
func (c JSONCodec) DecodeFile(path string) (*Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	obj, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return obj, nil
}

// EncodeFile implements Codec.
func (c JSONCodec) EncodeFile(path string, obj *Object) error {
	width := c.IndentWidth
	if width <= 0 {
		width = 2
	}
	data, err := MarshalJSONIndent(obj, width)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
