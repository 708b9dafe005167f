/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package managers

import (
	"go.uber.org/zap"

	"github.com/suparena/managedstore/document"
)

// Per-field binding helpers. Each reads one key from the document and
// applies it through the setter; an absent key leaves the default, a
// wrong-typed value is logged and skipped. No field failure ever aborts a
// document.

func bindFloat(log *zap.Logger, doc *document.Object, key string, set func(float64)) {
	if !doc.Has(key) {
		return
	}
	v, ok := doc.Float(key)
	if !ok {
		log.Warn("config field is not a number, skipping", zap.String("field", key))
		return
	}
	set(v)
}

func bindInt(log *zap.Logger, doc *document.Object, key string, set func(int64)) {
	if !doc.Has(key) {
		return
	}
	v, ok := doc.Int(key)
	if !ok {
		log.Warn("config field is not an integer, skipping", zap.String("field", key))
		return
	}
	set(v)
}

func bindBool(log *zap.Logger, doc *document.Object, key string, set func(bool)) {
	if !doc.Has(key) {
		return
	}
	v, ok := doc.Bool(key)
	if !ok {
		log.Warn("config field is not a boolean, skipping", zap.String("field", key))
		return
	}
	set(v)
}

func bindString(log *zap.Logger, doc *document.Object, key string, set func(string)) {
	if !doc.Has(key) {
		return
	}
	v, ok := doc.String(key)
	if !ok {
		log.Warn("config field is not a string, skipping", zap.String("field", key))
		return
	}
	set(v)
}

func bindVec3(log *zap.Logger, doc *document.Object, key string, set func([3]float64)) {
	if !doc.Has(key) {
		return
	}
	v, ok := doc.Vec3(key)
	if !ok {
		log.Warn("config field is not a 3-vector, skipping", zap.String("field", key))
		return
	}
	set(v)
}
