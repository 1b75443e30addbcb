// Package document provides Document, a read-only view over a parsed configuration mapping.
//
// A Document is built from the generic tree a YAML or JSON decoder produces
// (maps, slices and scalars). Nested mappings become nested Documents, so the
// same value can be reached by chained keyed lookups or by a dotted path:
//
//	doc.Get("training")            // *Document
//	doc.Path("training.epochs")    // same value as Get("training") then Get("epochs")
//
// Missing keys are errors (ErrKeyNotFound), never silent zero values.
// Documents are immutable: constructors copy the input tree and accessors
// return copies of sequences, so callers cannot alter a Document after creation.
package document
