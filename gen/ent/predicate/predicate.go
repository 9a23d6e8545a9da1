// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FlowRun is the predicate function for flowrun builders.
type FlowRun func(*sql.Selector)

// PQRRecord is the predicate function for pqrrecord builders.
type PQRRecord func(*sql.Selector)

// UploadRegistry is the predicate function for uploadregistry builders.
type UploadRegistry func(*sql.Selector)
