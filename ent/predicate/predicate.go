// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// DocumentChunk is the predicate function for documentchunk builders.
type DocumentChunk func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// Thread is the predicate function for thread builders.
type Thread func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// VerificationRun is the predicate function for verificationrun builders.
type VerificationRun func(*sql.Selector)
