// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/forgeworks/forge/ent/document"
	"github.com/forgeworks/forge/ent/documentchunk"
	pgvector "github.com/pgvector/pgvector-go"
)

// DocumentChunk is the model entity for the DocumentChunk schema.
type DocumentChunk struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID string `json:"document_id,omitempty"`
	// Denormalized owner for retrieval filters
	UserID string `json:"user_id,omitempty"`
	// Position within the source document
	ChunkIndex int `json:"chunk_index,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding pgvector.Vector `json:"embedding,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentChunkQuery when eager-loading is set.
	Edges        DocumentChunkEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentChunkEdges holds the relations/edges for other nodes in the graph.
type DocumentChunkEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentChunkEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentChunk) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentchunk.FieldEmbedding:
			values[i] = new(pgvector.Vector)
		case documentchunk.FieldChunkIndex:
			values[i] = new(sql.NullInt64)
		case documentchunk.FieldID, documentchunk.FieldDocumentID, documentchunk.FieldUserID, documentchunk.FieldContent:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentChunk fields.
func (_m *DocumentChunk) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentchunk.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case documentchunk.FieldDocumentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = value.String
			}
		case documentchunk.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case documentchunk.FieldChunkIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_index", values[i])
			} else if value.Valid {
				_m.ChunkIndex = int(value.Int64)
			}
		case documentchunk.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case documentchunk.FieldEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil {
				_m.Embedding = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentChunk.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentChunk) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentChunk entity.
func (_m *DocumentChunk) QueryDocument() *DocumentQuery {
	return NewDocumentChunkClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DocumentChunk.
// Note that you need to call DocumentChunk.Unwrap() before calling this method if this DocumentChunk
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentChunk) Update() *DocumentChunkUpdateOne {
	return NewDocumentChunkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentChunk entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentChunk) Unwrap() *DocumentChunk {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentChunk is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentChunk) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentChunk(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(_m.DocumentID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("chunk_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkIndex))
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentChunks is a parsable slice of DocumentChunk.
type DocumentChunks []*DocumentChunk
