// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/forgeworks/forge/ent/documentchunk"
	"github.com/forgeworks/forge/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// DocumentChunkUpdate is the builder for updating DocumentChunk entities.
type DocumentChunkUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentChunkMutation
}

// Where appends a list predicates to the DocumentChunkUpdate builder.
func (_u *DocumentChunkUpdate) Where(ps ...predicate.DocumentChunk) *DocumentChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *DocumentChunkUpdate) SetChunkIndex(v int) *DocumentChunkUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableChunkIndex(v *int) *DocumentChunkUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *DocumentChunkUpdate) AddChunkIndex(v int) *DocumentChunkUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentChunkUpdate) SetContent(v string) *DocumentChunkUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableContent(v *string) *DocumentChunkUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *DocumentChunkUpdate) SetEmbedding(v pgvector.Vector) *DocumentChunkUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableEmbedding(v *pgvector.Vector) *DocumentChunkUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// Mutation returns the DocumentChunkMutation object of the builder.
func (_u *DocumentChunkUpdate) Mutation() *DocumentChunkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentChunkUpdate) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentChunk.document"`)
	}
	return nil
}

func (_u *DocumentChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentchunk.Table, documentchunk.Columns, sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(documentchunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(documentchunk.FieldEmbedding, field.TypeOther, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentChunkUpdateOne is the builder for updating a single DocumentChunk entity.
type DocumentChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentChunkMutation
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *DocumentChunkUpdateOne) SetChunkIndex(v int) *DocumentChunkUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableChunkIndex(v *int) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *DocumentChunkUpdateOne) AddChunkIndex(v int) *DocumentChunkUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentChunkUpdateOne) SetContent(v string) *DocumentChunkUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableContent(v *string) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *DocumentChunkUpdateOne) SetEmbedding(v pgvector.Vector) *DocumentChunkUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// Mutation returns the DocumentChunkMutation object of the builder.
func (_u *DocumentChunkUpdateOne) Mutation() *DocumentChunkMutation {
	return _u.mutation
}

// Where appends a list predicates to the DocumentChunkUpdate builder.
func (_u *DocumentChunkUpdateOne) Where(ps ...predicate.DocumentChunk) *DocumentChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentChunkUpdateOne) Select(field string, fields ...string) *DocumentChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentChunk entity.
func (_u *DocumentChunkUpdateOne) Save(ctx context.Context) (*DocumentChunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentChunkUpdateOne) SaveX(ctx context.Context) *DocumentChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentChunkUpdateOne) check() error {
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentChunk.document"`)
	}
	return nil
}

func (_u *DocumentChunkUpdateOne) sqlSave(ctx context.Context) (_node *DocumentChunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentchunk.Table, documentchunk.Columns, sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentchunk.FieldID)
		for _, f := range fields {
			if !documentchunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentchunk.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(documentchunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(documentchunk.FieldEmbedding, field.TypeOther, value)
	}
	_node = &DocumentChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
