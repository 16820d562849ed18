// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/forgeworks/forge/ent/document"
	"github.com/forgeworks/forge/ent/event"
	"github.com/forgeworks/forge/ent/message"
	"github.com/forgeworks/forge/ent/project"
	"github.com/forgeworks/forge/ent/schema"
	"github.com/forgeworks/forge/ent/thread"
	"github.com/forgeworks/forge/ent/user"
	"github.com/forgeworks/forge/ent/verificationrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[2].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescChunkCount is the schema descriptor for chunk_count field.
	documentDescChunkCount := documentFields[5].Descriptor()
	// document.DefaultChunkCount holds the default value on creation for the chunk_count field.
	document.DefaultChunkCount = documentDescChunkCount.Default.(int)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[6].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[4].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescProjectName is the schema descriptor for project_name field.
	projectDescProjectName := projectFields[2].Descriptor()
	// project.ProjectNameValidator is a validator for the "project_name" field. It is called by the builders before save.
	project.ProjectNameValidator = projectDescProjectName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[11].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[12].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	threadFields := schema.Thread{}.Fields()
	_ = threadFields
	// threadDescTitle is the schema descriptor for title field.
	threadDescTitle := threadFields[2].Descriptor()
	// thread.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	thread.TitleValidator = threadDescTitle.Validators[0].(func(string) error)
	// threadDescCreatedAt is the schema descriptor for created_at field.
	threadDescCreatedAt := threadFields[3].Descriptor()
	// thread.DefaultCreatedAt holds the default value on creation for the created_at field.
	thread.DefaultCreatedAt = threadDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	verificationrunFields := schema.VerificationRun{}.Fields()
	_ = verificationrunFields
	// verificationrunDescCreatedAt is the schema descriptor for created_at field.
	verificationrunDescCreatedAt := verificationrunFields[9].Descriptor()
	// verificationrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationrun.DefaultCreatedAt = verificationrunDescCreatedAt.Default.(func() time.Time)
}
