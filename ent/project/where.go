// Code generated by ent, DO NOT EDIT.

package project

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUserID, v))
}

// ProjectName applies equality check predicate on the "project_name" field. It's identical to ProjectNameEQ.
func ProjectName(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProjectName, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPrompt, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldModelUsed, v))
}

// SpecJSON applies equality check predicate on the "spec_json" field. It's identical to SpecJSONEQ.
func SpecJSON(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSpecJSON, v))
}

// ValidationJSON applies equality check predicate on the "validation_json" field. It's identical to ValidationJSONEQ.
func ValidationJSON(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldValidationJSON, v))
}

// VerificationJSON applies equality check predicate on the "verification_json" field. It's identical to VerificationJSONEQ.
func VerificationJSON(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldVerificationJSON, v))
}

// ZipPath applies equality check predicate on the "zip_path" field. It's identical to ZipPathEQ.
func ZipPath(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldZipPath, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldUserID, v))
}

// ProjectNameEQ applies the EQ predicate on the "project_name" field.
func ProjectNameEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProjectName, v))
}

// ProjectNameNEQ applies the NEQ predicate on the "project_name" field.
func ProjectNameNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldProjectName, v))
}

// ProjectNameIn applies the In predicate on the "project_name" field.
func ProjectNameIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldProjectName, vs...))
}

// ProjectNameNotIn applies the NotIn predicate on the "project_name" field.
func ProjectNameNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldProjectName, vs...))
}

// ProjectNameGT applies the GT predicate on the "project_name" field.
func ProjectNameGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldProjectName, v))
}

// ProjectNameGTE applies the GTE predicate on the "project_name" field.
func ProjectNameGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldProjectName, v))
}

// ProjectNameLT applies the LT predicate on the "project_name" field.
func ProjectNameLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldProjectName, v))
}

// ProjectNameLTE applies the LTE predicate on the "project_name" field.
func ProjectNameLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldProjectName, v))
}

// ProjectNameContains applies the Contains predicate on the "project_name" field.
func ProjectNameContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldProjectName, v))
}

// ProjectNameHasPrefix applies the HasPrefix predicate on the "project_name" field.
func ProjectNameHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldProjectName, v))
}

// ProjectNameHasSuffix applies the HasSuffix predicate on the "project_name" field.
func ProjectNameHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldProjectName, v))
}

// ProjectNameEqualFold applies the EqualFold predicate on the "project_name" field.
func ProjectNameEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldProjectName, v))
}

// ProjectNameContainsFold applies the ContainsFold predicate on the "project_name" field.
func ProjectNameContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldProjectName, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldPrompt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldStatus, vs...))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldModelUsed, v))
}

// SpecJSONEQ applies the EQ predicate on the "spec_json" field.
func SpecJSONEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldSpecJSON, v))
}

// SpecJSONNEQ applies the NEQ predicate on the "spec_json" field.
func SpecJSONNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldSpecJSON, v))
}

// SpecJSONIn applies the In predicate on the "spec_json" field.
func SpecJSONIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldSpecJSON, vs...))
}

// SpecJSONNotIn applies the NotIn predicate on the "spec_json" field.
func SpecJSONNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldSpecJSON, vs...))
}

// SpecJSONGT applies the GT predicate on the "spec_json" field.
func SpecJSONGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldSpecJSON, v))
}

// SpecJSONGTE applies the GTE predicate on the "spec_json" field.
func SpecJSONGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldSpecJSON, v))
}

// SpecJSONLT applies the LT predicate on the "spec_json" field.
func SpecJSONLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldSpecJSON, v))
}

// SpecJSONLTE applies the LTE predicate on the "spec_json" field.
func SpecJSONLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldSpecJSON, v))
}

// SpecJSONContains applies the Contains predicate on the "spec_json" field.
func SpecJSONContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldSpecJSON, v))
}

// SpecJSONHasPrefix applies the HasPrefix predicate on the "spec_json" field.
func SpecJSONHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldSpecJSON, v))
}

// SpecJSONHasSuffix applies the HasSuffix predicate on the "spec_json" field.
func SpecJSONHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldSpecJSON, v))
}

// SpecJSONIsNil applies the IsNil predicate on the "spec_json" field.
func SpecJSONIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldSpecJSON))
}

// SpecJSONNotNil applies the NotNil predicate on the "spec_json" field.
func SpecJSONNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldSpecJSON))
}

// SpecJSONEqualFold applies the EqualFold predicate on the "spec_json" field.
func SpecJSONEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldSpecJSON, v))
}

// SpecJSONContainsFold applies the ContainsFold predicate on the "spec_json" field.
func SpecJSONContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldSpecJSON, v))
}

// ValidationJSONEQ applies the EQ predicate on the "validation_json" field.
func ValidationJSONEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldValidationJSON, v))
}

// ValidationJSONNEQ applies the NEQ predicate on the "validation_json" field.
func ValidationJSONNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldValidationJSON, v))
}

// ValidationJSONIn applies the In predicate on the "validation_json" field.
func ValidationJSONIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldValidationJSON, vs...))
}

// ValidationJSONNotIn applies the NotIn predicate on the "validation_json" field.
func ValidationJSONNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldValidationJSON, vs...))
}

// ValidationJSONGT applies the GT predicate on the "validation_json" field.
func ValidationJSONGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldValidationJSON, v))
}

// ValidationJSONGTE applies the GTE predicate on the "validation_json" field.
func ValidationJSONGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldValidationJSON, v))
}

// ValidationJSONLT applies the LT predicate on the "validation_json" field.
func ValidationJSONLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldValidationJSON, v))
}

// ValidationJSONLTE applies the LTE predicate on the "validation_json" field.
func ValidationJSONLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldValidationJSON, v))
}

// ValidationJSONContains applies the Contains predicate on the "validation_json" field.
func ValidationJSONContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldValidationJSON, v))
}

// ValidationJSONHasPrefix applies the HasPrefix predicate on the "validation_json" field.
func ValidationJSONHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldValidationJSON, v))
}

// ValidationJSONHasSuffix applies the HasSuffix predicate on the "validation_json" field.
func ValidationJSONHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldValidationJSON, v))
}

// ValidationJSONIsNil applies the IsNil predicate on the "validation_json" field.
func ValidationJSONIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldValidationJSON))
}

// ValidationJSONNotNil applies the NotNil predicate on the "validation_json" field.
func ValidationJSONNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldValidationJSON))
}

// ValidationJSONEqualFold applies the EqualFold predicate on the "validation_json" field.
func ValidationJSONEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldValidationJSON, v))
}

// ValidationJSONContainsFold applies the ContainsFold predicate on the "validation_json" field.
func ValidationJSONContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldValidationJSON, v))
}

// VerificationJSONEQ applies the EQ predicate on the "verification_json" field.
func VerificationJSONEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldVerificationJSON, v))
}

// VerificationJSONNEQ applies the NEQ predicate on the "verification_json" field.
func VerificationJSONNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldVerificationJSON, v))
}

// VerificationJSONIn applies the In predicate on the "verification_json" field.
func VerificationJSONIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldVerificationJSON, vs...))
}

// VerificationJSONNotIn applies the NotIn predicate on the "verification_json" field.
func VerificationJSONNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldVerificationJSON, vs...))
}

// VerificationJSONGT applies the GT predicate on the "verification_json" field.
func VerificationJSONGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldVerificationJSON, v))
}

// VerificationJSONGTE applies the GTE predicate on the "verification_json" field.
func VerificationJSONGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldVerificationJSON, v))
}

// VerificationJSONLT applies the LT predicate on the "verification_json" field.
func VerificationJSONLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldVerificationJSON, v))
}

// VerificationJSONLTE applies the LTE predicate on the "verification_json" field.
func VerificationJSONLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldVerificationJSON, v))
}

// VerificationJSONContains applies the Contains predicate on the "verification_json" field.
func VerificationJSONContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldVerificationJSON, v))
}

// VerificationJSONHasPrefix applies the HasPrefix predicate on the "verification_json" field.
func VerificationJSONHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldVerificationJSON, v))
}

// VerificationJSONHasSuffix applies the HasSuffix predicate on the "verification_json" field.
func VerificationJSONHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldVerificationJSON, v))
}

// VerificationJSONIsNil applies the IsNil predicate on the "verification_json" field.
func VerificationJSONIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldVerificationJSON))
}

// VerificationJSONNotNil applies the NotNil predicate on the "verification_json" field.
func VerificationJSONNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldVerificationJSON))
}

// VerificationJSONEqualFold applies the EqualFold predicate on the "verification_json" field.
func VerificationJSONEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldVerificationJSON, v))
}

// VerificationJSONContainsFold applies the ContainsFold predicate on the "verification_json" field.
func VerificationJSONContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldVerificationJSON, v))
}

// ZipPathEQ applies the EQ predicate on the "zip_path" field.
func ZipPathEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldZipPath, v))
}

// ZipPathNEQ applies the NEQ predicate on the "zip_path" field.
func ZipPathNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldZipPath, v))
}

// ZipPathIn applies the In predicate on the "zip_path" field.
func ZipPathIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldZipPath, vs...))
}

// ZipPathNotIn applies the NotIn predicate on the "zip_path" field.
func ZipPathNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldZipPath, vs...))
}

// ZipPathGT applies the GT predicate on the "zip_path" field.
func ZipPathGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldZipPath, v))
}

// ZipPathGTE applies the GTE predicate on the "zip_path" field.
func ZipPathGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldZipPath, v))
}

// ZipPathLT applies the LT predicate on the "zip_path" field.
func ZipPathLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldZipPath, v))
}

// ZipPathLTE applies the LTE predicate on the "zip_path" field.
func ZipPathLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldZipPath, v))
}

// ZipPathContains applies the Contains predicate on the "zip_path" field.
func ZipPathContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldZipPath, v))
}

// ZipPathHasPrefix applies the HasPrefix predicate on the "zip_path" field.
func ZipPathHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldZipPath, v))
}

// ZipPathHasSuffix applies the HasSuffix predicate on the "zip_path" field.
func ZipPathHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldZipPath, v))
}

// ZipPathIsNil applies the IsNil predicate on the "zip_path" field.
func ZipPathIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldZipPath))
}

// ZipPathNotNil applies the NotNil predicate on the "zip_path" field.
func ZipPathNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldZipPath))
}

// ZipPathEqualFold applies the EqualFold predicate on the "zip_path" field.
func ZipPathEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldZipPath, v))
}

// ZipPathContainsFold applies the ContainsFold predicate on the "zip_path" field.
func ZipPathContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldZipPath, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasThreads applies the HasEdge predicate on the "threads" edge.
func HasThreads() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ThreadsTable, ThreadsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasThreadsWith applies the HasEdge predicate on the "threads" edge with a given conditions (other predicates).
func HasThreadsWith(preds ...predicate.Thread) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newThreadsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVerificationRuns applies the HasEdge predicate on the "verification_runs" edge.
func HasVerificationRuns() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VerificationRunsTable, VerificationRunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVerificationRunsWith applies the HasEdge predicate on the "verification_runs" edge with a given conditions (other predicates).
func HasVerificationRunsWith(preds ...predicate.VerificationRun) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newVerificationRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Project {
	return predicate.Project(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
