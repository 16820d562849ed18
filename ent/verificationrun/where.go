// Code generated by ent, DO NOT EDIT.

package verificationrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/forgeworks/forge/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldProjectID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldUserID, v))
}

// Payload applies equality check predicate on the "payload" field. It's identical to PayloadEQ.
func Payload(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldPayload, v))
}

// ReportJSON applies equality check predicate on the "report_json" field. It's identical to ReportJSONEQ.
func ReportJSON(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldReportJSON, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldPodID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldCompletedAt, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContainsFold(FieldProjectID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContainsFold(FieldUserID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldStatus, vs...))
}

// PayloadEQ applies the EQ predicate on the "payload" field.
func PayloadEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldPayload, v))
}

// PayloadNEQ applies the NEQ predicate on the "payload" field.
func PayloadNEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldPayload, v))
}

// PayloadIn applies the In predicate on the "payload" field.
func PayloadIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldPayload, vs...))
}

// PayloadNotIn applies the NotIn predicate on the "payload" field.
func PayloadNotIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldPayload, vs...))
}

// PayloadGT applies the GT predicate on the "payload" field.
func PayloadGT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldPayload, v))
}

// PayloadGTE applies the GTE predicate on the "payload" field.
func PayloadGTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldPayload, v))
}

// PayloadLT applies the LT predicate on the "payload" field.
func PayloadLT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldPayload, v))
}

// PayloadLTE applies the LTE predicate on the "payload" field.
func PayloadLTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldPayload, v))
}

// PayloadContains applies the Contains predicate on the "payload" field.
func PayloadContains(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContains(FieldPayload, v))
}

// PayloadHasPrefix applies the HasPrefix predicate on the "payload" field.
func PayloadHasPrefix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasPrefix(FieldPayload, v))
}

// PayloadHasSuffix applies the HasSuffix predicate on the "payload" field.
func PayloadHasSuffix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasSuffix(FieldPayload, v))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotNull(FieldPayload))
}

// PayloadEqualFold applies the EqualFold predicate on the "payload" field.
func PayloadEqualFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEqualFold(FieldPayload, v))
}

// PayloadContainsFold applies the ContainsFold predicate on the "payload" field.
func PayloadContainsFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContainsFold(FieldPayload, v))
}

// ReportJSONEQ applies the EQ predicate on the "report_json" field.
func ReportJSONEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldReportJSON, v))
}

// ReportJSONNEQ applies the NEQ predicate on the "report_json" field.
func ReportJSONNEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldReportJSON, v))
}

// ReportJSONIn applies the In predicate on the "report_json" field.
func ReportJSONIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldReportJSON, vs...))
}

// ReportJSONNotIn applies the NotIn predicate on the "report_json" field.
func ReportJSONNotIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldReportJSON, vs...))
}

// ReportJSONGT applies the GT predicate on the "report_json" field.
func ReportJSONGT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldReportJSON, v))
}

// ReportJSONGTE applies the GTE predicate on the "report_json" field.
func ReportJSONGTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldReportJSON, v))
}

// ReportJSONLT applies the LT predicate on the "report_json" field.
func ReportJSONLT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldReportJSON, v))
}

// ReportJSONLTE applies the LTE predicate on the "report_json" field.
func ReportJSONLTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldReportJSON, v))
}

// ReportJSONContains applies the Contains predicate on the "report_json" field.
func ReportJSONContains(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContains(FieldReportJSON, v))
}

// ReportJSONHasPrefix applies the HasPrefix predicate on the "report_json" field.
func ReportJSONHasPrefix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasPrefix(FieldReportJSON, v))
}

// ReportJSONHasSuffix applies the HasSuffix predicate on the "report_json" field.
func ReportJSONHasSuffix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasSuffix(FieldReportJSON, v))
}

// ReportJSONIsNil applies the IsNil predicate on the "report_json" field.
func ReportJSONIsNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIsNull(FieldReportJSON))
}

// ReportJSONNotNil applies the NotNil predicate on the "report_json" field.
func ReportJSONNotNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotNull(FieldReportJSON))
}

// ReportJSONEqualFold applies the EqualFold predicate on the "report_json" field.
func ReportJSONEqualFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEqualFold(FieldReportJSON, v))
}

// ReportJSONContainsFold applies the ContainsFold predicate on the "report_json" field.
func ReportJSONContainsFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContainsFold(FieldReportJSON, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldContainsFold(FieldPodID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotNull(FieldCompletedAt))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.VerificationRun {
	return predicate.VerificationRun(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.VerificationRun {
	return predicate.VerificationRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.VerificationRun {
	return predicate.VerificationRun(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VerificationRun) predicate.VerificationRun {
	return predicate.VerificationRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VerificationRun) predicate.VerificationRun {
	return predicate.VerificationRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VerificationRun) predicate.VerificationRun {
	return predicate.VerificationRun(sql.NotPredicates(p))
}
