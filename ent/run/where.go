// Code generated by ent, DO NOT EDIT.

package run

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/assaylab/assay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldProjectID, v))
}

// ErrorSummary applies equality check predicate on the "error_summary" field. It's identical to ErrorSummaryEQ.
func ErrorSummary(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// ChatSessionID applies equality check predicate on the "chat_session_id" field. It's identical to ChatSessionIDEQ.
func ChatSessionID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldChatSessionID, v))
}

// UITriggerID applies equality check predicate on the "ui_trigger_id" field. It's identical to UITriggerIDEQ.
func UITriggerID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUITriggerID, v))
}

// UITriggerSource applies equality check predicate on the "ui_trigger_source" field. It's identical to UITriggerSourceEQ.
func UITriggerSource(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUITriggerSource, v))
}

// UITriggerAt applies equality check predicate on the "ui_trigger_at" field. It's identical to UITriggerAtEQ.
func UITriggerAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUITriggerAt, v))
}

// RunSummaryMessageID applies equality check predicate on the "run_summary_message_id" field. It's identical to RunSummaryMessageIDEQ.
func RunSummaryMessageID(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRunSummaryMessageID, v))
}

// QueuedAt applies equality check predicate on the "queued_at" field. It's identical to QueuedAtEQ.
func QueuedAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQueuedAt, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldClaimedBy, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldProjectID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStatus, vs...))
}

// MetricsIsNil applies the IsNil predicate on the "metrics" field.
func MetricsIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldMetrics))
}

// MetricsNotNil applies the NotNil predicate on the "metrics" field.
func MetricsNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldMetrics))
}

// LlmUsageIsNil applies the IsNil predicate on the "llm_usage" field.
func LlmUsageIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLlmUsage))
}

// LlmUsageNotNil applies the NotNil predicate on the "llm_usage" field.
func LlmUsageNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLlmUsage))
}

// ErrorSummaryEQ applies the EQ predicate on the "error_summary" field.
func ErrorSummaryEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldErrorSummary, v))
}

// ErrorSummaryNEQ applies the NEQ predicate on the "error_summary" field.
func ErrorSummaryNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldErrorSummary, v))
}

// ErrorSummaryIn applies the In predicate on the "error_summary" field.
func ErrorSummaryIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldErrorSummary, vs...))
}

// ErrorSummaryNotIn applies the NotIn predicate on the "error_summary" field.
func ErrorSummaryNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldErrorSummary, vs...))
}

// ErrorSummaryGT applies the GT predicate on the "error_summary" field.
func ErrorSummaryGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldErrorSummary, v))
}

// ErrorSummaryGTE applies the GTE predicate on the "error_summary" field.
func ErrorSummaryGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldErrorSummary, v))
}

// ErrorSummaryLT applies the LT predicate on the "error_summary" field.
func ErrorSummaryLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldErrorSummary, v))
}

// ErrorSummaryLTE applies the LTE predicate on the "error_summary" field.
func ErrorSummaryLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldErrorSummary, v))
}

// ErrorSummaryContains applies the Contains predicate on the "error_summary" field.
func ErrorSummaryContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldErrorSummary, v))
}

// ErrorSummaryHasPrefix applies the HasPrefix predicate on the "error_summary" field.
func ErrorSummaryHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldErrorSummary, v))
}

// ErrorSummaryHasSuffix applies the HasSuffix predicate on the "error_summary" field.
func ErrorSummaryHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldErrorSummary, v))
}

// ErrorSummaryIsNil applies the IsNil predicate on the "error_summary" field.
func ErrorSummaryIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldErrorSummary))
}

// ErrorSummaryNotNil applies the NotNil predicate on the "error_summary" field.
func ErrorSummaryNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldErrorSummary))
}

// ErrorSummaryEqualFold applies the EqualFold predicate on the "error_summary" field.
func ErrorSummaryEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldErrorSummary, v))
}

// ErrorSummaryContainsFold applies the ContainsFold predicate on the "error_summary" field.
func ErrorSummaryContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldErrorSummary, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldCompletedAt))
}

// ChatSessionIDEQ applies the EQ predicate on the "chat_session_id" field.
func ChatSessionIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldChatSessionID, v))
}

// ChatSessionIDNEQ applies the NEQ predicate on the "chat_session_id" field.
func ChatSessionIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldChatSessionID, v))
}

// ChatSessionIDIn applies the In predicate on the "chat_session_id" field.
func ChatSessionIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldChatSessionID, vs...))
}

// ChatSessionIDNotIn applies the NotIn predicate on the "chat_session_id" field.
func ChatSessionIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldChatSessionID, vs...))
}

// ChatSessionIDGT applies the GT predicate on the "chat_session_id" field.
func ChatSessionIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldChatSessionID, v))
}

// ChatSessionIDGTE applies the GTE predicate on the "chat_session_id" field.
func ChatSessionIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldChatSessionID, v))
}

// ChatSessionIDLT applies the LT predicate on the "chat_session_id" field.
func ChatSessionIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldChatSessionID, v))
}

// ChatSessionIDLTE applies the LTE predicate on the "chat_session_id" field.
func ChatSessionIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldChatSessionID, v))
}

// ChatSessionIDContains applies the Contains predicate on the "chat_session_id" field.
func ChatSessionIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldChatSessionID, v))
}

// ChatSessionIDHasPrefix applies the HasPrefix predicate on the "chat_session_id" field.
func ChatSessionIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldChatSessionID, v))
}

// ChatSessionIDHasSuffix applies the HasSuffix predicate on the "chat_session_id" field.
func ChatSessionIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldChatSessionID, v))
}

// ChatSessionIDIsNil applies the IsNil predicate on the "chat_session_id" field.
func ChatSessionIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldChatSessionID))
}

// ChatSessionIDNotNil applies the NotNil predicate on the "chat_session_id" field.
func ChatSessionIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldChatSessionID))
}

// ChatSessionIDEqualFold applies the EqualFold predicate on the "chat_session_id" field.
func ChatSessionIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldChatSessionID, v))
}

// ChatSessionIDContainsFold applies the ContainsFold predicate on the "chat_session_id" field.
func ChatSessionIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldChatSessionID, v))
}

// UITriggerIDEQ applies the EQ predicate on the "ui_trigger_id" field.
func UITriggerIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUITriggerID, v))
}

// UITriggerIDNEQ applies the NEQ predicate on the "ui_trigger_id" field.
func UITriggerIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldUITriggerID, v))
}

// UITriggerIDIn applies the In predicate on the "ui_trigger_id" field.
func UITriggerIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldUITriggerID, vs...))
}

// UITriggerIDNotIn applies the NotIn predicate on the "ui_trigger_id" field.
func UITriggerIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldUITriggerID, vs...))
}

// UITriggerIDGT applies the GT predicate on the "ui_trigger_id" field.
func UITriggerIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldUITriggerID, v))
}

// UITriggerIDGTE applies the GTE predicate on the "ui_trigger_id" field.
func UITriggerIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldUITriggerID, v))
}

// UITriggerIDLT applies the LT predicate on the "ui_trigger_id" field.
func UITriggerIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldUITriggerID, v))
}

// UITriggerIDLTE applies the LTE predicate on the "ui_trigger_id" field.
func UITriggerIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldUITriggerID, v))
}

// UITriggerIDContains applies the Contains predicate on the "ui_trigger_id" field.
func UITriggerIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldUITriggerID, v))
}

// UITriggerIDHasPrefix applies the HasPrefix predicate on the "ui_trigger_id" field.
func UITriggerIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldUITriggerID, v))
}

// UITriggerIDHasSuffix applies the HasSuffix predicate on the "ui_trigger_id" field.
func UITriggerIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldUITriggerID, v))
}

// UITriggerIDIsNil applies the IsNil predicate on the "ui_trigger_id" field.
func UITriggerIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldUITriggerID))
}

// UITriggerIDNotNil applies the NotNil predicate on the "ui_trigger_id" field.
func UITriggerIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldUITriggerID))
}

// UITriggerIDEqualFold applies the EqualFold predicate on the "ui_trigger_id" field.
func UITriggerIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldUITriggerID, v))
}

// UITriggerIDContainsFold applies the ContainsFold predicate on the "ui_trigger_id" field.
func UITriggerIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldUITriggerID, v))
}

// UITriggerSourceEQ applies the EQ predicate on the "ui_trigger_source" field.
func UITriggerSourceEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUITriggerSource, v))
}

// UITriggerSourceNEQ applies the NEQ predicate on the "ui_trigger_source" field.
func UITriggerSourceNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldUITriggerSource, v))
}

// UITriggerSourceIn applies the In predicate on the "ui_trigger_source" field.
func UITriggerSourceIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldUITriggerSource, vs...))
}

// UITriggerSourceNotIn applies the NotIn predicate on the "ui_trigger_source" field.
func UITriggerSourceNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldUITriggerSource, vs...))
}

// UITriggerSourceGT applies the GT predicate on the "ui_trigger_source" field.
func UITriggerSourceGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldUITriggerSource, v))
}

// UITriggerSourceGTE applies the GTE predicate on the "ui_trigger_source" field.
func UITriggerSourceGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldUITriggerSource, v))
}

// UITriggerSourceLT applies the LT predicate on the "ui_trigger_source" field.
func UITriggerSourceLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldUITriggerSource, v))
}

// UITriggerSourceLTE applies the LTE predicate on the "ui_trigger_source" field.
func UITriggerSourceLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldUITriggerSource, v))
}

// UITriggerSourceContains applies the Contains predicate on the "ui_trigger_source" field.
func UITriggerSourceContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldUITriggerSource, v))
}

// UITriggerSourceHasPrefix applies the HasPrefix predicate on the "ui_trigger_source" field.
func UITriggerSourceHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldUITriggerSource, v))
}

// UITriggerSourceHasSuffix applies the HasSuffix predicate on the "ui_trigger_source" field.
func UITriggerSourceHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldUITriggerSource, v))
}

// UITriggerSourceIsNil applies the IsNil predicate on the "ui_trigger_source" field.
func UITriggerSourceIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldUITriggerSource))
}

// UITriggerSourceNotNil applies the NotNil predicate on the "ui_trigger_source" field.
func UITriggerSourceNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldUITriggerSource))
}

// UITriggerSourceEqualFold applies the EqualFold predicate on the "ui_trigger_source" field.
func UITriggerSourceEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldUITriggerSource, v))
}

// UITriggerSourceContainsFold applies the ContainsFold predicate on the "ui_trigger_source" field.
func UITriggerSourceContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldUITriggerSource, v))
}

// UITriggerMetadataIsNil applies the IsNil predicate on the "ui_trigger_metadata" field.
func UITriggerMetadataIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldUITriggerMetadata))
}

// UITriggerMetadataNotNil applies the NotNil predicate on the "ui_trigger_metadata" field.
func UITriggerMetadataNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldUITriggerMetadata))
}

// UITriggerAtEQ applies the EQ predicate on the "ui_trigger_at" field.
func UITriggerAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldUITriggerAt, v))
}

// UITriggerAtNEQ applies the NEQ predicate on the "ui_trigger_at" field.
func UITriggerAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldUITriggerAt, v))
}

// UITriggerAtIn applies the In predicate on the "ui_trigger_at" field.
func UITriggerAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldUITriggerAt, vs...))
}

// UITriggerAtNotIn applies the NotIn predicate on the "ui_trigger_at" field.
func UITriggerAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldUITriggerAt, vs...))
}

// UITriggerAtGT applies the GT predicate on the "ui_trigger_at" field.
func UITriggerAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldUITriggerAt, v))
}

// UITriggerAtGTE applies the GTE predicate on the "ui_trigger_at" field.
func UITriggerAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldUITriggerAt, v))
}

// UITriggerAtLT applies the LT predicate on the "ui_trigger_at" field.
func UITriggerAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldUITriggerAt, v))
}

// UITriggerAtLTE applies the LTE predicate on the "ui_trigger_at" field.
func UITriggerAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldUITriggerAt, v))
}

// UITriggerAtIsNil applies the IsNil predicate on the "ui_trigger_at" field.
func UITriggerAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldUITriggerAt))
}

// UITriggerAtNotNil applies the NotNil predicate on the "ui_trigger_at" field.
func UITriggerAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldUITriggerAt))
}

// RunSummaryMessageIDEQ applies the EQ predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDNEQ applies the NEQ predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDIn applies the In predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldRunSummaryMessageID, vs...))
}

// RunSummaryMessageIDNotIn applies the NotIn predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldRunSummaryMessageID, vs...))
}

// RunSummaryMessageIDGT applies the GT predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDGTE applies the GTE predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDLT applies the LT predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDLTE applies the LTE predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDContains applies the Contains predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDHasPrefix applies the HasPrefix predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDHasSuffix applies the HasSuffix predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDIsNil applies the IsNil predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldRunSummaryMessageID))
}

// RunSummaryMessageIDNotNil applies the NotNil predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldRunSummaryMessageID))
}

// RunSummaryMessageIDEqualFold applies the EqualFold predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldRunSummaryMessageID, v))
}

// RunSummaryMessageIDContainsFold applies the ContainsFold predicate on the "run_summary_message_id" field.
func RunSummaryMessageIDContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldRunSummaryMessageID, v))
}

// RecommendedConfigIsNil applies the IsNil predicate on the "recommended_config" field.
func RecommendedConfigIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldRecommendedConfig))
}

// RecommendedConfigNotNil applies the NotNil predicate on the "recommended_config" field.
func RecommendedConfigNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldRecommendedConfig))
}

// QueuedAtEQ applies the EQ predicate on the "queued_at" field.
func QueuedAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldQueuedAt, v))
}

// QueuedAtNEQ applies the NEQ predicate on the "queued_at" field.
func QueuedAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldQueuedAt, v))
}

// QueuedAtIn applies the In predicate on the "queued_at" field.
func QueuedAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldQueuedAt, vs...))
}

// QueuedAtNotIn applies the NotIn predicate on the "queued_at" field.
func QueuedAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldQueuedAt, vs...))
}

// QueuedAtGT applies the GT predicate on the "queued_at" field.
func QueuedAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldQueuedAt, v))
}

// QueuedAtGTE applies the GTE predicate on the "queued_at" field.
func QueuedAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldQueuedAt, v))
}

// QueuedAtLT applies the LT predicate on the "queued_at" field.
func QueuedAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldQueuedAt, v))
}

// QueuedAtLTE applies the LTE predicate on the "queued_at" field.
func QueuedAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldQueuedAt, v))
}

// QueuedAtIsNil applies the IsNil predicate on the "queued_at" field.
func QueuedAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldQueuedAt))
}

// QueuedAtNotNil applies the NotNil predicate on the "queued_at" field.
func QueuedAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldQueuedAt))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.Run {
	return predicate.Run(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.Run {
	return predicate.Run(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.Run {
	return predicate.Run(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.Run {
	return predicate.Run(sql.FieldContainsFold(FieldClaimedBy, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Run {
	return predicate.Run(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Run {
	return predicate.Run(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Run {
	return predicate.Run(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Run {
	return predicate.Run(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScenarioSuite applies the HasEdge predicate on the "scenario_suite" edge.
func HasScenarioSuite() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ScenarioSuiteTable, ScenarioSuiteColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScenarioSuiteWith applies the HasEdge predicate on the "scenario_suite" edge with a given conditions (other predicates).
func HasScenarioSuiteWith(preds ...predicate.ScenarioSuite) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newScenarioSuiteStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.Evaluation) predicate.Run {
	return predicate.Run(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Run) predicate.Run {
	return predicate.Run(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Run) predicate.Run {
	return predicate.Run(sql.NotPredicates(p))
}
