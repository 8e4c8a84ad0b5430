// Code generated by ent, DO NOT EDIT.

package interpretationtask

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/templeworks/lingqian/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldUserID, v))
}

// DeityID applies equality check predicate on the "deity_id" field. It's identical to DeityIDEQ.
func DeityID(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldDeityID, v))
}

// Temple applies equality check predicate on the "temple" field. It's identical to TempleEQ.
func Temple(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldTemple, v))
}

// FortuneNumber applies equality check predicate on the "fortune_number" field. It's identical to FortuneNumberEQ.
func FortuneNumber(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldFortuneNumber, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldQuestion, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldLanguage, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldProgress, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldStatusCode, v))
}

// StatusMessage applies equality check predicate on the "status_message" field. It's identical to StatusMessageEQ.
func StatusMessage(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldStatusMessage, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldPriority, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldCancelRequested, v))
}

// ClaimedBy applies equality check predicate on the "claimed_by" field. It's identical to ClaimedByEQ.
func ClaimedBy(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldClaimedBy, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldRetryCount, v))
}

// SubmittedAt applies equality check predicate on the "submitted_at" field. It's identical to SubmittedAtEQ.
func SubmittedAt(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldSubmittedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldCompletedAt, v))
}

// LastActivityAt applies equality check predicate on the "last_activity_at" field. It's identical to LastActivityAtEQ.
func LastActivityAt(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldLastActivityAt, v))
}

// ResponseText applies equality check predicate on the "response_text" field. It's identical to ResponseTextEQ.
func ResponseText(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldResponseText, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldConfidence, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ErrorCategory applies equality check predicate on the "error_category" field. It's identical to ErrorCategoryEQ.
func ErrorCategory(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldErrorCategory, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldErrorMessage, v))
}

// CanGenerateReport applies equality check predicate on the "can_generate_report" field. It's identical to CanGenerateReportEQ.
func CanGenerateReport(v bool) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldCanGenerateReport, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldUserID, v))
}

// DeityIDEQ applies the EQ predicate on the "deity_id" field.
func DeityIDEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldDeityID, v))
}

// DeityIDNEQ applies the NEQ predicate on the "deity_id" field.
func DeityIDNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldDeityID, v))
}

// DeityIDIn applies the In predicate on the "deity_id" field.
func DeityIDIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldDeityID, vs...))
}

// DeityIDNotIn applies the NotIn predicate on the "deity_id" field.
func DeityIDNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldDeityID, vs...))
}

// DeityIDGT applies the GT predicate on the "deity_id" field.
func DeityIDGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldDeityID, v))
}

// DeityIDGTE applies the GTE predicate on the "deity_id" field.
func DeityIDGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldDeityID, v))
}

// DeityIDLT applies the LT predicate on the "deity_id" field.
func DeityIDLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldDeityID, v))
}

// DeityIDLTE applies the LTE predicate on the "deity_id" field.
func DeityIDLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldDeityID, v))
}

// DeityIDContains applies the Contains predicate on the "deity_id" field.
func DeityIDContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldDeityID, v))
}

// DeityIDHasPrefix applies the HasPrefix predicate on the "deity_id" field.
func DeityIDHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldDeityID, v))
}

// DeityIDHasSuffix applies the HasSuffix predicate on the "deity_id" field.
func DeityIDHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldDeityID, v))
}

// DeityIDEqualFold applies the EqualFold predicate on the "deity_id" field.
func DeityIDEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldDeityID, v))
}

// DeityIDContainsFold applies the ContainsFold predicate on the "deity_id" field.
func DeityIDContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldDeityID, v))
}

// TempleEQ applies the EQ predicate on the "temple" field.
func TempleEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldTemple, v))
}

// TempleNEQ applies the NEQ predicate on the "temple" field.
func TempleNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldTemple, v))
}

// TempleIn applies the In predicate on the "temple" field.
func TempleIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldTemple, vs...))
}

// TempleNotIn applies the NotIn predicate on the "temple" field.
func TempleNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldTemple, vs...))
}

// TempleGT applies the GT predicate on the "temple" field.
func TempleGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldTemple, v))
}

// TempleGTE applies the GTE predicate on the "temple" field.
func TempleGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldTemple, v))
}

// TempleLT applies the LT predicate on the "temple" field.
func TempleLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldTemple, v))
}

// TempleLTE applies the LTE predicate on the "temple" field.
func TempleLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldTemple, v))
}

// TempleContains applies the Contains predicate on the "temple" field.
func TempleContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldTemple, v))
}

// TempleHasPrefix applies the HasPrefix predicate on the "temple" field.
func TempleHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldTemple, v))
}

// TempleHasSuffix applies the HasSuffix predicate on the "temple" field.
func TempleHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldTemple, v))
}

// TempleEqualFold applies the EqualFold predicate on the "temple" field.
func TempleEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldTemple, v))
}

// TempleContainsFold applies the ContainsFold predicate on the "temple" field.
func TempleContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldTemple, v))
}

// FortuneNumberEQ applies the EQ predicate on the "fortune_number" field.
func FortuneNumberEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldFortuneNumber, v))
}

// FortuneNumberNEQ applies the NEQ predicate on the "fortune_number" field.
func FortuneNumberNEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldFortuneNumber, v))
}

// FortuneNumberIn applies the In predicate on the "fortune_number" field.
func FortuneNumberIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldFortuneNumber, vs...))
}

// FortuneNumberNotIn applies the NotIn predicate on the "fortune_number" field.
func FortuneNumberNotIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldFortuneNumber, vs...))
}

// FortuneNumberGT applies the GT predicate on the "fortune_number" field.
func FortuneNumberGT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldFortuneNumber, v))
}

// FortuneNumberGTE applies the GTE predicate on the "fortune_number" field.
func FortuneNumberGTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldFortuneNumber, v))
}

// FortuneNumberLT applies the LT predicate on the "fortune_number" field.
func FortuneNumberLT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldFortuneNumber, v))
}

// FortuneNumberLTE applies the LTE predicate on the "fortune_number" field.
func FortuneNumberLTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldFortuneNumber, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldQuestion, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldContext))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldLanguage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldStatus, vs...))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldProgress, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldStatusCode, v))
}

// StatusMessageEQ applies the EQ predicate on the "status_message" field.
func StatusMessageEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldStatusMessage, v))
}

// StatusMessageNEQ applies the NEQ predicate on the "status_message" field.
func StatusMessageNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldStatusMessage, v))
}

// StatusMessageIn applies the In predicate on the "status_message" field.
func StatusMessageIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldStatusMessage, vs...))
}

// StatusMessageNotIn applies the NotIn predicate on the "status_message" field.
func StatusMessageNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldStatusMessage, vs...))
}

// StatusMessageGT applies the GT predicate on the "status_message" field.
func StatusMessageGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldStatusMessage, v))
}

// StatusMessageGTE applies the GTE predicate on the "status_message" field.
func StatusMessageGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldStatusMessage, v))
}

// StatusMessageLT applies the LT predicate on the "status_message" field.
func StatusMessageLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldStatusMessage, v))
}

// StatusMessageLTE applies the LTE predicate on the "status_message" field.
func StatusMessageLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldStatusMessage, v))
}

// StatusMessageContains applies the Contains predicate on the "status_message" field.
func StatusMessageContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldStatusMessage, v))
}

// StatusMessageHasPrefix applies the HasPrefix predicate on the "status_message" field.
func StatusMessageHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldStatusMessage, v))
}

// StatusMessageHasSuffix applies the HasSuffix predicate on the "status_message" field.
func StatusMessageHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldStatusMessage, v))
}

// StatusMessageIsNil applies the IsNil predicate on the "status_message" field.
func StatusMessageIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldStatusMessage))
}

// StatusMessageNotNil applies the NotNil predicate on the "status_message" field.
func StatusMessageNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldStatusMessage))
}

// StatusMessageEqualFold applies the EqualFold predicate on the "status_message" field.
func StatusMessageEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldStatusMessage, v))
}

// StatusMessageContainsFold applies the ContainsFold predicate on the "status_message" field.
func StatusMessageContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldStatusMessage, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldPriority, v))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldCancelRequested, v))
}

// ClaimedByEQ applies the EQ predicate on the "claimed_by" field.
func ClaimedByEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldClaimedBy, v))
}

// ClaimedByNEQ applies the NEQ predicate on the "claimed_by" field.
func ClaimedByNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldClaimedBy, v))
}

// ClaimedByIn applies the In predicate on the "claimed_by" field.
func ClaimedByIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldClaimedBy, vs...))
}

// ClaimedByNotIn applies the NotIn predicate on the "claimed_by" field.
func ClaimedByNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldClaimedBy, vs...))
}

// ClaimedByGT applies the GT predicate on the "claimed_by" field.
func ClaimedByGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldClaimedBy, v))
}

// ClaimedByGTE applies the GTE predicate on the "claimed_by" field.
func ClaimedByGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldClaimedBy, v))
}

// ClaimedByLT applies the LT predicate on the "claimed_by" field.
func ClaimedByLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldClaimedBy, v))
}

// ClaimedByLTE applies the LTE predicate on the "claimed_by" field.
func ClaimedByLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldClaimedBy, v))
}

// ClaimedByContains applies the Contains predicate on the "claimed_by" field.
func ClaimedByContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldClaimedBy, v))
}

// ClaimedByHasPrefix applies the HasPrefix predicate on the "claimed_by" field.
func ClaimedByHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldClaimedBy, v))
}

// ClaimedByHasSuffix applies the HasSuffix predicate on the "claimed_by" field.
func ClaimedByHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldClaimedBy, v))
}

// ClaimedByIsNil applies the IsNil predicate on the "claimed_by" field.
func ClaimedByIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldClaimedBy))
}

// ClaimedByNotNil applies the NotNil predicate on the "claimed_by" field.
func ClaimedByNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldClaimedBy))
}

// ClaimedByEqualFold applies the EqualFold predicate on the "claimed_by" field.
func ClaimedByEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldClaimedBy, v))
}

// ClaimedByContainsFold applies the ContainsFold predicate on the "claimed_by" field.
func ClaimedByContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldClaimedBy, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldRetryCount, v))
}

// SubmittedAtEQ applies the EQ predicate on the "submitted_at" field.
func SubmittedAtEQ(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldSubmittedAt, v))
}

// SubmittedAtNEQ applies the NEQ predicate on the "submitted_at" field.
func SubmittedAtNEQ(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldSubmittedAt, v))
}

// SubmittedAtIn applies the In predicate on the "submitted_at" field.
func SubmittedAtIn(vs ...time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldSubmittedAt, vs...))
}

// SubmittedAtNotIn applies the NotIn predicate on the "submitted_at" field.
func SubmittedAtNotIn(vs ...time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldSubmittedAt, vs...))
}

// SubmittedAtGT applies the GT predicate on the "submitted_at" field.
func SubmittedAtGT(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldSubmittedAt, v))
}

// SubmittedAtGTE applies the GTE predicate on the "submitted_at" field.
func SubmittedAtGTE(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldSubmittedAt, v))
}

// SubmittedAtLT applies the LT predicate on the "submitted_at" field.
func SubmittedAtLT(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldSubmittedAt, v))
}

// SubmittedAtLTE applies the LTE predicate on the "submitted_at" field.
func SubmittedAtLTE(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldSubmittedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldCompletedAt))
}

// LastActivityAtEQ applies the EQ predicate on the "last_activity_at" field.
func LastActivityAtEQ(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldLastActivityAt, v))
}

// LastActivityAtNEQ applies the NEQ predicate on the "last_activity_at" field.
func LastActivityAtNEQ(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldLastActivityAt, v))
}

// LastActivityAtIn applies the In predicate on the "last_activity_at" field.
func LastActivityAtIn(vs ...time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldLastActivityAt, vs...))
}

// LastActivityAtNotIn applies the NotIn predicate on the "last_activity_at" field.
func LastActivityAtNotIn(vs ...time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldLastActivityAt, vs...))
}

// LastActivityAtGT applies the GT predicate on the "last_activity_at" field.
func LastActivityAtGT(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldLastActivityAt, v))
}

// LastActivityAtGTE applies the GTE predicate on the "last_activity_at" field.
func LastActivityAtGTE(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldLastActivityAt, v))
}

// LastActivityAtLT applies the LT predicate on the "last_activity_at" field.
func LastActivityAtLT(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldLastActivityAt, v))
}

// LastActivityAtLTE applies the LTE predicate on the "last_activity_at" field.
func LastActivityAtLTE(v time.Time) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldLastActivityAt, v))
}

// LastActivityAtIsNil applies the IsNil predicate on the "last_activity_at" field.
func LastActivityAtIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldLastActivityAt))
}

// LastActivityAtNotNil applies the NotNil predicate on the "last_activity_at" field.
func LastActivityAtNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldLastActivityAt))
}

// ResponseTextEQ applies the EQ predicate on the "response_text" field.
func ResponseTextEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldResponseText, v))
}

// ResponseTextNEQ applies the NEQ predicate on the "response_text" field.
func ResponseTextNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldResponseText, v))
}

// ResponseTextIn applies the In predicate on the "response_text" field.
func ResponseTextIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldResponseText, vs...))
}

// ResponseTextNotIn applies the NotIn predicate on the "response_text" field.
func ResponseTextNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldResponseText, vs...))
}

// ResponseTextGT applies the GT predicate on the "response_text" field.
func ResponseTextGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldResponseText, v))
}

// ResponseTextGTE applies the GTE predicate on the "response_text" field.
func ResponseTextGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldResponseText, v))
}

// ResponseTextLT applies the LT predicate on the "response_text" field.
func ResponseTextLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldResponseText, v))
}

// ResponseTextLTE applies the LTE predicate on the "response_text" field.
func ResponseTextLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldResponseText, v))
}

// ResponseTextContains applies the Contains predicate on the "response_text" field.
func ResponseTextContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldResponseText, v))
}

// ResponseTextHasPrefix applies the HasPrefix predicate on the "response_text" field.
func ResponseTextHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldResponseText, v))
}

// ResponseTextHasSuffix applies the HasSuffix predicate on the "response_text" field.
func ResponseTextHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldResponseText, v))
}

// ResponseTextIsNil applies the IsNil predicate on the "response_text" field.
func ResponseTextIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldResponseText))
}

// ResponseTextNotNil applies the NotNil predicate on the "response_text" field.
func ResponseTextNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldResponseText))
}

// ResponseTextEqualFold applies the EqualFold predicate on the "response_text" field.
func ResponseTextEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldResponseText, v))
}

// ResponseTextContainsFold applies the ContainsFold predicate on the "response_text" field.
func ResponseTextContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldResponseText, v))
}

// ResponseSectionsIsNil applies the IsNil predicate on the "response_sections" field.
func ResponseSectionsIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldResponseSections))
}

// ResponseSectionsNotNil applies the NotNil predicate on the "response_sections" field.
func ResponseSectionsNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldResponseSections))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldConfidence))
}

// SourcesIsNil applies the IsNil predicate on the "sources" field.
func SourcesIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldSources))
}

// SourcesNotNil applies the NotNil predicate on the "sources" field.
func SourcesNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldSources))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int64) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIsNil applies the IsNil predicate on the "processing_time_ms" field.
func ProcessingTimeMsIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldProcessingTimeMs))
}

// ProcessingTimeMsNotNil applies the NotNil predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldProcessingTimeMs))
}

// ErrorCategoryEQ applies the EQ predicate on the "error_category" field.
func ErrorCategoryEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldErrorCategory, v))
}

// ErrorCategoryNEQ applies the NEQ predicate on the "error_category" field.
func ErrorCategoryNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldErrorCategory, v))
}

// ErrorCategoryIn applies the In predicate on the "error_category" field.
func ErrorCategoryIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldErrorCategory, vs...))
}

// ErrorCategoryNotIn applies the NotIn predicate on the "error_category" field.
func ErrorCategoryNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldErrorCategory, vs...))
}

// ErrorCategoryGT applies the GT predicate on the "error_category" field.
func ErrorCategoryGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldErrorCategory, v))
}

// ErrorCategoryGTE applies the GTE predicate on the "error_category" field.
func ErrorCategoryGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldErrorCategory, v))
}

// ErrorCategoryLT applies the LT predicate on the "error_category" field.
func ErrorCategoryLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldErrorCategory, v))
}

// ErrorCategoryLTE applies the LTE predicate on the "error_category" field.
func ErrorCategoryLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldErrorCategory, v))
}

// ErrorCategoryContains applies the Contains predicate on the "error_category" field.
func ErrorCategoryContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldErrorCategory, v))
}

// ErrorCategoryHasPrefix applies the HasPrefix predicate on the "error_category" field.
func ErrorCategoryHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldErrorCategory, v))
}

// ErrorCategoryHasSuffix applies the HasSuffix predicate on the "error_category" field.
func ErrorCategoryHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldErrorCategory, v))
}

// ErrorCategoryIsNil applies the IsNil predicate on the "error_category" field.
func ErrorCategoryIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldErrorCategory))
}

// ErrorCategoryNotNil applies the NotNil predicate on the "error_category" field.
func ErrorCategoryNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldErrorCategory))
}

// ErrorCategoryEqualFold applies the EqualFold predicate on the "error_category" field.
func ErrorCategoryEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldErrorCategory, v))
}

// ErrorCategoryContainsFold applies the ContainsFold predicate on the "error_category" field.
func ErrorCategoryContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldErrorCategory, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CanGenerateReportEQ applies the EQ predicate on the "can_generate_report" field.
func CanGenerateReportEQ(v bool) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldEQ(FieldCanGenerateReport, v))
}

// CanGenerateReportNEQ applies the NEQ predicate on the "can_generate_report" field.
func CanGenerateReportNEQ(v bool) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.FieldNEQ(FieldCanGenerateReport, v))
}

// HasTransitions applies the HasEdge predicate on the "transitions" edge.
func HasTransitions() predicate.InterpretationTask {
	return predicate.InterpretationTask(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransitionsTable, TransitionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransitionsWith applies the HasEdge predicate on the "transitions" edge with a given conditions (other predicates).
func HasTransitionsWith(preds ...predicate.TaskTransition) predicate.InterpretationTask {
	return predicate.InterpretationTask(func(s *sql.Selector) {
		step := newTransitionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InterpretationTask) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InterpretationTask) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InterpretationTask) predicate.InterpretationTask {
	return predicate.InterpretationTask(sql.NotPredicates(p))
}
