// Code generated by ent, DO NOT EDIT.

package actionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/pupilplay/engine/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// EpisodeID applies equality check predicate on the "episode_id" field. It's identical to EpisodeIDEQ.
func EpisodeID(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldEpisodeID, v))
}

// CallID applies equality check predicate on the "call_id" field. It's identical to CallIDEQ.
func CallID(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldCallID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldName, v))
}

// Ok applies equality check predicate on the "ok" field. It's identical to OkEQ.
func Ok(v bool) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldOk, v))
}

// Failure applies equality check predicate on the "failure" field. It's identical to FailureEQ.
func Failure(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldFailure, v))
}

// Detail applies equality check predicate on the "detail" field. It's identical to DetailEQ.
func Detail(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldDetail, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldDurationMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// EpisodeIDEQ applies the EQ predicate on the "episode_id" field.
func EpisodeIDEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldEpisodeID, v))
}

// EpisodeIDNEQ applies the NEQ predicate on the "episode_id" field.
func EpisodeIDNEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldEpisodeID, v))
}

// EpisodeIDIn applies the In predicate on the "episode_id" field.
func EpisodeIDIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldIn(FieldEpisodeID, vs...))
}

// EpisodeIDNotIn applies the NotIn predicate on the "episode_id" field.
func EpisodeIDNotIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNotIn(FieldEpisodeID, vs...))
}

// EpisodeIDGT applies the GT predicate on the "episode_id" field.
func EpisodeIDGT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGT(FieldEpisodeID, v))
}

// EpisodeIDGTE applies the GTE predicate on the "episode_id" field.
func EpisodeIDGTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGTE(FieldEpisodeID, v))
}

// EpisodeIDLT applies the LT predicate on the "episode_id" field.
func EpisodeIDLT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLT(FieldEpisodeID, v))
}

// EpisodeIDLTE applies the LTE predicate on the "episode_id" field.
func EpisodeIDLTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLTE(FieldEpisodeID, v))
}

// EpisodeIDContains applies the Contains predicate on the "episode_id" field.
func EpisodeIDContains(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContains(FieldEpisodeID, v))
}

// EpisodeIDHasPrefix applies the HasPrefix predicate on the "episode_id" field.
func EpisodeIDHasPrefix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasPrefix(FieldEpisodeID, v))
}

// EpisodeIDHasSuffix applies the HasSuffix predicate on the "episode_id" field.
func EpisodeIDHasSuffix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasSuffix(FieldEpisodeID, v))
}

// EpisodeIDEqualFold applies the EqualFold predicate on the "episode_id" field.
func EpisodeIDEqualFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEqualFold(FieldEpisodeID, v))
}

// EpisodeIDContainsFold applies the ContainsFold predicate on the "episode_id" field.
func EpisodeIDContainsFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContainsFold(FieldEpisodeID, v))
}

// CallIDEQ applies the EQ predicate on the "call_id" field.
func CallIDEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldCallID, v))
}

// CallIDNEQ applies the NEQ predicate on the "call_id" field.
func CallIDNEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldCallID, v))
}

// CallIDIn applies the In predicate on the "call_id" field.
func CallIDIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldIn(FieldCallID, vs...))
}

// CallIDNotIn applies the NotIn predicate on the "call_id" field.
func CallIDNotIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNotIn(FieldCallID, vs...))
}

// CallIDGT applies the GT predicate on the "call_id" field.
func CallIDGT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGT(FieldCallID, v))
}

// CallIDGTE applies the GTE predicate on the "call_id" field.
func CallIDGTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGTE(FieldCallID, v))
}

// CallIDLT applies the LT predicate on the "call_id" field.
func CallIDLT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLT(FieldCallID, v))
}

// CallIDLTE applies the LTE predicate on the "call_id" field.
func CallIDLTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLTE(FieldCallID, v))
}

// CallIDContains applies the Contains predicate on the "call_id" field.
func CallIDContains(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContains(FieldCallID, v))
}

// CallIDHasPrefix applies the HasPrefix predicate on the "call_id" field.
func CallIDHasPrefix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasPrefix(FieldCallID, v))
}

// CallIDHasSuffix applies the HasSuffix predicate on the "call_id" field.
func CallIDHasSuffix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasSuffix(FieldCallID, v))
}

// CallIDEqualFold applies the EqualFold predicate on the "call_id" field.
func CallIDEqualFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEqualFold(FieldCallID, v))
}

// CallIDContainsFold applies the ContainsFold predicate on the "call_id" field.
func CallIDContainsFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContainsFold(FieldCallID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContainsFold(FieldName, v))
}

// OkEQ applies the EQ predicate on the "ok" field.
func OkEQ(v bool) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldOk, v))
}

// OkNEQ applies the NEQ predicate on the "ok" field.
func OkNEQ(v bool) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldOk, v))
}

// FailureEQ applies the EQ predicate on the "failure" field.
func FailureEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldFailure, v))
}

// FailureNEQ applies the NEQ predicate on the "failure" field.
func FailureNEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldFailure, v))
}

// FailureIn applies the In predicate on the "failure" field.
func FailureIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldIn(FieldFailure, vs...))
}

// FailureNotIn applies the NotIn predicate on the "failure" field.
func FailureNotIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNotIn(FieldFailure, vs...))
}

// FailureGT applies the GT predicate on the "failure" field.
func FailureGT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGT(FieldFailure, v))
}

// FailureGTE applies the GTE predicate on the "failure" field.
func FailureGTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGTE(FieldFailure, v))
}

// FailureLT applies the LT predicate on the "failure" field.
func FailureLT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLT(FieldFailure, v))
}

// FailureLTE applies the LTE predicate on the "failure" field.
func FailureLTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLTE(FieldFailure, v))
}

// FailureContains applies the Contains predicate on the "failure" field.
func FailureContains(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContains(FieldFailure, v))
}

// FailureHasPrefix applies the HasPrefix predicate on the "failure" field.
func FailureHasPrefix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasPrefix(FieldFailure, v))
}

// FailureHasSuffix applies the HasSuffix predicate on the "failure" field.
func FailureHasSuffix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasSuffix(FieldFailure, v))
}

// FailureEqualFold applies the EqualFold predicate on the "failure" field.
func FailureEqualFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEqualFold(FieldFailure, v))
}

// FailureContainsFold applies the ContainsFold predicate on the "failure" field.
func FailureContainsFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContainsFold(FieldFailure, v))
}

// DetailEQ applies the EQ predicate on the "detail" field.
func DetailEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldDetail, v))
}

// DetailNEQ applies the NEQ predicate on the "detail" field.
func DetailNEQ(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldDetail, v))
}

// DetailIn applies the In predicate on the "detail" field.
func DetailIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldIn(FieldDetail, vs...))
}

// DetailNotIn applies the NotIn predicate on the "detail" field.
func DetailNotIn(vs ...string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNotIn(FieldDetail, vs...))
}

// DetailGT applies the GT predicate on the "detail" field.
func DetailGT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGT(FieldDetail, v))
}

// DetailGTE applies the GTE predicate on the "detail" field.
func DetailGTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGTE(FieldDetail, v))
}

// DetailLT applies the LT predicate on the "detail" field.
func DetailLT(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLT(FieldDetail, v))
}

// DetailLTE applies the LTE predicate on the "detail" field.
func DetailLTE(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLTE(FieldDetail, v))
}

// DetailContains applies the Contains predicate on the "detail" field.
func DetailContains(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContains(FieldDetail, v))
}

// DetailHasPrefix applies the HasPrefix predicate on the "detail" field.
func DetailHasPrefix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasPrefix(FieldDetail, v))
}

// DetailHasSuffix applies the HasSuffix predicate on the "detail" field.
func DetailHasSuffix(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldHasSuffix(FieldDetail, v))
}

// DetailEqualFold applies the EqualFold predicate on the "detail" field.
func DetailEqualFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEqualFold(FieldDetail, v))
}

// DetailContainsFold applies the ContainsFold predicate on the "detail" field.
func DetailContainsFold(v string) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldContainsFold(FieldDetail, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ActionEvent {
	return predicate.ActionEvent(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ActionEvent) predicate.ActionEvent {
	return predicate.ActionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ActionEvent) predicate.ActionEvent {
	return predicate.ActionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ActionEvent) predicate.ActionEvent {
	return predicate.ActionEvent(sql.NotPredicates(p))
}
