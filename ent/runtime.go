// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pupilplay/engine/ent/actionevent"
	"github.com/pupilplay/engine/ent/episode"
	"github.com/pupilplay/engine/ent/llmrequestevent"
	"github.com/pupilplay/engine/ent/schema"
	"github.com/pupilplay/engine/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actioneventMixin := schema.ActionEvent{}.Mixin()
	actioneventMixinFields0 := actioneventMixin[0].Fields()
	_ = actioneventMixinFields0
	actioneventFields := schema.ActionEvent{}.Fields()
	_ = actioneventFields
	// actioneventDescTimestamp is the schema descriptor for timestamp field.
	actioneventDescTimestamp := actioneventMixinFields0[1].Descriptor()
	// actionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	actionevent.DefaultTimestamp = actioneventDescTimestamp.Default.(func() time.Time)
	// actioneventDescFailure is the schema descriptor for failure field.
	actioneventDescFailure := actioneventFields[4].Descriptor()
	// actionevent.DefaultFailure holds the default value on creation for the failure field.
	actionevent.DefaultFailure = actioneventDescFailure.Default.(string)
	// actioneventDescDetail is the schema descriptor for detail field.
	actioneventDescDetail := actioneventFields[5].Descriptor()
	// actionevent.DefaultDetail holds the default value on creation for the detail field.
	actionevent.DefaultDetail = actioneventDescDetail.Default.(string)
	// actioneventDescDurationMs is the schema descriptor for duration_ms field.
	actioneventDescDurationMs := actioneventFields[6].Descriptor()
	// actionevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	actionevent.DefaultDurationMs = actioneventDescDurationMs.Default.(int64)
	episodeFields := schema.Episode{}.Fields()
	_ = episodeFields
	// episodeDescVersion is the schema descriptor for version field.
	episodeDescVersion := episodeFields[1].Descriptor()
	// episode.DefaultVersion holds the default value on creation for the version field.
	episode.DefaultVersion = episodeDescVersion.Default.(int64)
	// episodeDescUpdatedAt is the schema descriptor for updated_at field.
	episodeDescUpdatedAt := episodeFields[4].Descriptor()
	// episode.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	episode.DefaultUpdatedAt = episodeDescUpdatedAt.Default.(func() time.Time)
	// episode.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	episode.UpdateDefaultUpdatedAt = episodeDescUpdatedAt.UpdateDefault.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescTier is the schema descriptor for tier field.
	llmrequesteventDescTier := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultTier holds the default value on creation for the tier field.
	llmrequestevent.DefaultTier = llmrequesteventDescTier.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescTier is the schema descriptor for tier field.
	turneventDescTier := turneventFields[4].Descriptor()
	// turnevent.DefaultTier holds the default value on creation for the tier field.
	turnevent.DefaultTier = turneventDescTier.Default.(string)
	// turneventDescDegraded is the schema descriptor for degraded field.
	turneventDescDegraded := turneventFields[5].Descriptor()
	// turnevent.DefaultDegraded holds the default value on creation for the degraded field.
	turnevent.DefaultDegraded = turneventDescDegraded.Default.(bool)
	// turneventDescRounds is the schema descriptor for rounds field.
	turneventDescRounds := turneventFields[6].Descriptor()
	// turnevent.DefaultRounds holds the default value on creation for the rounds field.
	turnevent.DefaultRounds = turneventDescRounds.Default.(int)
	// turneventDescDifficulty is the schema descriptor for difficulty field.
	turneventDescDifficulty := turneventFields[7].Descriptor()
	// turnevent.DefaultDifficulty holds the default value on creation for the difficulty field.
	turnevent.DefaultDifficulty = turneventDescDifficulty.Default.(float64)
}
