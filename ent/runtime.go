// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/assaylab/assay/ent/candidate"
	"github.com/assaylab/assay/ent/chatsession"
	"github.com/assaylab/assay/ent/evaluation"
	"github.com/assaylab/assay/ent/issue"
	"github.com/assaylab/assay/ent/message"
	"github.com/assaylab/assay/ent/problemspec"
	"github.com/assaylab/assay/ent/project"
	"github.com/assaylab/assay/ent/run"
	"github.com/assaylab/assay/ent/scenariosuite"
	"github.com/assaylab/assay/ent/schema"
	"github.com/assaylab/assay/ent/snapshot"
	"github.com/assaylab/assay/ent/worldmodel"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescCreatedAt is the schema descriptor for created_at field.
	candidateDescCreatedAt := candidateFields[10].Descriptor()
	// candidate.DefaultCreatedAt holds the default value on creation for the created_at field.
	candidate.DefaultCreatedAt = candidateDescCreatedAt.Default.(func() time.Time)
	// candidateDescUpdatedAt is the schema descriptor for updated_at field.
	candidateDescUpdatedAt := candidateFields[11].Descriptor()
	// candidate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	candidate.DefaultUpdatedAt = candidateDescUpdatedAt.Default.(func() time.Time)
	// candidate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	candidate.UpdateDefaultUpdatedAt = candidateDescUpdatedAt.UpdateDefault.(func() time.Time)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[4].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescCreatedAt is the schema descriptor for created_at field.
	evaluationDescCreatedAt := evaluationFields[8].Descriptor()
	// evaluation.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluation.DefaultCreatedAt = evaluationDescCreatedAt.Default.(func() time.Time)
	issueFields := schema.Issue{}.Fields()
	_ = issueFields
	// issueDescCreatedAt is the schema descriptor for created_at field.
	issueDescCreatedAt := issueFields[10].Descriptor()
	// issue.DefaultCreatedAt holds the default value on creation for the created_at field.
	issue.DefaultCreatedAt = issueDescCreatedAt.Default.(func() time.Time)
	// issueDescUpdatedAt is the schema descriptor for updated_at field.
	issueDescUpdatedAt := issueFields[11].Descriptor()
	// issue.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	issue.DefaultUpdatedAt = issueDescUpdatedAt.Default.(func() time.Time)
	// issue.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	issue.UpdateDefaultUpdatedAt = issueDescUpdatedAt.UpdateDefault.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	problemspecFields := schema.ProblemSpec{}.Fields()
	_ = problemspecFields
	// problemspecDescCreatedAt is the schema descriptor for created_at field.
	problemspecDescCreatedAt := problemspecFields[7].Descriptor()
	// problemspec.DefaultCreatedAt holds the default value on creation for the created_at field.
	problemspec.DefaultCreatedAt = problemspecDescCreatedAt.Default.(func() time.Time)
	// problemspecDescUpdatedAt is the schema descriptor for updated_at field.
	problemspecDescUpdatedAt := problemspecFields[8].Descriptor()
	// problemspec.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	problemspec.DefaultUpdatedAt = problemspecDescUpdatedAt.Default.(func() time.Time)
	// problemspec.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	problemspec.UpdateDefaultUpdatedAt = problemspecDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescEphemeral is the schema descriptor for ephemeral field.
	projectDescEphemeral := projectFields[3].Descriptor()
	// project.DefaultEphemeral holds the default value on creation for the ephemeral field.
	project.DefaultEphemeral = projectDescEphemeral.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescErrorSummary is the schema descriptor for error_summary field.
	runDescErrorSummary := runFields[6].Descriptor()
	// run.ErrorSummaryValidator is a validator for the "error_summary" field. It is called by the builders before save.
	run.ErrorSummaryValidator = runDescErrorSummary.Validators[0].(func(string) error)
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[7].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
	scenariosuiteFields := schema.ScenarioSuite{}.Fields()
	_ = scenariosuiteFields
	// scenariosuiteDescCreatedAt is the schema descriptor for created_at field.
	scenariosuiteDescCreatedAt := scenariosuiteFields[5].Descriptor()
	// scenariosuite.DefaultCreatedAt holds the default value on creation for the created_at field.
	scenariosuite.DefaultCreatedAt = scenariosuiteDescCreatedAt.Default.(func() time.Time)
	// scenariosuiteDescUpdatedAt is the schema descriptor for updated_at field.
	scenariosuiteDescUpdatedAt := scenariosuiteFields[6].Descriptor()
	// scenariosuite.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scenariosuite.DefaultUpdatedAt = scenariosuiteDescUpdatedAt.Default.(func() time.Time)
	// scenariosuite.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scenariosuite.UpdateDefaultUpdatedAt = scenariosuiteDescUpdatedAt.UpdateDefault.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescCreatedAt is the schema descriptor for created_at field.
	snapshotDescCreatedAt := snapshotFields[8].Descriptor()
	// snapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	snapshot.DefaultCreatedAt = snapshotDescCreatedAt.Default.(func() time.Time)
	// snapshotDescUpdatedAt is the schema descriptor for updated_at field.
	snapshotDescUpdatedAt := snapshotFields[9].Descriptor()
	// snapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	snapshot.DefaultUpdatedAt = snapshotDescUpdatedAt.Default.(func() time.Time)
	// snapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	snapshot.UpdateDefaultUpdatedAt = snapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	worldmodelFields := schema.WorldModel{}.Fields()
	_ = worldmodelFields
	// worldmodelDescCreatedAt is the schema descriptor for created_at field.
	worldmodelDescCreatedAt := worldmodelFields[3].Descriptor()
	// worldmodel.DefaultCreatedAt holds the default value on creation for the created_at field.
	worldmodel.DefaultCreatedAt = worldmodelDescCreatedAt.Default.(func() time.Time)
	// worldmodelDescUpdatedAt is the schema descriptor for updated_at field.
	worldmodelDescUpdatedAt := worldmodelFields[4].Descriptor()
	// worldmodel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	worldmodel.DefaultUpdatedAt = worldmodelDescUpdatedAt.Default.(func() time.Time)
	// worldmodel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	worldmodel.UpdateDefaultUpdatedAt = worldmodelDescUpdatedAt.UpdateDefault.(func() time.Time)
}
