// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/atriumhq/atrium/pkg/storage/ent/choice"
	"github.com/atriumhq/atrium/pkg/storage/ent/eventlog"
	"github.com/atriumhq/atrium/pkg/storage/ent/graphedge"
	"github.com/atriumhq/atrium/pkg/storage/ent/node"
	"github.com/atriumhq/atrium/pkg/storage/ent/schema"
	"github.com/atriumhq/atrium/pkg/storage/ent/session"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	choiceFields := schema.Choice{}.Fields()
	_ = choiceFields
	// choiceDescLabel is the schema descriptor for label field.
	choiceDescLabel := choiceFields[1].Descriptor()
	// choice.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	choice.LabelValidator = choiceDescLabel.Validators[0].(func(string) error)
	// choiceDescText is the schema descriptor for text field.
	choiceDescText := choiceFields[2].Descriptor()
	// choice.TextValidator is a validator for the "text" field. It is called by the builders before save.
	choice.TextValidator = choiceDescText.Validators[0].(func(string) error)
	// choiceDescIsChosen is the schema descriptor for is_chosen field.
	choiceDescIsChosen := choiceFields[3].Descriptor()
	// choice.DefaultIsChosen holds the default value on creation for the is_chosen field.
	choice.DefaultIsChosen = choiceDescIsChosen.Default.(bool)
	eventlogFields := schema.EventLog{}.Fields()
	_ = eventlogFields
	// eventlogDescSource is the schema descriptor for source field.
	eventlogDescSource := eventlogFields[1].Descriptor()
	// eventlog.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	eventlog.SourceValidator = eventlogDescSource.Validators[0].(func(string) error)
	// eventlogDescEventType is the schema descriptor for event_type field.
	eventlogDescEventType := eventlogFields[2].Descriptor()
	// eventlog.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	eventlog.EventTypeValidator = eventlogDescEventType.Validators[0].(func(string) error)
	// eventlogDescPayloadJSON is the schema descriptor for payload_json field.
	eventlogDescPayloadJSON := eventlogFields[3].Descriptor()
	// eventlog.PayloadJSONValidator is a validator for the "payload_json" field. It is called by the builders before save.
	eventlog.PayloadJSONValidator = eventlogDescPayloadJSON.Validators[0].(func(string) error)
	// eventlogDescReceivedAt is the schema descriptor for received_at field.
	eventlogDescReceivedAt := eventlogFields[4].Descriptor()
	// eventlog.DefaultReceivedAt holds the default value on creation for the received_at field.
	eventlog.DefaultReceivedAt = eventlogDescReceivedAt.Default.(func() time.Time)
	graphedgeFields := schema.GraphEdge{}.Fields()
	_ = graphedgeFields
	// graphedgeDescType is the schema descriptor for type field.
	graphedgeDescType := graphedgeFields[2].Descriptor()
	// graphedge.DefaultType holds the default value on creation for the type field.
	graphedge.DefaultType = graphedgeDescType.Default.(string)
	// graphedgeDescCreatedAt is the schema descriptor for created_at field.
	graphedgeDescCreatedAt := graphedgeFields[3].Descriptor()
	// graphedge.DefaultCreatedAt holds the default value on creation for the created_at field.
	graphedge.DefaultCreatedAt = graphedgeDescCreatedAt.Default.(func() time.Time)
	nodeFields := schema.Node{}.Fields()
	_ = nodeFields
	// nodeDescType is the schema descriptor for type field.
	nodeDescType := nodeFields[1].Descriptor()
	// node.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	node.TypeValidator = nodeDescType.Validators[0].(func(string) error)
	// nodeDescTitle is the schema descriptor for title field.
	nodeDescTitle := nodeFields[2].Descriptor()
	// node.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	node.TitleValidator = nodeDescTitle.Validators[0].(func(string) error)
	// nodeDescStatus is the schema descriptor for status field.
	nodeDescStatus := nodeFields[3].Descriptor()
	// node.DefaultStatus holds the default value on creation for the status field.
	node.DefaultStatus = nodeDescStatus.Default.(string)
	// nodeDescCreatedAt is the schema descriptor for created_at field.
	nodeDescCreatedAt := nodeFields[9].Descriptor()
	// node.DefaultCreatedAt holds the default value on creation for the created_at field.
	node.DefaultCreatedAt = nodeDescCreatedAt.Default.(func() time.Time)
	// nodeDescUpdatedAt is the schema descriptor for updated_at field.
	nodeDescUpdatedAt := nodeFields[10].Descriptor()
	// node.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	node.DefaultUpdatedAt = nodeDescUpdatedAt.Default.(func() time.Time)
	// node.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	node.UpdateDefaultUpdatedAt = nodeDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescName is the schema descriptor for name field.
	sessionDescName := sessionFields[1].Descriptor()
	// session.NameValidator is a validator for the "name" field. It is called by the builders before save.
	session.NameValidator = sessionDescName.Validators[0].(func(string) error)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[4].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
}
