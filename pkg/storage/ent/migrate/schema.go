// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChoicesColumns holds the columns for the "choices" table.
	ChoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "label", Type: field.TypeString},
		{Name: "text", Type: field.TypeString},
		{Name: "is_chosen", Type: field.TypeBool, Default: false},
		{Name: "chosen_at", Type: field.TypeTime, Nullable: true},
		{Name: "node_id", Type: field.TypeInt},
	}
	// ChoicesTable holds the schema information for the "choices" table.
	ChoicesTable = &schema.Table{
		Name:       "choices",
		Columns:    ChoicesColumns,
		PrimaryKey: []*schema.Column{ChoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "choices_nodes_choices",
				Columns:    []*schema.Column{ChoicesColumns[5]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "choice_node_id_label",
				Unique:  true,
				Columns: []*schema.Column{ChoicesColumns[5], ChoicesColumns[1]},
			},
		},
	}
	// EventLogsColumns holds the columns for the "event_logs" table.
	EventLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "source", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "payload_json", Type: field.TypeString, Size: 2147483647},
		{Name: "received_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "session_id", Type: field.TypeInt},
	}
	// EventLogsTable holds the schema information for the "event_logs" table.
	EventLogsTable = &schema.Table{
		Name:       "event_logs",
		Columns:    EventLogsColumns,
		PrimaryKey: []*schema.Column{EventLogsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "event_logs_sessions_events",
				Columns:    []*schema.Column{EventLogsColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "eventlog_session_id",
				Unique:  false,
				Columns: []*schema.Column{EventLogsColumns[5]},
			},
			{
				Name:    "eventlog_event_type",
				Unique:  false,
				Columns: []*schema.Column{EventLogsColumns[2]},
			},
		},
	}
	// GraphEdgesColumns holds the columns for the "graph_edges" table.
	GraphEdgesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeString, Default: "leads_to"},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "from_node_id", Type: field.TypeInt},
		{Name: "to_node_id", Type: field.TypeInt},
	}
	// GraphEdgesTable holds the schema information for the "graph_edges" table.
	GraphEdgesTable = &schema.Table{
		Name:       "graph_edges",
		Columns:    GraphEdgesColumns,
		PrimaryKey: []*schema.Column{GraphEdgesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "graph_edges_nodes_outgoing",
				Columns:    []*schema.Column{GraphEdgesColumns[3]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "graph_edges_nodes_incoming",
				Columns:    []*schema.Column{GraphEdgesColumns[4]},
				RefColumns: []*schema.Column{NodesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "graphedge_from_node_id",
				Unique:  false,
				Columns: []*schema.Column{GraphEdgesColumns[3]},
			},
			{
				Name:    "graphedge_to_node_id",
				Unique:  false,
				Columns: []*schema.Column{GraphEdgesColumns[4]},
			},
		},
	}
	// NodesColumns holds the columns for the "nodes" table.
	NodesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "type", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "open"},
		{Name: "rationale", Type: field.TypeString, Nullable: true},
		{Name: "owner", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Nullable: true},
		{Name: "context_prompt", Type: field.TypeString, Nullable: true},
		{Name: "external_ref", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeInt},
	}
	// NodesTable holds the schema information for the "nodes" table.
	NodesTable = &schema.Table{
		Name:       "nodes",
		Columns:    NodesColumns,
		PrimaryKey: []*schema.Column{NodesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "nodes_sessions_nodes",
				Columns:    []*schema.Column{NodesColumns[11]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "node_session_id_status",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[11], NodesColumns[3]},
			},
			{
				Name:    "node_session_id_type",
				Unique:  false,
				Columns: []*schema.Column{NodesColumns[11], NodesColumns[1]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "external_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "name", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, Default: "CURRENT_TIMESTAMP"},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChoicesTable,
		EventLogsTable,
		GraphEdgesTable,
		NodesTable,
		SessionsTable,
	}
)

func init() {
	ChoicesTable.ForeignKeys[0].RefTable = NodesTable
	EventLogsTable.ForeignKeys[0].RefTable = SessionsTable
	GraphEdgesTable.ForeignKeys[0].RefTable = NodesTable
	GraphEdgesTable.ForeignKeys[1].RefTable = NodesTable
	NodesTable.ForeignKeys[0].RefTable = SessionsTable
}
