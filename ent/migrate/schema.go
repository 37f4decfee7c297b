// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CandidatesColumns holds the columns for the "candidates" table.
	CandidatesColumns = []*schema.Column{
		{Name: "candidate_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "origin", Type: field.TypeEnum, Enums: []string{"user", "system"}, Default: "system"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"new", "under_test", "promising", "weak", "rejected"}, Default: "new"},
		{Name: "mechanism_description", Type: field.TypeString, Size: 2147483647},
		{Name: "predicted_effects", Type: field.TypeJSON, Nullable: true},
		{Name: "parent_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
		{Name: "provenance_log", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// CandidatesTable holds the schema information for the "candidates" table.
	CandidatesTable = &schema.Table{
		Name:       "candidates",
		Columns:    CandidatesColumns,
		PrimaryKey: []*schema.Column{CandidatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "candidates_projects_candidates",
				Columns:    []*schema.Column{CandidatesColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "candidate_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[11], CandidatesColumns[3]},
			},
			{
				Name:    "candidate_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[11], CandidatesColumns[9]},
			},
			{
				Name:    "candidate_run_id",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[1]},
			},
		},
	}
	// ChatSessionsColumns holds the columns for the "chat_sessions" table.
	ChatSessionsColumns = []*schema.Column{
		{Name: "chat_session_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"setup", "review"}, Default: "setup"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// ChatSessionsTable holds the schema information for the "chat_sessions" table.
	ChatSessionsTable = &schema.Table{
		Name:       "chat_sessions",
		Columns:    ChatSessionsColumns,
		PrimaryKey: []*schema.Column{ChatSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chat_sessions_projects_chat_sessions",
				Columns:    []*schema.Column{ChatSessionsColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chatsession_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChatSessionsColumns[4], ChatSessionsColumns[3]},
			},
		},
	}
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "evaluation_id", Type: field.TypeString, Unique: true},
		{Name: "candidate_id", Type: field.TypeString},
		{Name: "scenario_id", Type: field.TypeString},
		{Name: "p", Type: field.TypeJSON},
		{Name: "r", Type: field.TypeJSON},
		{Name: "constraint_satisfaction", Type: field.TypeJSON, Nullable: true},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluations_runs_evaluations",
				Columns:    []*schema.Column{EvaluationsColumns[8]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluation_run_id_candidate_id_scenario_id",
				Unique:  true,
				Columns: []*schema.Column{EvaluationsColumns[8], EvaluationsColumns[1], EvaluationsColumns[2]},
			},
			{
				Name:    "evaluation_candidate_id",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[1]},
			},
		},
	}
	// IssuesColumns holds the columns for the "issues" table.
	IssuesColumns = []*schema.Column{
		{Name: "issue_id", Type: field.TypeString, Unique: true},
		{Name: "run_id", Type: field.TypeString, Nullable: true},
		{Name: "candidate_id", Type: field.TypeString, Nullable: true},
		{Name: "issue_type", Type: field.TypeEnum, Enums: []string{"model", "constraint", "evaluator", "scenario"}},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"minor", "important", "catastrophic"}},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "resolution_status", Type: field.TypeEnum, Enums: []string{"open", "resolved", "invalidated"}, Default: "open"},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "remediation", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// IssuesTable holds the schema information for the "issues" table.
	IssuesTable = &schema.Table{
		Name:       "issues",
		Columns:    IssuesColumns,
		PrimaryKey: []*schema.Column{IssuesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "issues_projects_issues",
				Columns:    []*schema.Column{IssuesColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "issue_project_id_resolution_status",
				Unique:  false,
				Columns: []*schema.Column{IssuesColumns[11], IssuesColumns[6]},
			},
			{
				Name:    "issue_severity",
				Unique:  false,
				Columns: []*schema.Column{IssuesColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "agent", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "chat_session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_chat_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[5]},
				RefColumns: []*schema.Column{ChatSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_chat_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5], MessagesColumns[4]},
			},
		},
	}
	// ProblemSpecsColumns holds the columns for the "problem_specs" table.
	ProblemSpecsColumns = []*schema.Column{
		{Name: "spec_id", Type: field.TypeString, Unique: true},
		{Name: "constraints", Type: field.TypeJSON},
		{Name: "goals", Type: field.TypeJSON, Nullable: true},
		{Name: "resolution", Type: field.TypeEnum, Enums: []string{"coarse", "medium", "fine"}, Default: "medium"},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"full_search", "eval_only", "seeded"}, Default: "full_search"},
		{Name: "provenance_log", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString, Unique: true},
	}
	// ProblemSpecsTable holds the schema information for the "problem_specs" table.
	ProblemSpecsTable = &schema.Table{
		Name:       "problem_specs",
		Columns:    ProblemSpecsColumns,
		PrimaryKey: []*schema.Column{ProblemSpecsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "problem_specs_projects_problem_spec",
				Columns:    []*schema.Column{ProblemSpecsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "problemspec_project_id",
				Unique:  true,
				Columns: []*schema.Column{ProblemSpecsColumns[8]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ephemeral", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[4]},
			},
			{
				Name:    "project_ephemeral",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[3]},
				Annotation: &entsql.IndexAnnotation{
					Where: "ephemeral",
				},
			},
		},
	}
	// RunsColumns holds the columns for the "runs" table.
	RunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "config", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"created", "running", "completed", "failed", "cancelled"}, Default: "created"},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "llm_usage", Type: field.TypeJSON, Nullable: true},
		{Name: "error_summary", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "chat_session_id", Type: field.TypeString, Nullable: true},
		{Name: "ui_trigger_id", Type: field.TypeString, Nullable: true},
		{Name: "ui_trigger_source", Type: field.TypeString, Nullable: true},
		{Name: "ui_trigger_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "ui_trigger_at", Type: field.TypeTime, Nullable: true},
		{Name: "run_summary_message_id", Type: field.TypeString, Nullable: true},
		{Name: "recommended_config", Type: field.TypeJSON, Nullable: true},
		{Name: "queued_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// RunsTable holds the schema information for the "runs" table.
	RunsTable = &schema.Table{
		Name:       "runs",
		Columns:    RunsColumns,
		PrimaryKey: []*schema.Column{RunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "runs_projects_runs",
				Columns:    []*schema.Column{RunsColumns[19]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "run_status",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2]},
			},
			{
				Name:    "run_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[19], RunsColumns[6]},
			},
			{
				Name:    "run_status_queued_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2], RunsColumns[16]},
			},
			{
				Name:    "run_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{RunsColumns[2], RunsColumns[18]},
			},
		},
	}
	// ScenarioSuitesColumns holds the columns for the "scenario_suites" table.
	ScenarioSuitesColumns = []*schema.Column{
		{Name: "suite_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "scenarios", Type: field.TypeJSON},
		{Name: "provenance_log", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Unique: true},
	}
	// ScenarioSuitesTable holds the schema information for the "scenario_suites" table.
	ScenarioSuitesTable = &schema.Table{
		Name:       "scenario_suites",
		Columns:    ScenarioSuitesColumns,
		PrimaryKey: []*schema.Column{ScenarioSuitesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scenario_suites_runs_scenario_suite",
				Columns:    []*schema.Column{ScenarioSuitesColumns[6]},
				RefColumns: []*schema.Column{RunsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scenariosuite_run_id",
				Unique:  true,
				Columns: []*schema.Column{ScenarioSuitesColumns[6]},
			},
			{
				Name:    "scenariosuite_project_id",
				Unique:  false,
				Columns: []*schema.Column{ScenarioSuitesColumns[1]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "snapshot_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "snapshot_data", Type: field.TypeJSON},
		{Name: "reference_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "invariants", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "snapshots_projects_snapshots",
				Columns:    []*schema.Column{SnapshotsColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{SnapshotsColumns[9], SnapshotsColumns[1]},
			},
		},
	}
	// WorldModelsColumns holds the columns for the "world_models" table.
	WorldModelsColumns = []*schema.Column{
		{Name: "model_id", Type: field.TypeString, Unique: true},
		{Name: "model_data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString, Unique: true},
	}
	// WorldModelsTable holds the schema information for the "world_models" table.
	WorldModelsTable = &schema.Table{
		Name:       "world_models",
		Columns:    WorldModelsColumns,
		PrimaryKey: []*schema.Column{WorldModelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "world_models_projects_world_model",
				Columns:    []*schema.Column{WorldModelsColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "worldmodel_project_id",
				Unique:  true,
				Columns: []*schema.Column{WorldModelsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CandidatesTable,
		ChatSessionsTable,
		EvaluationsTable,
		IssuesTable,
		MessagesTable,
		ProblemSpecsTable,
		ProjectsTable,
		RunsTable,
		ScenarioSuitesTable,
		SnapshotsTable,
		WorldModelsTable,
	}
)

func init() {
	CandidatesTable.ForeignKeys[0].RefTable = ProjectsTable
	ChatSessionsTable.ForeignKeys[0].RefTable = ProjectsTable
	EvaluationsTable.ForeignKeys[0].RefTable = RunsTable
	IssuesTable.ForeignKeys[0].RefTable = ProjectsTable
	MessagesTable.ForeignKeys[0].RefTable = ChatSessionsTable
	ProblemSpecsTable.ForeignKeys[0].RefTable = ProjectsTable
	RunsTable.ForeignKeys[0].RefTable = ProjectsTable
	ScenarioSuitesTable.ForeignKeys[0].RefTable = RunsTable
	SnapshotsTable.ForeignKeys[0].RefTable = ProjectsTable
	WorldModelsTable.ForeignKeys[0].RefTable = ProjectsTable
}
