// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "filename", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "chunk_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_users_documents",
				Columns:    []*schema.Column{DocumentsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_user_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[6], DocumentsColumns[2]},
			},
		},
	}
	// DocumentChunksColumns holds the columns for the "document_chunks" table.
	DocumentChunksColumns = []*schema.Column{
		{Name: "chunk_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "chunk_index", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "vector(768)"}},
		{Name: "document_id", Type: field.TypeString},
	}
	// DocumentChunksTable holds the schema information for the "document_chunks" table.
	DocumentChunksTable = &schema.Table{
		Name:       "document_chunks",
		Columns:    DocumentChunksColumns,
		PrimaryKey: []*schema.Column{DocumentChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "document_chunks_documents_chunks",
				Columns:    []*schema.Column{DocumentChunksColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "documentchunk_user_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentChunksColumns[1]},
			},
			{
				Name:    "documentchunk_document_id_chunk_index",
				Unique:  true,
				Columns: []*schema.Column{DocumentChunksColumns[5], DocumentChunksColumns[2]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_projects_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "agent"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "thread_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_threads_messages",
				Columns:    []*schema.Column{MessagesColumns[4]},
				RefColumns: []*schema.Column{ThreadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_thread_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4], MessagesColumns[3]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "project_name", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "generating", "awaiting_verification", "completed", "failed"}, Default: "pending"},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "spec_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "validation_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "verification_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "zip_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "projects_users_projects",
				Columns:    []*schema.Column{ProjectsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "project_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[12], ProjectsColumns[10]},
			},
			{
				Name:    "project_status",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[3]},
			},
		},
	}
	// ThreadsColumns holds the columns for the "threads" table.
	ThreadsColumns = []*schema.Column{
		{Name: "thread_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// ThreadsTable holds the schema information for the "threads" table.
	ThreadsTable = &schema.Table{
		Name:       "threads",
		Columns:    ThreadsColumns,
		PrimaryKey: []*schema.Column{ThreadsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "threads_projects_threads",
				Columns:    []*schema.Column{ThreadsColumns[3]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "thread_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ThreadsColumns[3], ThreadsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// VerificationRunsColumns holds the columns for the "verification_runs" table.
	VerificationRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"verify", "repair"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "payload", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "report_json", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// VerificationRunsTable holds the schema information for the "verification_runs" table.
	VerificationRunsTable = &schema.Table{
		Name:       "verification_runs",
		Columns:    VerificationRunsColumns,
		PrimaryKey: []*schema.Column{VerificationRunsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_runs_projects_verification_runs",
				Columns:    []*schema.Column{VerificationRunsColumns[12]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationrun_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationRunsColumns[3], VerificationRunsColumns[8]},
			},
			{
				Name:    "verificationrun_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationRunsColumns[3], VerificationRunsColumns[11]},
			},
			{
				Name:    "verificationrun_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{VerificationRunsColumns[12], VerificationRunsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentChunksTable,
		EventsTable,
		MessagesTable,
		ProjectsTable,
		ThreadsTable,
		UsersTable,
		VerificationRunsTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = UsersTable
	DocumentChunksTable.ForeignKeys[0].RefTable = DocumentsTable
	EventsTable.ForeignKeys[0].RefTable = ProjectsTable
	MessagesTable.ForeignKeys[0].RefTable = ThreadsTable
	ProjectsTable.ForeignKeys[0].RefTable = UsersTable
	ThreadsTable.ForeignKeys[0].RefTable = ProjectsTable
	VerificationRunsTable.ForeignKeys[0].RefTable = ProjectsTable
}
