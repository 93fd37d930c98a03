package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Table definitions for the schemas under ent/schema, laid out the way
// ent's migrate package describes them.
var (
	// KvColumns holds the columns for the "kv" table.
	KvColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "value", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// KvTable holds the schema information for the "kv" table.
	KvTable = &schema.Table{
		Name:       "kv",
		Columns:    KvColumns,
		PrimaryKey: []*schema.Column{KvColumns[0]},
	}

	// DiagnosisRunsColumns holds the columns for the "diagnosis_runs" table.
	DiagnosisRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "rule", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "max_amount", Type: field.TypeString},
		{Name: "answers", Type: field.TypeJSON},
	}
	// DiagnosisRunsTable holds the schema information for the "diagnosis_runs" table.
	DiagnosisRunsTable = &schema.Table{
		Name:       "diagnosis_runs",
		Columns:    DiagnosisRunsColumns,
		PrimaryKey: []*schema.Column{DiagnosisRunsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "diagnosisrun_sequence", Columns: []*schema.Column{DiagnosisRunsColumns[1]}},
			{Name: "diagnosisrun_timestamp", Columns: []*schema.Column{DiagnosisRunsColumns[2]}},
			{Name: "diagnosisrun_rule", Columns: []*schema.Column{DiagnosisRunsColumns[3]}},
		},
	}

	// InquiriesColumns holds the columns for the "inquiries" table.
	InquiriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// InquiriesTable holds the schema information for the "inquiries" table.
	InquiriesTable = &schema.Table{
		Name:       "inquiries",
		Columns:    InquiriesColumns,
		PrimaryKey: []*schema.Column{InquiriesColumns[0]},
		Indexes: []*schema.Index{
			{Name: "inquiry_sequence", Columns: []*schema.Column{InquiriesColumns[1]}},
			{Name: "inquiry_timestamp", Columns: []*schema.Column{InquiriesColumns[2]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		KvTable,
		DiagnosisRunsTable,
		InquiriesTable,
	}
)
