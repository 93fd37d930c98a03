package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosisRun records one completed diagnosis. The mixin timestamp is the
// completion time.
type DiagnosisRun struct {
	ent.Schema
}

func (DiagnosisRun) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DiagnosisRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("rule"),
		field.String("title"),
		field.String("max_amount"),
		field.JSON("answers", map[string]string{}),
	}
}

func (DiagnosisRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rule"),
	}
}

func (DiagnosisRun) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "diagnosis_runs"},
	}
}
