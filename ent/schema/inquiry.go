package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Inquiry is a consultation request submitted through the form.
type Inquiry struct {
	ent.Schema
}

func (Inquiry) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (Inquiry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").NotEmpty(),
		field.String("email").NotEmpty(),
		field.String("phone").NotEmpty(),
		field.Text("message").Default(""),
	}
}

func (Inquiry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "inquiries"},
	}
}
