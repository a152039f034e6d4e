package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type InvoiceItem struct{ ent.Schema }

func (InvoiceItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_items"},
	}
}

func (InvoiceItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("invoice_id", uuid.UUID{}),
		field.Int("seq_no").Positive(),
		field.String("item_code").Optional().Nillable(),
		field.String("description").NotEmpty().MaxLen(255),
		field.String("unit").Default("PCS"),
		field.Int("quantity").Default(1).Positive(),
		field.Float("rate").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("value").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
	}
}

func (InvoiceItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY items -> ONE invoice (FK: invoice_items.invoice_id)
		edge.From("invoice", Invoice.Type).
			Ref("items").
			Field("invoice_id").
			Required().
			Unique(),
	}
}

func (InvoiceItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id", "seq_no").Unique(),
	}
}
