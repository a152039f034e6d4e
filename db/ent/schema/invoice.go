package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("customer_id", uuid.UUID{}).Optional().Nillable(),
		field.String("invoice_no").Optional().Nillable(),
		field.String("code_no").Optional().Nillable(),
		// dd/mm/yyyy exactly as printed; never reparsed into a calendar type.
		field.String("invoice_date").Optional().Nillable(),
		field.String("reference").Optional().Nillable(),
		field.String("seller_name").Optional().Nillable(),
		field.String("seller_address").Optional().Nillable(),
		field.String("seller_phone").Optional().Nillable(),
		field.String("seller_email").Optional().Nillable(),
		field.String("seller_tax_id").Optional().Nillable(),
		field.String("seller_vat_reg").Optional().Nillable(),
		field.Float("subtotal").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("tax").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("total").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// OPTIONAL: MANY invoices -> ONE customer (FK: invoices.customer_id)
		edge.From("customer", Customer.Type).
			Ref("invoices").
			Field("customer_id").
			Unique(),
		// ONE invoice -> MANY items
		edge.To("items", InvoiceItem.Type),
		// ONE invoice -> MANY files
		edge.To("files", InvoiceFile.Type),
		// ONE invoice -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_no"),
		index.Fields("customer_id", "created_at"),
	}
}
