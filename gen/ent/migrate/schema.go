// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CustomersColumns holds the columns for the "customers" table.
	CustomersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "code_no", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CustomersTable holds the schema information for the "customers" table.
	CustomersTable = &schema.Table{
		Name:       "customers",
		Columns:    CustomersColumns,
		PrimaryKey: []*schema.Column{CustomersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "customer_name",
				Unique:  true,
				Columns: []*schema.Column{CustomersColumns[1]},
			},
			{
				Name:    "customer_code_no",
				Unique:  false,
				Columns: []*schema.Column{CustomersColumns[2]},
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "source_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "result_json", Type: field.TypeJSON, Nullable: true},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_invoices_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_invoice_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[13]},
				RefColumns: []*schema.Column{InvoiceFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[13]},
			},
			{
				Name:    "extractjob_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "invoice_no", Type: field.TypeString, Nullable: true},
		{Name: "code_no", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeString, Nullable: true},
		{Name: "reference", Type: field.TypeString, Nullable: true},
		{Name: "seller_name", Type: field.TypeString, Nullable: true},
		{Name: "seller_address", Type: field.TypeString, Nullable: true},
		{Name: "seller_phone", Type: field.TypeString, Nullable: true},
		{Name: "seller_email", Type: field.TypeString, Nullable: true},
		{Name: "seller_tax_id", Type: field.TypeString, Nullable: true},
		{Name: "seller_vat_reg", Type: field.TypeString, Nullable: true},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "tax", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "customer_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_customers_invoices",
				Columns:    []*schema.Column{InvoicesColumns[17]},
				RefColumns: []*schema.Column{CustomersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_invoice_no",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1]},
			},
			{
				Name:    "invoice_customer_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[17], InvoicesColumns[15]},
			},
		},
	}
	// InvoiceFilesColumns holds the columns for the "invoice_files" table.
	InvoiceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoiceFilesTable holds the schema information for the "invoice_files" table.
	InvoiceFilesTable = &schema.Table{
		Name:       "invoice_files",
		Columns:    InvoiceFilesColumns,
		PrimaryKey: []*schema.Column{InvoiceFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_files_invoices_files",
				Columns:    []*schema.Column{InvoiceFilesColumns[7]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoicefile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{InvoiceFilesColumns[2]},
			},
			{
				Name:    "invoicefile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{InvoiceFilesColumns[6]},
			},
		},
	}
	// InvoiceItemsColumns holds the columns for the "invoice_items" table.
	InvoiceItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "seq_no", Type: field.TypeInt},
		{Name: "item_code", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 255},
		{Name: "unit", Type: field.TypeString, Default: "PCS"},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "rate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "value", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceItemsTable holds the schema information for the "invoice_items" table.
	InvoiceItemsTable = &schema.Table{
		Name:       "invoice_items",
		Columns:    InvoiceItemsColumns,
		PrimaryKey: []*schema.Column{InvoiceItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_items_invoices_items",
				Columns:    []*schema.Column{InvoiceItemsColumns[8]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceitem_invoice_id_seq_no",
				Unique:  true,
				Columns: []*schema.Column{InvoiceItemsColumns[8], InvoiceItemsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CustomersTable,
		ExtractJobTable,
		InvoicesTable,
		InvoiceFilesTable,
		InvoiceItemsTable,
	}
)

func init() {
	CustomersTable.Annotation = &entsql.Annotation{
		Table: "customers",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = InvoicesTable
	ExtractJobTable.ForeignKeys[1].RefTable = InvoiceFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	InvoicesTable.ForeignKeys[0].RefTable = CustomersTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceFilesTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceFilesTable.Annotation = &entsql.Annotation{
		Table: "invoice_files",
	}
	InvoiceItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceItemsTable.Annotation = &entsql.Annotation{
		Table: "invoice_items",
	}
}
