// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/amani-mollel/invoice-tracker/db/ent/schema"
	"github.com/amani-mollel/invoice-tracker/gen/ent/customer"
	"github.com/amani-mollel/invoice-tracker/gen/ent/extractjob"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoice"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoicefile"
	"github.com/amani-mollel/invoice-tracker/gen/ent/invoiceitem"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	customerFields := schema.Customer{}.Fields()
	_ = customerFields
	// customerDescName is the schema descriptor for name field.
	customerDescName := customerFields[1].Descriptor()
	// customer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	customer.NameValidator = customerDescName.Validators[0].(func(string) error)
	// customerDescCreatedAt is the schema descriptor for created_at field.
	customerDescCreatedAt := customerFields[6].Descriptor()
	// customer.DefaultCreatedAt holds the default value on creation for the created_at field.
	customer.DefaultCreatedAt = customerDescCreatedAt.Default.(func() time.Time)
	// customerDescUpdatedAt is the schema descriptor for updated_at field.
	customerDescUpdatedAt := customerFields[7].Descriptor()
	// customer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customer.DefaultUpdatedAt = customerDescUpdatedAt.Default.(func() time.Time)
	// customer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customer.UpdateDefaultUpdatedAt = customerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customerDescID is the schema descriptor for id field.
	customerDescID := customerFields[0].Descriptor()
	// customer.DefaultID holds the default value on creation for the id field.
	customer.DefaultID = customerDescID.Default.(func() uuid.UUID)
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[3].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[4].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescStatus is the schema descriptor for status field.
	extractjobDescStatus := extractjobFields[6].Descriptor()
	// extractjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	extractjob.StatusValidator = extractjobDescStatus.Validators[0].(func(string) error)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[11].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[16].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[17].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicefileFields := schema.InvoiceFile{}.Fields()
	_ = invoicefileFields
	// invoicefileDescSourcePath is the schema descriptor for source_path field.
	invoicefileDescSourcePath := invoicefileFields[2].Descriptor()
	// invoicefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	invoicefile.SourcePathValidator = invoicefileDescSourcePath.Validators[0].(func(string) error)
	// invoicefileDescContentHash is the schema descriptor for content_hash field.
	invoicefileDescContentHash := invoicefileFields[3].Descriptor()
	// invoicefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	invoicefile.ContentHashValidator = invoicefileDescContentHash.Validators[0].(func([]byte) error)
	// invoicefileDescFilename is the schema descriptor for filename field.
	invoicefileDescFilename := invoicefileFields[4].Descriptor()
	// invoicefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoicefile.FilenameValidator = invoicefileDescFilename.Validators[0].(func(string) error)
	// invoicefileDescFileExt is the schema descriptor for file_ext field.
	invoicefileDescFileExt := invoicefileFields[5].Descriptor()
	// invoicefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	invoicefile.FileExtValidator = invoicefileDescFileExt.Validators[0].(func(string) error)
	// invoicefileDescFileSize is the schema descriptor for file_size field.
	invoicefileDescFileSize := invoicefileFields[6].Descriptor()
	// invoicefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	invoicefile.FileSizeValidator = invoicefileDescFileSize.Validators[0].(func(int) error)
	// invoicefileDescUploadedAt is the schema descriptor for uploaded_at field.
	invoicefileDescUploadedAt := invoicefileFields[7].Descriptor()
	// invoicefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	invoicefile.DefaultUploadedAt = invoicefileDescUploadedAt.Default.(func() time.Time)
	// invoicefileDescID is the schema descriptor for id field.
	invoicefileDescID := invoicefileFields[0].Descriptor()
	// invoicefile.DefaultID holds the default value on creation for the id field.
	invoicefile.DefaultID = invoicefileDescID.Default.(func() uuid.UUID)
	invoiceitemFields := schema.InvoiceItem{}.Fields()
	_ = invoiceitemFields
	// invoiceitemDescSeqNo is the schema descriptor for seq_no field.
	invoiceitemDescSeqNo := invoiceitemFields[2].Descriptor()
	// invoiceitem.SeqNoValidator is a validator for the "seq_no" field. It is called by the builders before save.
	invoiceitem.SeqNoValidator = invoiceitemDescSeqNo.Validators[0].(func(int) error)
	// invoiceitemDescDescription is the schema descriptor for description field.
	invoiceitemDescDescription := invoiceitemFields[4].Descriptor()
	// invoiceitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	invoiceitem.DescriptionValidator = func() func(string) error {
		validators := invoiceitemDescDescription.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(description string) error {
			for _, fn := range fns {
				if err := fn(description); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceitemDescUnit is the schema descriptor for unit field.
	invoiceitemDescUnit := invoiceitemFields[5].Descriptor()
	// invoiceitem.DefaultUnit holds the default value on creation for the unit field.
	invoiceitem.DefaultUnit = invoiceitemDescUnit.Default.(string)
	// invoiceitemDescQuantity is the schema descriptor for quantity field.
	invoiceitemDescQuantity := invoiceitemFields[6].Descriptor()
	// invoiceitem.DefaultQuantity holds the default value on creation for the quantity field.
	invoiceitem.DefaultQuantity = invoiceitemDescQuantity.Default.(int)
	// invoiceitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	invoiceitem.QuantityValidator = invoiceitemDescQuantity.Validators[0].(func(int) error)
	// invoiceitemDescID is the schema descriptor for id field.
	invoiceitemDescID := invoiceitemFields[0].Descriptor()
	// invoiceitem.DefaultID holds the default value on creation for the id field.
	invoiceitem.DefaultID = invoiceitemDescID.Default.(func() uuid.UUID)
}
