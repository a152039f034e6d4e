package utils

import (
	"fmt"
	"time"

	"github.com/amani-mollel/invoice-tracker/gen/ent"
	invoicespb "github.com/amani-mollel/invoice-tracker/gen/proto/invoices/v1"
	"github.com/amani-mollel/invoice-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func moneyOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

func ToCustomer(e *ent.Customer) *entity.Customer {
	return &entity.Customer{
		ID:        e.ID,
		Name:      e.Name,
		CodeNo:    e.CodeNo,
		Address:   e.Address,
		Phone:     e.Phone,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	inv := &entity.Invoice{
		ID:            e.ID,
		CustomerID:    e.CustomerID,
		InvoiceNo:     e.InvoiceNo,
		CodeNo:        e.CodeNo,
		InvoiceDate:   e.InvoiceDate,
		Reference:     e.Reference,
		SellerName:    e.SellerName,
		SellerAddress: e.SellerAddress,
		SellerPhone:   e.SellerPhone,
		SellerEmail:   e.SellerEmail,
		SellerTaxID:   e.SellerTaxID,
		SellerVATReg:  e.SellerVatReg,
		Subtotal:      e.Subtotal,
		Tax:           e.Tax,
		Total:         e.Total,
		RawText:       e.RawText,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if items, err := e.Edges.ItemsOrErr(); err == nil {
		inv.Items = make([]entity.InvoiceItem, len(items))
		for i, it := range items {
			inv.Items[i] = *ToInvoiceItem(it)
		}
	}
	return inv
}

func ToInvoiceItem(e *ent.InvoiceItem) *entity.InvoiceItem {
	return &entity.InvoiceItem{
		ID:          e.ID,
		InvoiceID:   e.InvoiceID,
		SeqNo:       e.SeqNo,
		ItemCode:    e.ItemCode,
		Description: e.Description,
		Unit:        e.Unit,
		Quantity:    e.Quantity,
		Rate:        e.Rate,
		Value:       e.Value,
	}
}

func ToInvoiceFile(e *ent.InvoiceFile) *entity.InvoiceFile {
	return &entity.InvoiceFile{
		ID:          e.ID,
		InvoiceID:   e.InvoiceID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func ToExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:                   e.ID,
		FileID:               e.FileID,
		InvoiceID:            e.InvoiceID,
		Format:               e.Format,
		StartedAt:            e.StartedAt,
		FinishedAt:           e.FinishedAt,
		Status:               e.Status,
		ErrorKind:            e.ErrorKind,
		ErrorMessage:         e.ErrorMessage,
		PageCount:            e.PageCount,
		ExtractionConfidence: e.ExtractionConfidence,
		NeedsReview:          e.NeedsReview,
		SourceText:           e.SourceText,
		ResultJSON:           e.ResultJSON,
	}
}

func ToPBCustomer(c *entity.Customer) *invoicespb.Customer {
	return &invoicespb.Customer{
		Id:        c.ID.String(),
		Name:      c.Name,
		CodeNo:    strOrEmpty(c.CodeNo),
		Address:   strOrEmpty(c.Address),
		Phone:     strOrEmpty(c.Phone),
		Email:     strOrEmpty(c.Email),
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBInvoice(inv *entity.Invoice) *invoicespb.Invoice {
	pb := &invoicespb.Invoice{
		Id:            inv.ID.String(),
		InvoiceNo:     strOrEmpty(inv.InvoiceNo),
		CodeNo:        strOrEmpty(inv.CodeNo),
		InvoiceDate:   strOrEmpty(inv.InvoiceDate),
		Reference:     strOrEmpty(inv.Reference),
		SellerName:    strOrEmpty(inv.SellerName),
		SellerAddress: strOrEmpty(inv.SellerAddress),
		SellerPhone:   strOrEmpty(inv.SellerPhone),
		SellerEmail:   strOrEmpty(inv.SellerEmail),
		SellerTaxId:   strOrEmpty(inv.SellerTaxID),
		SellerVatReg:  strOrEmpty(inv.SellerVATReg),
		Subtotal:      moneyOrEmpty(inv.Subtotal),
		Tax:           moneyOrEmpty(inv.Tax),
		Total:         moneyOrEmpty(inv.Total),
		CreatedAt:     inv.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     inv.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if inv.CustomerID != nil {
		pb.CustomerId = inv.CustomerID.String()
	}
	for i := range inv.Items {
		pb.Items = append(pb.Items, ToPBInvoiceItem(&inv.Items[i]))
	}
	return pb
}

func ToPBInvoiceItem(it *entity.InvoiceItem) *invoicespb.InvoiceItem {
	return &invoicespb.InvoiceItem{
		Id:          it.ID.String(),
		InvoiceId:   it.InvoiceID.String(),
		SeqNo:       int32(it.SeqNo),
		ItemCode:    strOrEmpty(it.ItemCode),
		Description: it.Description,
		Unit:        it.Unit,
		Quantity:    int32(it.Quantity),
		Rate:        moneyOrEmpty(it.Rate),
		Value:       moneyOrEmpty(it.Value),
	}
}
