package response

import (
	"encoding/json"
	"testing"
	"time"

	"drywall_estimator/internal/domain/calculator"
	"drywall_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromCalculation(t *testing.T) {
	in := calculator.Input{Length: 15}
	res := FromCalculation(calculator.KindBoxCeiling, in, calculator.BoxCeiling(15))

	if res.Kind != "box_ceiling" || res.Description != "باکس و نورمخفی: 15 متر طول" {
		t.Fatalf("unexpected header: %+v", res)
	}
	if len(res.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res.Results))
	}
}

func TestFromEstimations_EmptyListIsArray(t *testing.T) {
	res := FromEstimations("s-1", nil)
	b, _ := json.Marshal(res)
	if string(b) != `{"session_id":"s-1","estimations":[]}` {
		t.Fatalf("unexpected json: %s", b)
	}
}

func TestFromEstimation(t *testing.T) {
	now := time.Now().UTC()
	e := entities.Estimation{
		ID:          "est-1",
		SessionID:   "s-1",
		Description: "دیوار خشک",
		Results:     []entities.MaterialResult{{Material: "سازه رانر", Quantity: 4, Unit: entities.UnitBranch}},
		CreatedAt:   now,
	}

	res := FromEstimation(e)
	if res.ID != "est-1" || res.SessionID != "s-1" || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Results[0].Material != "سازه رانر" || res.Results[0].Quantity != 4 {
		t.Fatalf("unexpected results: %+v", res.Results)
	}
}

func TestFromDraftInvoice(t *testing.T) {
	d := entities.DraftInvoice{
		ID:            "d-1",
		InvoiceNumber: "EST-20240506-3F2B9C1E",
		Items: []entities.InvoiceLineItem{
			{ProductID: "p-1", ProductName: "پیچ پنل 25", Quantity: 2, Unit: entities.UnitPack, UnitPrice: decimal.NewFromInt(800000), TotalPrice: decimal.NewFromInt(1600000)},
			{ProductID: "new_تایل60×60", ProductName: "تایل 60×60", Quantity: 92, Unit: entities.UnitPiece},
		},
		Subtotal: decimal.NewFromInt(1600000),
		Total:    decimal.NewFromInt(1600000),
	}

	res := FromDraftInvoice(d)
	if res.Items[0].IsNew || !res.Items[1].IsNew {
		t.Fatalf("unexpected is_new flags: %+v", res.Items)
	}

	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["subtotal"] != "1600000" || body["invoice_number"] != "EST-20240506-3F2B9C1E" {
		t.Fatalf("unexpected json: %s", b)
	}
}
