package invoice

import (
	"testing"

	"drywall_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func products() []entities.CatalogProduct {
	return []entities.CatalogProduct{
		{ID: "p-board", Name: "پنل والیز", Price: decimal.NewFromInt(450000), ImageURL: "https://cdn.example/board.png"},
		{ID: "p-screw", Name: "پیچ پنل", Price: decimal.RequireFromString("125000.5")},
	}
}

func TestAssemble_PricesAndSubtotal(t *testing.T) {
	got := Assemble([]entities.ResolvedMaterial{
		{ProductID: "p-board", Name: "پنل والیز", Quantity: 9, Unit: entities.UnitSheet},
		{ProductID: "p-screw", Name: "پیچ پنل", Quantity: 2, Unit: entities.UnitPack},
	}, products())

	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %+v", got.Items)
	}
	if !got.Items[0].TotalPrice.Equal(decimal.NewFromInt(4050000)) {
		t.Fatalf("unexpected board total %s", got.Items[0].TotalPrice)
	}
	if got.Items[0].ImageURL != "https://cdn.example/board.png" {
		t.Fatalf("expected image url to be carried over")
	}
	if !got.Items[1].TotalPrice.Equal(decimal.NewFromInt(250001)) {
		t.Fatalf("unexpected screw total %s", got.Items[1].TotalPrice)
	}
	if !got.Subtotal.Equal(decimal.NewFromInt(4300001)) {
		t.Fatalf("unexpected subtotal %s", got.Subtotal)
	}
}

func TestAssemble_MergesSameProductAndUnit(t *testing.T) {
	got := Assemble([]entities.ResolvedMaterial{
		{ProductID: "p-screw", Name: "پیچ پنل", Quantity: 2, Unit: entities.UnitPack},
		{ProductID: "p-board", Name: "پنل والیز", Quantity: 4, Unit: entities.UnitSheet},
		{ProductID: "p-screw", Name: "پیچ پنل", Quantity: 1, Unit: entities.UnitPack},
		{ProductID: "p-screw", Name: "پیچ پنل", Quantity: 500, Unit: entities.UnitPiece},
	}, products())

	if len(got.Items) != 3 {
		t.Fatalf("expected 3 items, got %+v", got.Items)
	}
	first := got.Items[0]
	if first.Quantity != 3 || !first.TotalPrice.Equal(decimal.RequireFromString("375001.5")) {
		t.Fatalf("unexpected merged line: %+v", first)
	}

	seen := map[string]bool{}
	sum := decimal.Zero
	for _, it := range got.Items {
		k := it.ProductID + "|" + it.Unit
		if seen[k] {
			t.Fatalf("duplicate line %s", k)
		}
		seen[k] = true
		if !it.TotalPrice.Equal(decimal.NewFromFloat(it.Quantity).Mul(it.UnitPrice)) {
			t.Fatalf("line total mismatch: %+v", it)
		}
		sum = sum.Add(it.TotalPrice)
	}
	if !sum.Equal(got.Subtotal) {
		t.Fatalf("subtotal %s, want %s", got.Subtotal, sum)
	}
}

func TestAssemble_NewMaterialIsZeroPriced(t *testing.T) {
	got := Assemble([]entities.ResolvedMaterial{
		{IsNew: true, ProductID: "new_فلانمادهناشناخته", Name: "فلان ماده ناشناخته", Quantity: 3, Unit: entities.UnitPiece},
	}, products())

	it := got.Items[0]
	if !it.UnitPrice.IsZero() || !it.TotalPrice.IsZero() || !got.Subtotal.IsZero() {
		t.Fatalf("expected zero pricing, got %+v subtotal=%s", it, got.Subtotal)
	}
	if it.ProductName != "فلان ماده ناشناخته" {
		t.Fatalf("unexpected name %q", it.ProductName)
	}
}

func TestNewDraft(t *testing.T) {
	assembled := Assemble([]entities.ResolvedMaterial{
		{ProductID: "p-board", Name: "پنل والیز", Quantity: 2, Unit: entities.UnitSheet},
	}, products())

	d := NewDraft("EST-1", "desc", assembled)
	if d.InvoiceNumber != "EST-1" || d.CustomerID != "" || d.Description != "desc" {
		t.Fatalf("unexpected header: %+v", d)
	}
	if !d.Total.Equal(d.Subtotal) || !d.Subtotal.Equal(decimal.NewFromInt(900000)) {
		t.Fatalf("unexpected totals: subtotal=%s total=%s", d.Subtotal, d.Total)
	}
	if !d.Discount.IsZero() || !d.Additions.IsZero() || !d.Tax.IsZero() {
		t.Fatalf("expected zero adjustments")
	}

	empty := NewDraft("EST-2", "", Assembled{})
	if empty.Items == nil {
		t.Fatalf("expected non-nil items")
	}
}

func TestDescribe(t *testing.T) {
	got := Describe([]entities.Estimation{
		{Description: "سقف کاذب مشبک: 8 × 4 متر"},
		{Description: "  "},
		{Description: "باکس و نورمخفی: 15 متر طول"},
	})
	want := "برآورد مصالح: سقف کاذب مشبک: 8 × 4 متر، باکس و نورمخفی: 15 متر طول"
	if got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
	if Describe(nil) != "برآورد مصالح" {
		t.Fatalf("unexpected empty description")
	}
}
