package estimation

import (
	"fmt"
	"testing"
	"time"

	"drywall_estimator/internal/domain/entities"
)

func fixedBuilder() Builder {
	n := 0
	return Builder{
		newID: func() string {
			n++
			return fmt.Sprintf("est-%d", n)
		},
		now: func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) },
	}
}

func screws(q float64) []entities.MaterialResult {
	return []entities.MaterialResult{{Material: "پیچ پنل", Quantity: q, Unit: entities.UnitPiece}}
}

func TestBuilder_AddCopiesResultsAndKeepsInputList(t *testing.T) {
	b := fixedBuilder()
	results := screws(1500)

	list, e := b.Add(nil, "s-1", "first", results)
	results[0].Quantity = 1

	if e.ID != "est-1" || e.SessionID != "s-1" || e.Description != "first" {
		t.Fatalf("unexpected estimation: %+v", e)
	}
	if list[0].Results[0].Quantity != 1500 {
		t.Fatalf("results were not copied: %+v", list[0].Results)
	}

	list2, e2 := b.Add(list, "s-1", "second", nil)
	if len(list) != 1 || len(list2) != 2 {
		t.Fatalf("unexpected lengths: %d, %d", len(list), len(list2))
	}
	if e2.ID == e.ID {
		t.Fatalf("expected unique ids, both %q", e.ID)
	}
	if len(e2.Results) != 0 {
		t.Fatalf("expected empty estimation to be allowed")
	}
}

func TestNewBuilder_GeneratesIDs(t *testing.T) {
	b := NewBuilder()
	a := b.New("s", "a", nil)
	c := b.New("s", "c", nil)
	if a.ID == "" || a.ID == c.ID {
		t.Fatalf("expected distinct generated ids, got %q and %q", a.ID, c.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Fatalf("expected timestamp")
	}
}

func TestRemove(t *testing.T) {
	b := fixedBuilder()
	list, _ := b.Add(nil, "s", "a", screws(1))
	list, target := b.Add(list, "s", "b", screws(2))
	list, _ = b.Add(list, "s", "c", screws(3))

	out, found := Remove(list, target.ID)
	if !found || len(out) != 2 {
		t.Fatalf("expected removal, got found=%v len=%d", found, len(out))
	}
	if out[0].Description != "a" || out[1].Description != "c" {
		t.Fatalf("unexpected order after removal: %+v", out)
	}
	if len(list) != 3 {
		t.Fatalf("input list was modified")
	}

	if _, found := Remove(list, "missing"); found {
		t.Fatalf("expected missing id to be reported")
	}
}

func TestAggregate_SumsPerMaterialAndUnit(t *testing.T) {
	b := fixedBuilder()
	list, _ := b.Add(nil, "s", "a", screws(1500))
	list, _ = b.Add(list, "s", "b", screws(500))

	got := Aggregate(list)
	if len(got) != 1 {
		t.Fatalf("expected a single line, got %+v", got)
	}
	if got[0].Quantity != 2000 || got[0].Unit != entities.UnitPiece {
		t.Fatalf("unexpected aggregate: %+v", got[0])
	}
}

func TestAggregate_FirstSeenOrderAndUnitSeparation(t *testing.T) {
	list := []entities.Estimation{
		{ID: "1", Results: []entities.MaterialResult{
			{Material: "تایل", Quantity: 10, Unit: entities.UnitPiece},
			{Material: "آویز", Quantity: 3, Unit: entities.UnitPiece},
		}},
		{ID: "2", Results: []entities.MaterialResult{
			{Material: "پشم سنگ", Quantity: 4, Unit: entities.UnitPack},
			{Material: "پشم سنگ", Quantity: 20, Unit: entities.UnitInsulation},
			{Material: "تایل", Quantity: 5, Unit: entities.UnitPiece},
		}},
	}

	got := Aggregate(list)
	want := []entities.AggregatedResult{
		{Material: "تایل", Quantity: 15, Unit: entities.UnitPiece},
		{Material: "آویز", Quantity: 3, Unit: entities.UnitPiece},
		{Material: "پشم سنگ", Quantity: 4, Unit: entities.UnitPack},
		{Material: "پشم سنگ", Quantity: 20, Unit: entities.UnitInsulation},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if list[0].Results[0].Quantity != 10 {
		t.Fatalf("input was mutated")
	}
}

func TestAggregate_Empty(t *testing.T) {
	if got := Aggregate(nil); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	list := []entities.Estimation{
		{ID: "1", Results: screws(1500)},
		{ID: "2", Results: []entities.MaterialResult{{Material: "تایل", Quantity: 92, Unit: entities.UnitPiece}}},
		{ID: "3", Results: screws(500)},
	}
	once := Aggregate(list)
	twice := Aggregate([]entities.Estimation{{ID: "agg", Results: once}})

	if len(once) != len(twice) {
		t.Fatalf("length changed: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("line %d changed: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

func TestAggregate_Additive(t *testing.T) {
	a := []entities.Estimation{
		{ID: "a1", Results: screws(100)},
		{ID: "a2", Results: []entities.MaterialResult{{Material: "آویز", Quantity: 7, Unit: entities.UnitPiece}}},
	}
	b := []entities.Estimation{
		{ID: "b1", Results: screws(900)},
		{ID: "b2", Results: []entities.MaterialResult{{Material: "تایل", Quantity: 4, Unit: entities.UnitPiece}}},
	}

	sum := map[string]float64{}
	for _, r := range Aggregate(a) {
		sum[r.Key()] += r.Quantity
	}
	for _, r := range Aggregate(b) {
		sum[r.Key()] += r.Quantity
	}

	combined := Aggregate(append(append([]entities.Estimation{}, a...), b...))
	if len(combined) != len(sum) {
		t.Fatalf("expected %d keys, got %+v", len(sum), combined)
	}
	for _, r := range combined {
		if sum[r.Key()] != r.Quantity {
			t.Fatalf("%s = %v, want %v", r.Key(), r.Quantity, sum[r.Key()])
		}
	}
}
