package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"drywall_estimator/internal/domain/calculator"
	"drywall_estimator/internal/domain/entities"
	"drywall_estimator/internal/infrastructure/metrics"
	mock_interfaces "drywall_estimator/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo    *mock_interfaces.MockIEstimationRepository
	catalog *mock_interfaces.MockICatalogRepository
	drafts  *mock_interfaces.MockIDraftInvoiceRepository
	uc      *EstimationUseCase
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		repo:    mock_interfaces.NewMockIEstimationRepository(ctrl),
		catalog: mock_interfaces.NewMockICatalogRepository(ctrl),
		drafts:  mock_interfaces.NewMockIDraftInvoiceRepository(ctrl),
	}
	f.uc = NewEstimationUseCase(f.repo, f.catalog, f.drafts)
	f.uc.newID = func() string { return "3f2b9c1e-aaaa-bbbb-cccc-000000000001" }
	f.uc.now = func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) }
	return f
}

func screwEstimation(id string, q float64) entities.Estimation {
	return entities.Estimation{
		ID:          id,
		SessionID:   "s-1",
		Description: "پیچ",
		Results:     []entities.MaterialResult{{Material: calculator.MaterialPanelScrew, Quantity: q, Unit: entities.UnitPiece}},
	}
}

func TestEstimationUseCase_Calculate(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.Calculate(context.Background(), calculator.KindBoxCeiling, calculator.Input{Length: 15})
	if err != nil || len(res) != 3 {
		t.Fatalf("unexpected result %+v, %v", res, err)
	}

	if _, err := f.uc.Calculate(context.Background(), "dome", calculator.Input{}); !errors.Is(err, calculator.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestEstimationUseCase_AddEstimation(t *testing.T) {
	t.Run("invalid session", func(t *testing.T) {
		uc := NewEstimationUseCase(nil, nil, nil)
		_, err := uc.AddEstimation(context.Background(), "  ", "d", screwEstimation("x", 1).Results)
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("empty results", func(t *testing.T) {
		uc := NewEstimationUseCase(nil, nil, nil)
		_, err := uc.AddEstimation(context.Background(), "s-1", "d", nil)
		if !errors.Is(err, ErrEmptyEstimation) {
			t.Fatalf("expected ErrEmptyEstimation, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Estimation{}, errors.New("db"))

		_, err := f.uc.AddEstimation(context.Background(), "s-1", "d", screwEstimation("x", 1).Results)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		before := testutil.ToFloat64(metrics.EstimationsAdded)

		f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimation{})).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if e.ID == "" || e.SessionID != "s-1" || e.Description != "دستی" || len(e.Results) != 1 {
					t.Fatalf("unexpected estimation: %+v", e)
				}
				if e.CreatedAt.IsZero() {
					t.Fatalf("expected timestamp")
				}
				return e, nil
			},
		)

		_, err := f.uc.AddEstimation(context.Background(), " s-1 ", " دستی ", screwEstimation("x", 1500).Results)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := testutil.ToFloat64(metrics.EstimationsAdded) - before; got != 1 {
			t.Fatalf("expected counter to grow by 1, got %v", got)
		}
	})
}

func TestEstimationUseCase_AddCalculated(t *testing.T) {
	t.Run("generates description", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimation) (entities.Estimation, error) {
				if e.Description != "سقف کاذب مشبک: 8 × 4 متر" {
					t.Fatalf("unexpected description %q", e.Description)
				}
				if len(e.Results) != 7 {
					t.Fatalf("expected 7 lines, got %d", len(e.Results))
				}
				return e, nil
			},
		)

		_, err := f.uc.AddCalculated(context.Background(), "s-1", calculator.KindGridCeiling, calculator.Input{Length: 8, Width: 4}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid dimensions produce nothing to add", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.AddCalculated(context.Background(), "s-1", calculator.KindFlatCeiling, calculator.Input{Length: 5}, "")
		if !errors.Is(err, ErrEmptyEstimation) {
			t.Fatalf("expected ErrEmptyEstimation, got %v", err)
		}
	})
}

func TestEstimationUseCase_RemoveEstimation(t *testing.T) {
	cases := []struct {
		name      string
		sessionID string
		id        string
		setup     func(f fixture)
		want      error
	}{
		{name: "invalid session", sessionID: "", id: "e-1", want: ErrInvalidSessionID},
		{name: "invalid id", sessionID: "s-1", id: " ", want: ErrInvalidEstimationID},
		{
			name: "not found", sessionID: "s-1", id: "e-1",
			setup: func(f fixture) { f.repo.EXPECT().Delete(gomock.Any(), "s-1", "e-1").Return(false, nil) },
			want:  ErrEstimationNotFound,
		},
		{
			name: "removed", sessionID: "s-1", id: "e-1",
			setup: func(f fixture) { f.repo.EXPECT().Delete(gomock.Any(), "s-1", "e-1").Return(true, nil) },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			if tc.setup != nil {
				tc.setup(f)
			}
			err := f.uc.RemoveEstimation(context.Background(), tc.sessionID, tc.id)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestEstimationUseCase_ClearEstimations(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().DeleteBySessionID(gomock.Any(), "s-1").Return(3, nil)

	n, err := f.uc.ClearEstimations(context.Background(), "s-1")
	if err != nil || n != 3 {
		t.Fatalf("unexpected result %d, %v", n, err)
	}

	if _, err := f.uc.ClearEstimations(context.Background(), ""); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestEstimationUseCase_Aggregate(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().ListBySessionID(gomock.Any(), "s-1").Return([]entities.Estimation{
		screwEstimation("e-1", 1500),
		screwEstimation("e-2", 500),
	}, nil)

	got, err := f.uc.Aggregate(context.Background(), "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Quantity != 2000 {
		t.Fatalf("unexpected aggregate %+v", got)
	}
}

func TestEstimationUseCase_BuildDraftInvoice(t *testing.T) {
	t.Run("empty session", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().ListBySessionID(gomock.Any(), "s-1").Return(nil, nil)

		_, err := f.uc.BuildDraftInvoice(context.Background(), "s-1")
		if !errors.Is(err, ErrEmptySession) {
			t.Fatalf("expected ErrEmptySession, got %v", err)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		f := newFixture(t)
		catalogErr := errors.New("scan failed")
		f.repo.EXPECT().ListBySessionID(gomock.Any(), "s-1").Return([]entities.Estimation{screwEstimation("e-1", 1)}, nil)
		f.catalog.EXPECT().Snapshot(gomock.Any()).Return(entities.CatalogSnapshot{}, catalogErr)

		_, err := f.uc.BuildDraftInvoice(context.Background(), "s-1")
		if !errors.Is(err, catalogErr) {
			t.Fatalf("expected wrapped catalog error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		before := testutil.ToFloat64(metrics.UnresolvedMaterials)

		f.repo.EXPECT().ListBySessionID(gomock.Any(), "s-1").Return([]entities.Estimation{
			screwEstimation("e-1", 1500),
			screwEstimation("e-2", 500),
			{ID: "e-3", Description: "دیگر", Results: []entities.MaterialResult{{Material: "فلان ماده ناشناخته", Quantity: 1, Unit: entities.UnitPiece}}},
		}, nil)
		f.catalog.EXPECT().Snapshot(gomock.Any()).Return(entities.CatalogSnapshot{
			Products: []entities.CatalogProduct{
				{ID: "p-ps", Name: "پیچ پنل 25", Unit: entities.UnitPack, Price: decimal.NewFromInt(800000)},
			},
		}, nil)
		f.drafts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.DraftInvoice) (entities.DraftInvoice, error) {
				return d, nil
			},
		)

		d, err := f.uc.BuildDraftInvoice(context.Background(), "s-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "3f2b9c1e-aaaa-bbbb-cccc-000000000001" || d.SessionID != "s-1" {
			t.Fatalf("unexpected identity: %+v", d)
		}
		if d.InvoiceNumber != "EST-20240506-3F2B9C1E" {
			t.Fatalf("unexpected invoice number %q", d.InvoiceNumber)
		}
		if len(d.Items) != 2 {
			t.Fatalf("expected 2 items, got %+v", d.Items)
		}
		screw := d.Items[0]
		if screw.ProductID != "p-ps" || screw.Quantity != 2 || screw.Unit != entities.UnitPack {
			t.Fatalf("unexpected screw line %+v", screw)
		}
		unknown := d.Items[1]
		if unknown.ProductID != "new_فلانمادهناشناخته" || !unknown.UnitPrice.IsZero() {
			t.Fatalf("unexpected placeholder line %+v", unknown)
		}
		if !d.Subtotal.Equal(decimal.NewFromInt(1600000)) || !d.Total.Equal(d.Subtotal) {
			t.Fatalf("unexpected totals subtotal=%s total=%s", d.Subtotal, d.Total)
		}
		if d.Description != "برآورد مصالح: پیچ، پیچ، دیگر" {
			t.Fatalf("unexpected description %q", d.Description)
		}
		if got := testutil.ToFloat64(metrics.UnresolvedMaterials) - before; got != 1 {
			t.Fatalf("expected one unresolved material, got %v", got)
		}
	})
}

func TestEstimationUseCase_GetDraftInvoice(t *testing.T) {
	f := newFixture(t)
	f.drafts.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.DraftInvoice{}, nil)
	f.drafts.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.DraftInvoice{ID: "d-1"}, nil)

	if _, err := f.uc.GetDraftInvoice(context.Background(), " "); !errors.Is(err, ErrInvalidDraftID) {
		t.Fatalf("expected ErrInvalidDraftID, got %v", err)
	}
	if _, err := f.uc.GetDraftInvoice(context.Background(), "missing"); !errors.Is(err, ErrDraftInvoiceNotFound) {
		t.Fatalf("expected ErrDraftInvoiceNotFound, got %v", err)
	}
	if d, err := f.uc.GetDraftInvoice(context.Background(), "d-1"); err != nil || d.ID != "d-1" {
		t.Fatalf("unexpected result %+v, %v", d, err)
	}
}
