package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"drywall_estimator/internal/domain/calculator"
	"drywall_estimator/internal/domain/entities"
	"drywall_estimator/internal/domain/estimation"
	"drywall_estimator/internal/domain/invoice"
	"drywall_estimator/internal/domain/resolver"
	"drywall_estimator/internal/infrastructure/metrics"
	"drywall_estimator/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID     = errors.New("invalid session_id")
	ErrInvalidEstimationID  = errors.New("invalid estimation id")
	ErrEstimationNotFound   = errors.New("estimation not found")
	ErrEmptyEstimation      = errors.New("estimation has no materials")
	ErrEmptySession         = errors.New("session has no estimations")
	ErrInvalidDraftID       = errors.New("invalid draft invoice id")
	ErrDraftInvoiceNotFound = errors.New("draft invoice not found")
)

// IEstimationUseCase exposes the estimating session.
//
// The pure engine (calculator, estimation, resolver, invoice) does the math;
// this layer owns the session list and the catalog/draft storage:
//   - Calculate        => run one calculator, nothing stored
//   - AddCalculated    => run a calculator and append the result as an estimation
//   - AddEstimation    => append caller-provided results
//   - Aggregate        => per-material totals for the session
//   - BuildDraftInvoice => aggregate, resolve, assemble, store the draft

type IEstimationUseCase interface {
	Calculate(ctx context.Context, kind calculator.Kind, in calculator.Input) ([]entities.MaterialResult, error)
	AddCalculated(ctx context.Context, sessionID string, kind calculator.Kind, in calculator.Input, description string) (entities.Estimation, error)
	AddEstimation(ctx context.Context, sessionID, description string, results []entities.MaterialResult) (entities.Estimation, error)
	ListEstimations(ctx context.Context, sessionID string) ([]entities.Estimation, error)
	RemoveEstimation(ctx context.Context, sessionID, id string) error
	ClearEstimations(ctx context.Context, sessionID string) (int, error)
	Aggregate(ctx context.Context, sessionID string) ([]entities.AggregatedResult, error)
	BuildDraftInvoice(ctx context.Context, sessionID string) (entities.DraftInvoice, error)
	GetDraftInvoice(ctx context.Context, id string) (entities.DraftInvoice, error)
}

type EstimationUseCase struct {
	repo     interfaces.IEstimationRepository
	catalog  interfaces.ICatalogRepository
	drafts   interfaces.IDraftInvoiceRepository
	builder  estimation.Builder
	resolver *resolver.Resolver
	newID    func() string
	now      func() time.Time
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(repo interfaces.IEstimationRepository, catalog interfaces.ICatalogRepository, drafts interfaces.IDraftInvoiceRepository) *EstimationUseCase {
	return &EstimationUseCase{
		repo:     repo,
		catalog:  catalog,
		drafts:   drafts,
		builder:  estimation.NewBuilder(),
		resolver: resolver.New(),
		newID:    uuid.NewString,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *EstimationUseCase) Calculate(_ context.Context, kind calculator.Kind, in calculator.Input) ([]entities.MaterialResult, error) {
	results, err := calculator.Calculate(kind, in)
	if err != nil {
		return nil, err
	}
	metrics.Calculations.WithLabelValues(string(kind)).Inc()
	return results, nil
}

func (u *EstimationUseCase) AddCalculated(ctx context.Context, sessionID string, kind calculator.Kind, in calculator.Input, description string) (entities.Estimation, error) {
	results, err := u.Calculate(ctx, kind, in)
	if err != nil {
		return entities.Estimation{}, err
	}
	if strings.TrimSpace(description) == "" {
		description = calculator.Describe(kind, in)
	}
	return u.AddEstimation(ctx, sessionID, description, results)
}

func (u *EstimationUseCase) AddEstimation(ctx context.Context, sessionID, description string, results []entities.MaterialResult) (entities.Estimation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.Estimation{}, ErrInvalidSessionID
	}
	// The builder accepts empty results; an empty estimation is useless on an invoice.
	if len(results) == 0 {
		log.Printf("[estimation][usecase] add rejected (empty results) session_id=%s", sessionID)
		return entities.Estimation{}, ErrEmptyEstimation
	}

	e := u.builder.New(sessionID, strings.TrimSpace(description), results)
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[estimation][usecase] add failed session_id=%s err=%v", sessionID, err)
		return entities.Estimation{}, err
	}
	metrics.EstimationsAdded.Inc()
	log.Printf("[estimation][usecase] add success session_id=%s estimation_id=%s lines=%d", sessionID, created.ID, len(created.Results))
	return created, nil
}

func (u *EstimationUseCase) ListEstimations(ctx context.Context, sessionID string) ([]entities.Estimation, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}
	return u.repo.ListBySessionID(ctx, sessionID)
}

func (u *EstimationUseCase) RemoveEstimation(ctx context.Context, sessionID, id string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEstimationID
	}

	removed, err := u.repo.Delete(ctx, sessionID, id)
	if err != nil {
		log.Printf("[estimation][usecase] remove failed session_id=%s estimation_id=%s err=%v", sessionID, id, err)
		return err
	}
	if !removed {
		return ErrEstimationNotFound
	}
	log.Printf("[estimation][usecase] remove success session_id=%s estimation_id=%s", sessionID, id)
	return nil
}

func (u *EstimationUseCase) ClearEstimations(ctx context.Context, sessionID string) (int, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return 0, ErrInvalidSessionID
	}

	n, err := u.repo.DeleteBySessionID(ctx, sessionID)
	if err != nil {
		log.Printf("[estimation][usecase] clear failed session_id=%s err=%v", sessionID, err)
		return 0, err
	}
	log.Printf("[estimation][usecase] clear success session_id=%s removed=%d", sessionID, n)
	return n, nil
}

func (u *EstimationUseCase) Aggregate(ctx context.Context, sessionID string) ([]entities.AggregatedResult, error) {
	list, err := u.ListEstimations(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return estimation.Aggregate(list), nil
}

func (u *EstimationUseCase) BuildDraftInvoice(ctx context.Context, sessionID string) (entities.DraftInvoice, error) {
	list, err := u.ListEstimations(ctx, sessionID)
	if err != nil {
		return entities.DraftInvoice{}, err
	}
	if len(list) == 0 {
		return entities.DraftInvoice{}, ErrEmptySession
	}

	snapshot, err := u.catalog.Snapshot(ctx)
	if err != nil {
		log.Printf("[estimation][usecase] catalog snapshot failed session_id=%s err=%v", sessionID, err)
		return entities.DraftInvoice{}, fmt.Errorf("load catalog: %w", err)
	}

	resolved := u.resolver.Resolve(estimation.Aggregate(list), snapshot)
	unresolved := 0
	for _, r := range resolved {
		if r.IsNew {
			unresolved++
		}
	}
	metrics.UnresolvedMaterials.Add(float64(unresolved))

	assembled := invoice.Assemble(resolved, snapshot.Products)

	now := u.now()
	id := u.newID()
	draft := invoice.NewDraft(invoiceNumber(now, id), invoice.Describe(list), assembled)
	draft.ID = id
	draft.SessionID = strings.TrimSpace(sessionID)
	draft.CreatedAt = now

	created, err := u.drafts.Create(ctx, draft)
	if err != nil {
		log.Printf("[estimation][usecase] draft store failed session_id=%s err=%v", draft.SessionID, err)
		return entities.DraftInvoice{}, err
	}
	metrics.DraftInvoicesBuilt.Inc()
	log.Printf("[estimation][usecase] draft built session_id=%s draft_id=%s items=%d unresolved=%d subtotal=%s",
		draft.SessionID, created.ID, len(created.Items), unresolved, created.Subtotal.String())
	return created, nil
}

func (u *EstimationUseCase) GetDraftInvoice(ctx context.Context, id string) (entities.DraftInvoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DraftInvoice{}, ErrInvalidDraftID
	}

	d, err := u.drafts.GetByID(ctx, id)
	if err != nil {
		return entities.DraftInvoice{}, err
	}
	if d.ID == "" {
		return entities.DraftInvoice{}, ErrDraftInvoiceNotFound
	}
	return d, nil
}

// invoiceNumber is EST-<yyyymmdd>-<first 8 id chars>.
func invoiceNumber(now time.Time, id string) string {
	short := strings.ReplaceAll(id, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("EST-%s-%s", now.Format("20060102"), strings.ToUpper(short))
}
