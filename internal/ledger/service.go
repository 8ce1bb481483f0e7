package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	// InsertTransaction prepends the record to the persisted sequence.
	InsertTransaction(ctx context.Context, tx *Transaction) error
	// InsertTransactions prepends a batch in one persisted write; the
	// first element of txs ends up at position 0.
	InsertTransactions(ctx context.Context, txs []*Transaction) error
	// ListTransactions returns the full sequence, newest-first.
	ListTransactions(ctx context.Context) ([]*Transaction, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	Type     Type
	ItemName string
	Quantity int64
	Price    int64
	Notes    string
	Customer string
	Supplier string
	// Date overrides the creation timestamp when non-zero (used by the
	// legacy importer); interactive creation leaves it zero.
	Date time.Time
}

func validate(p CreateParams) error {
	if !p.Type.Valid() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown type %q", p.Type)}
	}

	if strings.TrimSpace(p.ItemName) == "" {
		return &ValidationError{Field: "itemName", Reason: "must not be empty"}
	}

	if p.Quantity < 1 {
		return &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}

	if p.Price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}

	return nil
}

// codeAttempts is the number of regenerations allowed when a freshly
// generated code is already present in the ledger.
const codeAttempts = 3

// Append validates the input, stamps identifiers and the creation
// timestamp, and prepends the new record to the persisted sequence.
// The ledger is left untouched when validation fails.
func (s *Service) Append(ctx context.Context, params CreateParams) (*Transaction, error) {
	if err := validate(params); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	tx := s.build(params, existing)
	if err := s.repo.InsertTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("appending transaction: %w", err)
	}

	return tx, nil
}

// CreateBatch validates every input, then appends them in a single
// persisted write. params[0] ends up newest. Nothing is written when
// any row fails validation.
func (s *Service) CreateBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	for i, p := range params {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	existing, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = s.build(p, existing)
		existing = append(existing, txs[i])
	}

	if err := s.repo.InsertTransactions(ctx, txs); err != nil {
		return nil, fmt.Errorf("appending batch: %w", err)
	}

	return txs, nil
}

// List returns the full ledger, newest-first. An empty ledger yields an
// empty sequence, not an error.
func (s *Service) List(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// Get looks a transaction up by its id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	txs, err := s.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}

	for _, tx := range txs {
		if tx.ID == id {
			return tx, nil
		}
	}

	return nil, ErrNotFound
}

func (s *Service) build(params CreateParams, existing []*Transaction) *Transaction {
	date := params.Date
	if date.IsZero() {
		date = s.now()
	}

	tx := &Transaction{
		ID:       uuid.New(),
		Code:     uniqueCode(func() string { return GenerateCode(params.Type, date) }, existing),
		Type:     params.Type,
		ItemName: strings.TrimSpace(params.ItemName),
		Quantity: params.Quantity,
		Price:    params.Price,
		Date:     date,
		Notes:    params.Notes,
	}

	// Counterparty fields only make sense for their variant.
	switch params.Type {
	case TypeSell:
		tx.Customer = params.Customer
		tx.DeliveryCode = GenerateDeliveryCode(date)
	case TypeBuy:
		tx.Supplier = params.Supplier
	}

	return tx
}

// uniqueCode regenerates a colliding code up to codeAttempts times,
// then accepts whatever it has; codes are advisory, the id is the key.
func uniqueCode(gen func() string, existing []*Transaction) string {
	code := gen()
	for attempt := 0; attempt < codeAttempts; attempt++ {
		if !codeTaken(code, existing) {
			break
		}

		code = gen()
	}

	return code
}

func codeTaken(code string, existing []*Transaction) bool {
	for _, tx := range existing {
		if tx.Code == code {
			return true
		}
	}

	return false
}
