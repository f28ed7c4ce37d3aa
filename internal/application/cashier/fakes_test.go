package cashier

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/internal/domain/repository"
)

var errBoom = errors.New("conexão recusada")

func inWindow(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && !t.Before(*to) {
		return false
	}
	return true
}

type fakeSales struct {
	mu      sync.Mutex
	items   map[string]*entity.Sale
	listErr error
}

func newFakeSales() *fakeSales { return &fakeSales{items: map[string]*entity.Sale{}} }

func (f *fakeSales) Create(_ context.Context, s *entity.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.items[s.ID] = &cp
	return nil
}

func (f *fakeSales) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSales) UpdateItems(_ context.Context, id string, items []entity.SaleItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	s.Items = items
	return nil
}

func (f *fakeSales) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeSales) List(_ context.Context, flt repository.SaleFilter) ([]*entity.Sale, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var out []*entity.Sale
	for _, s := range f.items {
		if inWindow(s.Date, flt.From, flt.To) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, len(out), nil
}

type fakeTransactions struct {
	mu      sync.Mutex
	items   map[string]*entity.CashTransaction
	listErr error
}

func newFakeTransactions() *fakeTransactions {
	return &fakeTransactions{items: map[string]*entity.CashTransaction{}}
}

func (f *fakeTransactions) Create(_ context.Context, t *entity.CashTransaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *t
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTransactions) GetByID(_ context.Context, id string) (*entity.CashTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTransactions) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeTransactions) List(_ context.Context, flt repository.TransactionFilter) ([]*entity.CashTransaction, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var out []*entity.CashTransaction
	for _, t := range f.items {
		if flt.Type != "" && t.Type != flt.Type {
			continue
		}
		if inWindow(t.Date, flt.From, flt.To) {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	total := len(out)
	if flt.Limit > 0 {
		if flt.Offset >= len(out) {
			return []*entity.CashTransaction{}, total, nil
		}
		end := flt.Offset + flt.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[flt.Offset:end]
	}
	return out, total, nil
}

type fakeInfusions struct {
	mu    sync.Mutex
	items map[string]*entity.Infusion
}

func newFakeInfusions() *fakeInfusions { return &fakeInfusions{items: map[string]*entity.Infusion{}} }

func (f *fakeInfusions) Create(_ context.Context, inf *entity.Infusion) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *inf
	f.items[inf.ID] = &cp
	return nil
}

func (f *fakeInfusions) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeInfusions) DeleteMatching(_ context.Context, from, to time.Time, amount decimal.Decimal, user string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, inf := range f.items {
		if inWindow(inf.Date, &from, &to) && inf.Amount.Equal(amount) && strings.EqualFold(inf.User, user) {
			delete(f.items, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeInfusions) List(_ context.Context, from, to *time.Time) ([]*entity.Infusion, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Infusion
	for _, inf := range f.items {
		if inWindow(inf.Date, from, to) {
			cp := *inf
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeRefunds struct {
	mu    sync.Mutex
	items map[string]*entity.Refund
}

func newFakeRefunds() *fakeRefunds { return &fakeRefunds{items: map[string]*entity.Refund{}} }

func (f *fakeRefunds) Create(_ context.Context, r *entity.Refund) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *r
	f.items[r.ID] = &cp
	return nil
}

func (f *fakeRefunds) GetByID(_ context.Context, id string) (*entity.Refund, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRefunds) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRefunds) List(_ context.Context, flt repository.RefundFilter) ([]*entity.Refund, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Refund
	for _, r := range f.items {
		if flt.SaleID != "" && r.SaleID != flt.SaleID {
			continue
		}
		if flt.User != "" && !strings.EqualFold(r.User, flt.User) {
			continue
		}
		if inWindow(r.Date, flt.From, flt.To) {
			cp := *r
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type fakeClosings struct {
	mu      sync.Mutex
	items   []*entity.ClosingRecord
	listErr error
}

func (f *fakeClosings) Create(_ context.Context, c *entity.ClosingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeClosings) GetByID(_ context.Context, id string) (*entity.ClosingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClosings) List(_ context.Context, flt repository.ClosingFilter) ([]*entity.ClosingRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*entity.ClosingRecord
	for _, c := range f.items {
		if flt.Day != "" && c.Day != flt.Day {
			continue
		}
		if flt.User != "" && !strings.Contains(strings.ToLower(c.User), strings.ToLower(flt.User)) {
			continue
		}
		if flt.FromDay != "" && c.Day < flt.FromDay {
			continue
		}
		if flt.ToDay != "" && c.Day > flt.ToDay {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeTx ejecuta fn sin transacción real sobre los mismos fakes.
type fakeTx struct {
	txs *fakeTransactions
	inf *fakeInfusions
}

func (f fakeTx) RunCash(_ context.Context, fn func(repository.CashTransactionRepository, repository.InfusionRepository) error) error {
	return fn(f.txs, f.inf)
}

type fakePDF struct{}

func (fakePDF) GenerateClosingPDF(_ context.Context, c *entity.ClosingRecord) ([]byte, error) {
	return []byte("%PDF-" + c.ID), nil
}

type countingMetrics struct {
	mu        sync.Mutex
	summaries int
	statuses  []string
}

func (m *countingMetrics) SummaryComputed() {
	m.mu.Lock()
	m.summaries++
	m.mu.Unlock()
}

func (m *countingMetrics) ClosingRecorded(status string) {
	m.mu.Lock()
	m.statuses = append(m.statuses, status)
	m.mu.Unlock()
}
