package usecase_test

import (
	"context"
	"sort"

	"github.com/jhoicas/maletas-pro/internal/application/usecase"
	"github.com/jhoicas/maletas-pro/internal/domain/entity"
	"github.com/jhoicas/maletas-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia.
// El cascade maleta→piezas del esquema se emula en fakeCaseRepo.Delete.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSellerRepo struct {
	byID map[string]*entity.Seller
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{byID: map[string]*entity.Seller{}}
}

func (f *fakeSellerRepo) Create(s *entity.Seller) error {
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSellerRepo) GetByID(id string) (*entity.Seller, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSellerRepo) List() ([]*entity.Seller, error) {
	out := make([]*entity.Seller, 0, len(f.byID))
	for _, s := range f.byID {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeSellerRepo) Update(s *entity.Seller) error {
	cp := *s
	f.byID[s.ID] = &cp
	return nil
}

func (f *fakeSellerRepo) Delete(id string) (bool, error) {
	_, ok := f.byID[id]
	delete(f.byID, id)
	return ok, nil
}

func (f *fakeSellerRepo) DeleteAll() error {
	f.byID = map[string]*entity.Seller{}
	return nil
}

type fakeCaseRepo struct {
	byID    map[string]*entity.Case
	sellers *fakeSellerRepo
	items   *fakeItemRepo
}

func newFakeCaseRepo(sellers *fakeSellerRepo, items *fakeItemRepo) *fakeCaseRepo {
	return &fakeCaseRepo{byID: map[string]*entity.Case{}, sellers: sellers, items: items}
}

func (f *fakeCaseRepo) Create(c *entity.Case) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCaseRepo) GetByID(id string) (*entity.Case, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCaseRepo) ListWithSeller() ([]*repository.CaseWithSeller, error) {
	var out []*repository.CaseWithSeller
	for _, c := range f.byID {
		row := &repository.CaseWithSeller{Case: *c}
		if c.SellerID != nil {
			if s, ok := f.sellers.byID[*c.SellerID]; ok {
				row.SellerName = s.Name
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Case.CreatedAt.After(out[j].Case.CreatedAt)
	})
	return out, nil
}

func (f *fakeCaseRepo) Update(c *entity.Case) error {
	existing, ok := f.byID[c.ID]
	if !ok {
		return nil
	}
	existing.SellerID = c.SellerID
	existing.Photo = c.Photo
	existing.TotalGross = c.TotalGross
	existing.CommissionValue = c.CommissionValue
	existing.EstimatedProfit = c.EstimatedProfit
	return nil
}

func (f *fakeCaseRepo) UpdateStatus(id string, status entity.CaseStatus) (bool, error) {
	c, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	c.Status = status
	return true, nil
}

func (f *fakeCaseRepo) Delete(id string) (bool, error) {
	_, ok := f.byID[id]
	if ok {
		delete(f.byID, id)
		_ = f.items.DeleteByCase(id) // cascade del esquema
	}
	return ok, nil
}

func (f *fakeCaseRepo) DeleteByStatus(status entity.CaseStatus) (int64, error) {
	var n int64
	for id, c := range f.byID {
		if c.Status == status {
			delete(f.byID, id)
			_ = f.items.DeleteByCase(id)
			n++
		}
	}
	return n, nil
}

func (f *fakeCaseRepo) CountBySeller(sellerID string) (int, error) {
	count := 0
	for _, c := range f.byID {
		if c.SellerID != nil && *c.SellerID == sellerID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCaseRepo) DeleteAll() error {
	f.byID = map[string]*entity.Case{}
	return nil
}

type fakeItemRepo struct {
	byCase map[string][]*entity.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{byCase: map[string][]*entity.Item{}}
}

func (f *fakeItemRepo) CreateBatch(items []*entity.Item) error {
	for _, it := range items {
		cp := *it
		f.byCase[it.CaseID] = append(f.byCase[it.CaseID], &cp)
	}
	return nil
}

func (f *fakeItemRepo) ListByCase(caseID string) ([]*entity.Item, error) {
	return f.byCase[caseID], nil
}

func (f *fakeItemRepo) DeleteByCase(caseID string) error {
	delete(f.byCase, caseID)
	return nil
}

func (f *fakeItemRepo) DeleteAll() error {
	f.byCase = map[string][]*entity.Item{}
	return nil
}

// fakeTxRunner ejecuta el callback directo contra los fakes (sin transacción real).
type fakeTxRunner struct {
	cases   *fakeCaseRepo
	items   *fakeItemRepo
	sellers *fakeSellerRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	caseRepo repository.CaseRepository,
	itemRepo repository.ItemRepository,
	sellerRepo repository.SellerRepository,
) error) error {
	return fn(f.cases, f.items, f.sellers)
}

// fixture arma el juego completo de fakes y los use cases sobre ellos.
type fixture struct {
	sellers *fakeSellerRepo
	cases   *fakeCaseRepo
	items   *fakeItemRepo

	sellerUC *usecase.SellerUseCase
	caseUC   *usecase.CaseUseCase
}

func newFixture() *fixture {
	sellers := newFakeSellerRepo()
	items := newFakeItemRepo()
	cases := newFakeCaseRepo(sellers, items)
	tx := &fakeTxRunner{cases: cases, items: items, sellers: sellers}
	return &fixture{
		sellers:  sellers,
		cases:    cases,
		items:    items,
		sellerUC: usecase.NewSellerUseCase(sellers, cases),
		caseUC:   usecase.NewCaseUseCase(tx, cases, items, sellers),
	}
}
