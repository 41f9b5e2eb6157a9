package handlers_test

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/handover"
	"service-dispatch/internal/service/orders"
)

type stubOrderUsecase struct {
	listFn         func(ctx context.Context, q domain.OrderQuery, s domain.OrderSort, page, size int) (domain.Paged[domain.Order], error)
	queryFn        func(ctx context.Context, q domain.OrderQuery, s domain.OrderSort) ([]domain.Order, error)
	getFn          func(ctx context.Context, id string) (*domain.Order, error)
	createFn       func(ctx context.Context, in orders.CreateInput) (*domain.Order, error)
	updateFn       func(ctx context.Context, id string, p domain.OrderPatch, actor string) (*domain.Order, error)
	bulkFn         func(ctx context.Context, ids []string, p domain.OrderPatch) (domain.BulkResult, error)
	listCouriersFn func(ctx context.Context) ([]domain.Courier, error)
}

func (s *stubOrderUsecase) List(ctx context.Context, q domain.OrderQuery, srt domain.OrderSort, page, size int) (domain.Paged[domain.Order], error) {
	return s.listFn(ctx, q, srt, page, size)
}

func (s *stubOrderUsecase) Query(ctx context.Context, q domain.OrderQuery, srt domain.OrderSort) ([]domain.Order, error) {
	return s.queryFn(ctx, q, srt)
}

func (s *stubOrderUsecase) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderUsecase) Create(ctx context.Context, in orders.CreateInput) (*domain.Order, error) {
	return s.createFn(ctx, in)
}

func (s *stubOrderUsecase) Update(ctx context.Context, id string, p domain.OrderPatch, actor string) (*domain.Order, error) {
	return s.updateFn(ctx, id, p, actor)
}

func (s *stubOrderUsecase) BulkUpdate(ctx context.Context, ids []string, p domain.OrderPatch) (domain.BulkResult, error) {
	return s.bulkFn(ctx, ids, p)
}

func (s *stubOrderUsecase) ListCouriers(ctx context.Context) ([]domain.Courier, error) {
	return s.listCouriersFn(ctx)
}

type stubHandoverUsecase struct {
	openFn          func() handover.Session
	getFn           func(id string) (handover.Session, error)
	closeFn         func(id string) error
	resetFn         func(id string) (handover.Session, error)
	selectCourierFn func(ctx context.Context, id, courierID string) (handover.Session, error)
	scanFn          func(id, barcode string) (handover.Session, handover.Feedback, error)
	commitFn        func(ctx context.Context, id, actor string) (handover.CommitResult, error)
}

func (s *stubHandoverUsecase) Open() handover.Session { return s.openFn() }

func (s *stubHandoverUsecase) Get(id string) (handover.Session, error) { return s.getFn(id) }

func (s *stubHandoverUsecase) Close(id string) error { return s.closeFn(id) }

func (s *stubHandoverUsecase) Reset(id string) (handover.Session, error) { return s.resetFn(id) }

func (s *stubHandoverUsecase) SelectCourier(ctx context.Context, id, courierID string) (handover.Session, error) {
	return s.selectCourierFn(ctx, id, courierID)
}

func (s *stubHandoverUsecase) Scan(id, barcode string) (handover.Session, handover.Feedback, error) {
	return s.scanFn(id, barcode)
}

func (s *stubHandoverUsecase) Commit(ctx context.Context, id, actor string) (handover.CommitResult, error) {
	return s.commitFn(ctx, id, actor)
}

type stubBagUsecase struct {
	listFn    func(ctx context.Context, courierID string) ([]domain.Bag, error)
	getFn     func(ctx context.Context, id string) (*domain.Bag, error)
	detailsFn func(ctx context.Context, id string) (handover.BagDetails, error)
}

func (s *stubBagUsecase) ListBags(ctx context.Context, courierID string) ([]domain.Bag, error) {
	return s.listFn(ctx, courierID)
}

func (s *stubBagUsecase) GetBag(ctx context.Context, id string) (*domain.Bag, error) {
	return s.getFn(ctx, id)
}

func (s *stubBagUsecase) Details(ctx context.Context, id string) (handover.BagDetails, error) {
	return s.detailsFn(ctx, id)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}
