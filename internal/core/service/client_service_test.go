package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/camburiu/acessoria-api/internal/core/domain"
	"github.com/camburiu/acessoria-api/internal/core/ports"
)

// stubStore backs the client and vehicle repository stubs and mimics the FK
// cascade: deleting a client removes its vehicles.
type stubStore struct {
	clients       map[int64]*domain.Client
	vehicles      map[int64]*domain.Vehicle
	nextClientID  int64
	nextVehicleID int64
}

func newStubStore() *stubStore {
	return &stubStore{
		clients:  make(map[int64]*domain.Client),
		vehicles: make(map[int64]*domain.Vehicle),
	}
}

func (s *stubStore) cloneClient(c *domain.Client) *domain.Client {
	clone := *c
	clone.Vehicles = []domain.Vehicle{}
	for _, v := range s.vehicles {
		if v.ClientID == c.ID {
			clone.Vehicles = append(clone.Vehicles, *v)
		}
	}
	sort.Slice(clone.Vehicles, func(i, j int) bool { return clone.Vehicles[i].ID < clone.Vehicles[j].ID })
	return &clone
}

type stubClientRepo struct{ s *stubStore }

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	for _, existing := range r.s.clients {
		if existing.TaxID == c.TaxID {
			return nil, domain.ErrDuplicate
		}
	}
	clone := *c
	r.s.nextClientID++
	clone.ID = r.s.nextClientID
	r.s.clients[clone.ID] = &clone
	return r.s.cloneClient(&clone), nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return r.s.cloneClient(c), nil
}

func (r *stubClientRepo) FindAll(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		out = append(out, *r.s.cloneClient(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if _, ok := r.s.clients[c.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	r.s.clients[c.ID] = &clone
	return r.s.cloneClient(&clone), nil
}

func (r *stubClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.s.clients, id)
	// cascade
	for vid, v := range r.s.vehicles {
		if v.ClientID == id {
			delete(r.s.vehicles, vid)
		}
	}
	return nil
}

type stubVehicleRepo struct{ s *stubStore }

func (r *stubVehicleRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	for _, existing := range r.s.vehicles {
		if existing.Plate == v.Plate || existing.Renavam == v.Renavam {
			return nil, domain.ErrDuplicate
		}
	}
	clone := *v
	r.s.nextVehicleID++
	clone.ID = r.s.nextVehicleID
	r.s.vehicles[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubVehicleRepo) FindByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	v, ok := r.s.vehicles[id]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *stubVehicleRepo) FindAll(_ context.Context) ([]domain.Vehicle, error) {
	out := make([]domain.Vehicle, 0, len(r.s.vehicles))
	for _, v := range r.s.vehicles {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubVehicleRepo) Update(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if _, ok := r.s.vehicles[v.ID]; !ok {
		return nil, domain.ErrVehicleNotFound
	}
	clone := *v
	r.s.vehicles[v.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubVehicleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.vehicles[id]; !ok {
		return domain.ErrVehicleNotFound
	}
	delete(r.s.vehicles, id)
	return nil
}

var adminCaller = &domain.User{ID: 1, Status: domain.StatusAdmin}
var regularCaller = &domain.User{ID: 2, Status: domain.StatusRegular}

func TestClientService_CreateAndGet(t *testing.T) {
	svc := NewClientService(&stubClientRepo{newStubStore()}, testLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, regularCaller, ports.CreateClientInput{
		Name: "Oficina do Zé", TaxID: "12345678900", Phone: "47999990000",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.Get(ctx, regularCaller, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TaxID != "12345678900" {
		t.Fatalf("taxID = %q", got.TaxID)
	}
	if got.Vehicles == nil || len(got.Vehicles) != 0 {
		t.Fatalf("expected empty vehicle list, got %+v", got.Vehicles)
	}
}

func TestClientService_Create_Unauthenticated(t *testing.T) {
	svc := NewClientService(&stubClientRepo{newStubStore()}, testLogger())

	if _, err := svc.Create(context.Background(), nil, ports.CreateClientInput{Name: "X"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestClientService_Create_DuplicateTaxID(t *testing.T) {
	svc := NewClientService(&stubClientRepo{newStubStore()}, testLogger())
	ctx := context.Background()

	in := ports.CreateClientInput{Name: "A", TaxID: "111", Phone: "1"}
	if _, err := svc.Create(ctx, regularCaller, in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, regularCaller, in); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestClientService_List_AdminOnly(t *testing.T) {
	svc := NewClientService(&stubClientRepo{newStubStore()}, testLogger())
	ctx := context.Background()

	if _, err := svc.List(ctx, regularCaller); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.List(ctx, adminCaller); err != nil {
		t.Fatalf("List: %v", err)
	}
}

func TestClientService_Delete_CascadesToVehicles(t *testing.T) {
	store := newStubStore()
	clients := NewClientService(&stubClientRepo{store}, testLogger())
	vehicles := NewVehicleService(&stubVehicleRepo{store}, &stubClientRepo{store}, testLogger())
	ctx := context.Background()

	client, err := clients.Create(ctx, regularCaller, ports.CreateClientInput{Name: "A", TaxID: "111", Phone: "1"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	vehicle, err := vehicles.Create(ctx, regularCaller, ports.CreateVehicleInput{
		Plate: "ABC1234", Renavam: "123456789", ClientID: client.ID,
	})
	if err != nil {
		t.Fatalf("create vehicle: %v", err)
	}

	if err := clients.Delete(ctx, regularCaller, client.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for regular caller, got %v", err)
	}
	if err := clients.Delete(ctx, adminCaller, client.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := vehicles.Get(ctx, adminCaller, vehicle.ID); !errors.Is(err, domain.ErrVehicleNotFound) {
		t.Fatalf("expected cascade to remove vehicle, got %v", err)
	}
}

func TestClientService_Update(t *testing.T) {
	svc := NewClientService(&stubClientRepo{newStubStore()}, testLogger())
	ctx := context.Background()

	client, err := svc.Create(ctx, regularCaller, ports.CreateClientInput{Name: "A", TaxID: "111", Phone: "1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, regularCaller, client.ID, ports.CreateClientInput{Name: "B", TaxID: "111", Phone: "2"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "B" || updated.Phone != "2" {
		t.Fatalf("unexpected record: %+v", updated)
	}

	if _, err := svc.Update(ctx, regularCaller, 999, ports.CreateClientInput{Name: "X"}); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
