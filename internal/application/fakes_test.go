package application

import (
	"context"
	"errors"

	"github.com/ThisCore/treinopago/internal/domain"
	"github.com/ThisCore/treinopago/internal/ports"
)

// fakeAPI is an in-memory ports.API. When err is set every call returns
// it; when gate is set every call blocks until the channel is closed.
// Call counters are only read after Wait, which orders them after the
// command goroutine's writes.
type fakeAPI struct {
	clients  []domain.Client
	plans    []domain.Plan
	billings []domain.Billing
	pixKey   string

	err  error
	gate chan struct{}

	listClientsCalls  int
	createClientCalls int
	listPlansCalls    int
	createPlanCalls   int
	listBillingsCalls int
	setPixKeyCalls    int

	lastUpdateClientReq ports.UpdateClientRequest
	lastUpdatePlanReq   ports.UpdatePlanRequest
	lastPixKey          string
	deletedClientIDs    []domain.ClientID
	deletedPlanIDs      []domain.PlanID
}

func (f *fakeAPI) wait() {
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeAPI) ListClients(context.Context) ([]domain.Client, error) {
	f.wait()
	f.listClientsCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.clients, nil
}

func (f *fakeAPI) GetClient(_ context.Context, id domain.ClientID) (domain.Client, error) {
	f.wait()
	if f.err != nil {
		return domain.Client{}, f.err
	}
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Client{}, errors.New("client not found")
}

func (f *fakeAPI) CreateClient(_ context.Context, req ports.CreateClientRequest) (domain.Client, error) {
	f.wait()
	f.createClientCalls++
	if f.err != nil {
		return domain.Client{}, f.err
	}
	created := domain.Client{ID: "created", Name: req.Name, Email: req.Email, StartDate: req.StartDate, PlanID: req.PlanID}
	f.clients = append(f.clients, created)
	return created, nil
}

func (f *fakeAPI) UpdateClient(_ context.Context, id domain.ClientID, req ports.UpdateClientRequest) (domain.Client, error) {
	f.wait()
	f.lastUpdateClientReq = req
	if f.err != nil {
		return domain.Client{}, f.err
	}
	updated := domain.Client{ID: id, Name: "updated"}
	if req.Name != nil {
		updated.Name = *req.Name
	}
	return updated, nil
}

func (f *fakeAPI) DeleteClient(_ context.Context, id domain.ClientID) error {
	f.wait()
	f.deletedClientIDs = append(f.deletedClientIDs, id)
	return f.err
}

func (f *fakeAPI) ListPlans(context.Context) ([]domain.Plan, error) {
	f.wait()
	f.listPlansCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.plans, nil
}

func (f *fakeAPI) GetPlan(_ context.Context, id domain.PlanID) (domain.Plan, error) {
	f.wait()
	if f.err != nil {
		return domain.Plan{}, f.err
	}
	for _, p := range f.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Plan{}, errors.New("plan not found")
}

func (f *fakeAPI) CreatePlan(_ context.Context, req ports.CreatePlanRequest) (domain.Plan, error) {
	f.wait()
	f.createPlanCalls++
	if f.err != nil {
		return domain.Plan{}, f.err
	}
	created := domain.Plan{ID: "created", Name: req.Name, Price: req.Price, Recurrence: req.Recurrence, Active: true}
	f.plans = append(f.plans, created)
	return created, nil
}

func (f *fakeAPI) UpdatePlan(_ context.Context, id domain.PlanID, req ports.UpdatePlanRequest) (domain.Plan, error) {
	f.wait()
	f.lastUpdatePlanReq = req
	if f.err != nil {
		return domain.Plan{}, f.err
	}
	updated := domain.Plan{ID: id, Name: "updated"}
	if req.Name != nil {
		updated.Name = *req.Name
	}
	return updated, nil
}

func (f *fakeAPI) DeletePlan(_ context.Context, id domain.PlanID) error {
	f.wait()
	f.deletedPlanIDs = append(f.deletedPlanIDs, id)
	return f.err
}

func (f *fakeAPI) ListBillings(context.Context) ([]domain.Billing, error) {
	f.wait()
	f.listBillingsCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.billings, nil
}

func (f *fakeAPI) GetBilling(_ context.Context, id domain.BillingID) (domain.Billing, error) {
	f.wait()
	if f.err != nil {
		return domain.Billing{}, f.err
	}
	for _, b := range f.billings {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Billing{}, errors.New("billing not found")
}

func (f *fakeAPI) GetPixKey(context.Context) (string, error) {
	f.wait()
	if f.err != nil {
		return "", f.err
	}
	return f.pixKey, nil
}

func (f *fakeAPI) SetPixKey(_ context.Context, key string) error {
	f.wait()
	f.setPixKeyCalls++
	f.lastPixKey = key
	if f.err != nil {
		return f.err
	}
	f.pixKey = key
	return nil
}

var _ ports.API = (*fakeAPI)(nil)

// fakePrefs is an in-memory ports.PreferenceStore with an optional
// write failure.
type fakePrefs struct {
	flags    map[string]bool
	writeErr error
	sets     int
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{flags: map[string]bool{}}
}

func (f *fakePrefs) GetBool(key string) bool {
	return f.flags[key]
}

func (f *fakePrefs) SetBool(key string, value bool) error {
	f.sets++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.flags[key] = value
	return nil
}

var _ ports.PreferenceStore = (*fakePrefs)(nil)
