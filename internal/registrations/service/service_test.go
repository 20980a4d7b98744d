package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	campsrepo "carecamp_backend/internal/camps/repository"
	"carecamp_backend/internal/registrations/repository"
	"carecamp_backend/internal/registrations/transport"
	"carecamp_backend/platform/apperr"
	"carecamp_backend/platform/logger"
)

type fakeRegsRepo struct {
	regs       map[primitive.ObjectID]repository.Registration
	createErr  error
	confirmed  []primitive.ObjectID
	deletedIDs []primitive.ObjectID
}

func newFakeRegsRepo() *fakeRegsRepo {
	return &fakeRegsRepo{regs: map[primitive.ObjectID]repository.Registration{}}
}

func (f *fakeRegsRepo) Create(_ context.Context, reg repository.Registration) (primitive.ObjectID, error) {
	if f.createErr != nil {
		return primitive.NilObjectID, f.createErr
	}
	id := primitive.NewObjectID()
	reg.ID = id
	f.regs[id] = reg
	return id, nil
}

func (f *fakeRegsRepo) Get(_ context.Context, id primitive.ObjectID) (repository.Registration, error) {
	reg, ok := f.regs[id]
	if !ok {
		return repository.Registration{}, apperr.NotFound("registration not found")
	}
	return reg, nil
}

func (f *fakeRegsRepo) ListAll(_ context.Context, _ string) ([]repository.Registration, error) {
	out := []repository.Registration{}
	for _, reg := range f.regs {
		out = append(out, reg)
	}
	return out, nil
}

func (f *fakeRegsRepo) ListByEmail(_ context.Context, email, _, paymentStatus string) ([]repository.Registration, error) {
	out := []repository.Registration{}
	for _, reg := range f.regs {
		if reg.ParticipantEmail != email {
			continue
		}
		if paymentStatus != "" && reg.PaymentStatus != paymentStatus {
			continue
		}
		out = append(out, reg)
	}
	return out, nil
}

func (f *fakeRegsRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := f.regs[id]; !ok {
		return 0, nil
	}
	delete(f.regs, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return 1, nil
}

func (f *fakeRegsRepo) SetConfirmationStatus(_ context.Context, id primitive.ObjectID, status string) (int64, error) {
	reg, ok := f.regs[id]
	if !ok {
		return 0, nil
	}
	reg.ConfirmationStatus = status
	f.regs[id] = reg
	f.confirmed = append(f.confirmed, id)
	return 1, nil
}

func (f *fakeRegsRepo) SetPaymentStatus(_ context.Context, id primitive.ObjectID, status string) (int64, error) {
	reg, ok := f.regs[id]
	if !ok {
		return 0, nil
	}
	reg.PaymentStatus = status
	f.regs[id] = reg
	return 1, nil
}

var _ repository.Repository = (*fakeRegsRepo)(nil)

type fakeCampsRepo struct {
	camps        map[primitive.ObjectID]campsrepo.Camp
	incrementErr error
	increments   int
}

func newFakeCampsRepo() *fakeCampsRepo {
	return &fakeCampsRepo{camps: map[primitive.ObjectID]campsrepo.Camp{}}
}

func (f *fakeCampsRepo) List(_ context.Context, _ campsrepo.ListParams) ([]campsrepo.Camp, error) {
	return nil, nil
}

func (f *fakeCampsRepo) Popular(_ context.Context, _ int64) ([]campsrepo.Camp, error) {
	return nil, nil
}

func (f *fakeCampsRepo) Get(_ context.Context, id primitive.ObjectID) (campsrepo.Camp, error) {
	c, ok := f.camps[id]
	if !ok {
		return campsrepo.Camp{}, apperr.NotFound("camp not found")
	}
	return c, nil
}

func (f *fakeCampsRepo) Exists(ctx context.Context, id primitive.ObjectID) error {
	_, err := f.Get(ctx, id)
	return err
}

func (f *fakeCampsRepo) Create(_ context.Context, c campsrepo.Camp) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	c.ID = id
	f.camps[id] = c
	return id, nil
}

func (f *fakeCampsRepo) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (int64, error) {
	return 1, nil
}

func (f *fakeCampsRepo) Delete(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 1, nil
}

func (f *fakeCampsRepo) IncrementParticipants(_ context.Context, id primitive.ObjectID, delta int64) (int64, error) {
	if f.incrementErr != nil {
		return 0, f.incrementErr
	}
	c, ok := f.camps[id]
	if !ok {
		return 0, nil
	}
	c.ParticipantCount += delta
	f.camps[id] = c
	f.increments++
	return 1, nil
}

var _ campsrepo.Repository = (*fakeCampsRepo)(nil)

type fakeRoleLookup struct {
	roles map[string]string
}

func (f *fakeRoleLookup) RoleByEmail(_ context.Context, email string) (string, error) {
	return f.roles[email], nil
}

func newTestService(regs *fakeRegsRepo, camps *fakeCampsRepo) *Service {
	return New(regs, camps, &fakeRoleLookup{}, logger.New("test"))
}

func seedCamp(camps *fakeCampsRepo) primitive.ObjectID {
	id, _ := camps.Create(context.Background(), campsrepo.Camp{Name: "Vision Care Camp", Fees: 50})
	return id
}

func createRequest(campID primitive.ObjectID, email string) transport.CreateRegistrationRequest {
	return transport.CreateRegistrationRequest{
		CampID:           campID.Hex(),
		ParticipantEmail: email,
		ParticipantName:  "Jo Smith",
		Age:              30,
		Phone:            "+15550001111",
		Gender:           "female",
		EmergencyContact: "+15550002222",
	}
}

func TestCreate_Success(t *testing.T) {
	regs := newFakeRegsRepo()
	camps := newFakeCampsRepo()
	campID := seedCamp(camps)
	svc := newTestService(regs, camps)

	resp, err := svc.Create(context.Background(), "jo@example.com", createRequest(campID, "jo@example.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.CampName != "Vision Care Camp" {
		t.Fatalf("expected snapshotted camp name, got %q", resp.CampName)
	}
	if resp.Fees != 50 {
		t.Fatalf("expected snapshotted fees 50, got %d", resp.Fees)
	}
	if resp.PaymentStatus != repository.PaymentUnpaid {
		t.Fatalf("expected new registration Unpaid, got %q", resp.PaymentStatus)
	}
	if resp.ConfirmationStatus != repository.ConfirmationPending {
		t.Fatalf("expected new registration Pending, got %q", resp.ConfirmationStatus)
	}
	if camps.increments != 1 {
		t.Fatalf("expected one participant increment, got %d", camps.increments)
	}
}

func TestCreate_ForbidsOtherParticipant(t *testing.T) {
	regs := newFakeRegsRepo()
	camps := newFakeCampsRepo()
	campID := seedCamp(camps)
	svc := newTestService(regs, camps)

	_, err := svc.Create(context.Background(), "jo@example.com", createRequest(campID, "someone-else@example.com"))
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if len(regs.regs) != 0 {
		t.Fatalf("expected no registration stored")
	}
}

func TestCreate_UnknownCamp(t *testing.T) {
	regs := newFakeRegsRepo()
	camps := newFakeCampsRepo()
	svc := newTestService(regs, camps)

	_, err := svc.Create(context.Background(), "jo@example.com", createRequest(primitive.NewObjectID(), "jo@example.com"))
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreate_IncrementFailureSurfaced(t *testing.T) {
	regs := newFakeRegsRepo()
	camps := newFakeCampsRepo()
	campID := seedCamp(camps)
	camps.incrementErr = errors.New("write concern failure")
	svc := newTestService(regs, camps)

	_, err := svc.Create(context.Background(), "jo@example.com", createRequest(campID, "jo@example.com"))
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	// The insert is not rolled back.
	if len(regs.regs) != 1 {
		t.Fatalf("expected registration kept after increment failure, got %d", len(regs.regs))
	}
}

func TestGet_OwnershipEnforced(t *testing.T) {
	regs := newFakeRegsRepo()
	camps := newFakeCampsRepo()
	campID := seedCamp(camps)
	svc := newTestService(regs, camps)

	created, err := svc.Create(context.Background(), "jo@example.com", createRequest(campID, "jo@example.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), "jo@example.com", created.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), "intruder@example.com", created.ID); !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
}

func TestGet_AdminCanReadAnyRegistration(t *testing.T) {
	regs := newFakeRegsRepo()
	camps := newFakeCampsRepo()
	campID := seedCamp(camps)
	roles := &fakeRoleLookup{roles: map[string]string{"admin@example.com": "admin"}}
	svc := New(regs, camps, roles, logger.New("test"))

	created, err := svc.Create(context.Background(), "jo@example.com", createRequest(campID, "jo@example.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := svc.Get(context.Background(), "admin@example.com", created.ID)
	if err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
	if resp.ParticipantEmail != "jo@example.com" {
		t.Fatalf("expected participant's registration, got %q", resp.ParticipantEmail)
	}
}

func TestGet_BadID(t *testing.T) {
	svc := newTestService(newFakeRegsRepo(), newFakeCampsRepo())

	_, err := svc.Get(context.Background(), "jo@example.com", "not-an-id")
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}

func TestCancel_OwnerOnly(t *testing.T) {
	regs := newFakeRegsRepo()
	camps := newFakeCampsRepo()
	campID := seedCamp(camps)
	svc := newTestService(regs, camps)

	created, err := svc.Create(context.Background(), "jo@example.com", createRequest(campID, "jo@example.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Cancel(context.Background(), "intruder@example.com", created.ID); !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}
	if err := svc.Cancel(context.Background(), "jo@example.com", created.ID); err != nil {
		t.Fatalf("owner cancel failed: %v", err)
	}
	if len(regs.regs) != 0 {
		t.Fatalf("expected registration removed")
	}
	// Cancellation never decrements the camp's count.
	if camps.camps[campID].ParticipantCount != 1 {
		t.Fatalf("expected participant count untouched, got %d", camps.camps[campID].ParticipantCount)
	}
}

func TestConfirm_Idempotent(t *testing.T) {
	regs := newFakeRegsRepo()
	camps := newFakeCampsRepo()
	campID := seedCamp(camps)
	svc := newTestService(regs, camps)

	created, err := svc.Create(context.Background(), "jo@example.com", createRequest(campID, "jo@example.com"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	resp, err := svc.Confirm(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if resp.ConfirmationStatus != repository.ConfirmationConfirmed {
		t.Fatalf("expected Confirmed, got %q", resp.ConfirmationStatus)
	}

	resp, err = svc.Confirm(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("second confirm failed: %v", err)
	}
	if resp.ConfirmationStatus != repository.ConfirmationConfirmed {
		t.Fatalf("expected Confirmed after repeat, got %q", resp.ConfirmationStatus)
	}
	if len(regs.confirmed) != 1 {
		t.Fatalf("expected a single status write, got %d", len(regs.confirmed))
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(newFakeRegsRepo(), newFakeCampsRepo())

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
