package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carecamp_backend/internal/payments/repository"
	"carecamp_backend/internal/payments/transport"
	regsrepo "carecamp_backend/internal/registrations/repository"
	"carecamp_backend/internal/store"
	"carecamp_backend/platform/apperr"
	"carecamp_backend/platform/logger"
)

// minorUnitsPerUnit converts listing fees (whole currency units) into
// the minor units the payment provider expects.
const minorUnitsPerUnit = 100

// IntentCreator opens a payment intent with the provider and returns
// the client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency, email, registrationID string) (string, error)
}

// Service provides business logic for the payment flow.
type Service struct {
	repo     repository.Repository
	regs     regsrepo.Repository
	intents  IntentCreator
	currency string
	log      *logger.Logger
}

// New creates a new payments service.
func New(repo repository.Repository, regs regsrepo.Repository, intents IntentCreator, currency string, log *logger.Logger) *Service {
	return &Service{repo: repo, regs: regs, intents: intents, currency: currency, log: log}
}

// CreateIntent opens a payment intent for the caller's registration.
func (s *Service) CreateIntent(ctx context.Context, callerEmail string, req transport.CreateIntentRequest) (transport.IntentResponse, error) {
	reg, err := s.ownedRegistration(ctx, callerEmail, req.RegistrationID)
	if err != nil {
		return transport.IntentResponse{}, err
	}
	if reg.PaymentStatus == regsrepo.PaymentPaid {
		return transport.IntentResponse{}, apperr.Conflict("registration already paid")
	}

	amount := reg.Fees * minorUnitsPerUnit
	secret, err := s.intents.CreateIntent(ctx, amount, s.currency, callerEmail, reg.ID.Hex())
	if err != nil {
		s.log.StoreError("payments.create_intent", err)
		return transport.IntentResponse{}, apperr.Internal("could not create payment intent")
	}

	s.log.PaymentEvent("intent_created", callerEmail, amount, s.currency)
	return transport.IntentResponse{ClientSecret: secret, Amount: amount, Currency: s.currency}, nil
}

// Record stores the payment for the caller's registration and flips its
// payment status to Paid. The payment record is kept even when the
// status flip fails; that partial state is surfaced to the caller, not
// rolled back.
func (s *Service) Record(ctx context.Context, callerEmail, registrationIDHex string, req transport.RecordPaymentRequest) (transport.PaymentResponse, error) {
	reg, err := s.ownedRegistration(ctx, callerEmail, registrationIDHex)
	if err != nil {
		return transport.PaymentResponse{}, err
	}
	if reg.PaymentStatus == regsrepo.PaymentPaid {
		return transport.PaymentResponse{}, apperr.Conflict("registration already paid")
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	payment := repository.Payment{
		RegistrationID:   reg.ID,
		CampID:           reg.CampID,
		CampName:         reg.CampName,
		ParticipantEmail: reg.ParticipantEmail,
		Amount:           reg.Fees * minorUnitsPerUnit,
		Currency:         s.currency,
		TransactionID:    transactionID,
		Status:           repository.StatusSucceeded,
		CreatedAt:        time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, payment)
	if err != nil {
		s.log.StoreError("payments.create", err)
		return transport.PaymentResponse{}, apperr.Internal("could not record payment")
	}
	payment.ID = id

	modified, err := s.regs.SetPaymentStatus(ctx, reg.ID, regsrepo.PaymentPaid)
	if err != nil || modified == 0 {
		if err != nil {
			s.log.StoreError("payments.set_payment_status", err)
		}
		return transport.PaymentResponse{}, apperr.Internal("payment recorded but registration status not updated, please contact admin")
	}

	s.log.PaymentEvent("payment_recorded", callerEmail, payment.Amount, payment.Currency)
	return toPaymentResponse(payment), nil
}

// History returns a participant's payments, newest first.
func (s *Service) History(ctx context.Context, email string) ([]transport.PaymentResponse, error) {
	payments, err := s.repo.ListByEmail(ctx, email)
	if err != nil {
		s.log.StoreError("payments.history", err)
		return nil, apperr.Internal("could not list payments")
	}

	out := make([]transport.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

// ownedRegistration fetches a registration and verifies the caller is
// its participant.
func (s *Service) ownedRegistration(ctx context.Context, callerEmail, idHex string) (regsrepo.Registration, error) {
	id, err := store.ParseID(idHex)
	if err != nil {
		return regsrepo.Registration{}, err
	}

	reg, err := s.regs.Get(ctx, id)
	if err != nil {
		return regsrepo.Registration{}, err
	}
	if reg.ParticipantEmail != callerEmail {
		return regsrepo.Registration{}, apperr.Forbidden("registration belongs to another participant")
	}
	return reg, nil
}

func toPaymentResponse(p repository.Payment) transport.PaymentResponse {
	return transport.PaymentResponse{
		ID:               p.ID.Hex(),
		RegistrationID:   p.RegistrationID.Hex(),
		CampID:           p.CampID.Hex(),
		CampName:         p.CampName,
		ParticipantEmail: p.ParticipantEmail,
		Amount:           p.Amount,
		Currency:         p.Currency,
		TransactionID:    p.TransactionID,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
	}
}
