package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/hard75/internal/apperrors"
	"github.com/dtroode/hard75/internal/mocks"
	"github.com/dtroode/hard75/internal/model"
	"github.com/dtroode/hard75/internal/testutil"
)

func parseEvent(t *testing.T, raw string) model.PaymentEvent {
	t.Helper()
	var event model.PaymentEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &event))
	return event
}

func TestPayment_VerifySignature(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		signature string
		wantErr   bool
	}{
		{name: "match", secret: "whsec", signature: "whsec"},
		{name: "mismatch", secret: "whsec", signature: "other", wantErr: true},
		{name: "missing header", secret: "whsec", signature: "", wantErr: true},
		{name: "no secret configured", secret: "", signature: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPayment(nil, tt.secret, testutil.MakeNoopLogger())
			err := s.VerifySignature(tt.signature)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPayment_ProcessEvent(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantEmail string
		matched   bool
		want      model.PaymentOutcome
	}{
		{
			name:      "customer email",
			raw:       `{"type":"payment.succeeded","data":{"customer":{"email":"a@b.c"}}}`,
			wantEmail: "a@b.c",
			matched:   true,
			want:      model.PaymentApplied,
		},
		{
			name:      "billing email fallback",
			raw:       `{"type":"checkout.completed","data":{"billing_details":{"email":" b@b.c "}}}`,
			wantEmail: "b@b.c",
			matched:   true,
			want:      model.PaymentApplied,
		},
		{
			name:      "metadata email, no profile yet",
			raw:       `{"type":"payment.succeeded","data":{"metadata":{"email":"c@b.c"}}}`,
			wantEmail: "c@b.c",
			want:      model.PaymentUnmatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profiles := mocks.NewProfileStore(t)
			profiles.On("MarkPaidByEmail", mock.Anything, tt.wantEmail).Return(tt.matched, nil)
			s := NewPayment(profiles, "whsec", testutil.MakeNoopLogger())

			got, err := s.ProcessEvent(context.Background(), parseEvent(t, tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayment_ProcessEvent_Rejected(t *testing.T) {
	profiles := mocks.NewProfileStore(t)
	s := NewPayment(profiles, "whsec", testutil.MakeNoopLogger())

	got, err := s.ProcessEvent(context.Background(), parseEvent(t, `{"type":"payment.refunded","data":{"customer":{"email":"a@b.c"}}}`))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentIgnored, got)

	_, err = s.ProcessEvent(context.Background(), parseEvent(t, `{"type":"payment.succeeded","data":{}}`))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	profiles.On("MarkPaidByEmail", mock.Anything, "a@b.c").Return(false, errDB)
	_, err = s.ProcessEvent(context.Background(), parseEvent(t, `{"type":"payment.succeeded","data":{"customer":{"email":"a@b.c"}}}`))
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}
