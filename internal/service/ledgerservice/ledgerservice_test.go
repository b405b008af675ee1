package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coinkeeper/internal/domain"
	"github.com/GlebRadaev/coinkeeper/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockAccountRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	accountRepo := NewMockAccountRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(accountRepo, txManager, 0.02, 1)
	defer ctrl.Finish()
	return service, accountRepo, txManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	)
}

func TestGetBalance(t *testing.T) {
	service, accountRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int64
		prepareMock   func()
		expected      int64
		expectedError error
	}{
		{
			name:   "Retrieve balance successfully",
			userID: 1,
			prepareMock: func() {
				accountRepo.EXPECT().GetBalance(gomock.Any(), int64(1)).Return(int64(500), nil)
			},
			expected:      500,
			expectedError: nil,
		},
		{
			name:   "Unknown user reads as zero",
			userID: 99,
			prepareMock: func() {
				accountRepo.EXPECT().GetBalance(gomock.Any(), int64(99)).Return(int64(0), nil)
			},
			expected:      0,
			expectedError: nil,
		},
		{
			name:   "Error retrieving balance",
			userID: 1,
			prepareMock: func() {
				accountRepo.EXPECT().GetBalance(gomock.Any(), int64(1)).Return(int64(0), errors.New("db error"))
			},
			expected:      0,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
		})
	}
}

func TestAdjustBalance(t *testing.T) {
	service, accountRepo, txManager := NewMock(t)

	tests := []struct {
		name          string
		userID        int64
		delta         int64
		mode          AdjustMode
		prepareMock   func()
		expected      int64
		expectedError error
	}{
		{
			name:   "Credit skips the lock",
			userID: 1,
			delta:  100,
			mode:   ModeReject,
			prepareMock: func() {
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(100)).Return(int64(600), nil)
			},
			expected:      600,
			expectedError: nil,
		},
		{
			name:   "Rejected debit with sufficient funds",
			userID: 1,
			delta:  -100,
			mode:   ModeReject,
			prepareMock: func() {
				passThrough(txManager)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(500), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(-100)).Return(int64(400), nil)
			},
			expected:      400,
			expectedError: nil,
		},
		{
			name:   "Rejected debit below zero",
			userID: 1,
			delta:  -600,
			mode:   ModeReject,
			prepareMock: func() {
				passThrough(txManager)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(500), nil)
			},
			expected:      0,
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:   "Clamped debit floors at zero",
			userID: 1,
			delta:  -600,
			mode:   ModeClamp,
			prepareMock: func() {
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(-600)).Return(int64(0), nil)
			},
			expected:      0,
			expectedError: nil,
		},
		{
			name:   "Lock error aborts debit",
			userID: 1,
			delta:  -100,
			mode:   ModeReject,
			prepareMock: func() {
				passThrough(txManager)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(0), errors.New("db error"))
			},
			expected:      0,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.AdjustBalance(context.Background(), tt.userID, tt.delta, tt.mode)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
		})
	}
}

func TestSetBalance(t *testing.T) {
	service, accountRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int64
		amount        int64
		prepareMock   func()
		expected      int64
		expectedError error
	}{
		{
			name:   "Overwrites balance",
			userID: 1,
			amount: 1000,
			prepareMock: func() {
				accountRepo.EXPECT().SetBalance(gomock.Any(), int64(1), int64(1000)).Return(int64(1000), nil)
			},
			expected:      1000,
			expectedError: nil,
		},
		{
			name:   "Error setting balance",
			userID: 1,
			amount: 1000,
			prepareMock: func() {
				accountRepo.EXPECT().SetBalance(gomock.Any(), int64(1), int64(1000)).Return(int64(0), errors.New("db error"))
			},
			expected:      0,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			balance, err := service.SetBalance(context.Background(), tt.userID, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
		})
	}
}

func TestTransfer(t *testing.T) {
	service, accountRepo, txManager := NewMock(t)

	tests := []struct {
		name          string
		sender        int64
		receiver      int64
		amount        int64
		prepareMock   func()
		expected      *domain.TransferResult
		expectedError error
	}{
		{
			name:     "Fee is two percent rounded down",
			sender:   1,
			receiver: 2,
			amount:   100,
			prepareMock: func() {
				passThrough(txManager)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(500), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(-100)).Return(int64(400), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(2), int64(98)).Return(int64(98), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(2)).Return(int64(402), nil)
			},
			expected:      &domain.TransferResult{Net: 98, Fee: 2, SenderBalance: 400},
			expectedError: nil,
		},
		{
			name:     "Minimum fee is one",
			sender:   3,
			receiver: 2,
			amount:   10,
			prepareMock: func() {
				passThrough(txManager)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(3)).Return(int64(50), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(3), int64(-10)).Return(int64(40), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(2), int64(9)).Return(int64(107), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(1)).Return(int64(403), nil)
			},
			expected:      &domain.TransferResult{Net: 9, Fee: 1, SenderBalance: 40},
			expectedError: nil,
		},
		{
			name:          "Zero amount is rejected",
			sender:        1,
			receiver:      2,
			amount:        0,
			prepareMock:   func() {},
			expected:      nil,
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Negative amount is rejected",
			sender:        1,
			receiver:      2,
			amount:        -50,
			prepareMock:   func() {},
			expected:      nil,
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Self transfer is rejected",
			sender:        1,
			receiver:      1,
			amount:        100,
			prepareMock:   func() {},
			expected:      nil,
			expectedError: domain.ErrSelfTransfer,
		},
		{
			name:     "Insufficient funds",
			sender:   1,
			receiver: 2,
			amount:   1000,
			prepareMock: func() {
				passThrough(txManager)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(500), nil)
			},
			expected:      nil,
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name:     "Debit error rolls back",
			sender:   1,
			receiver: 2,
			amount:   100,
			prepareMock: func() {
				passThrough(txManager)
				accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(1)).Return(int64(500), nil)
				accountRepo.EXPECT().Add(gomock.Any(), int64(1), int64(-100)).Return(int64(0), errors.New("db error"))
			},
			expected:      nil,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.Transfer(context.Background(), tt.sender, tt.receiver, tt.amount)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestTransfer_Conservation(t *testing.T) {
	service, accountRepo, txManager := NewMock(t)

	// Every unit leaving the sender lands on the receiver or the fee sink.
	var debited, credited int64
	passThrough(txManager)
	accountRepo.EXPECT().GetBalanceForUpdate(gomock.Any(), int64(10)).Return(int64(100000), nil)
	accountRepo.EXPECT().Add(gomock.Any(), int64(10), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, delta int64) (int64, error) {
			debited = -delta
			return 100000 + delta, nil
		},
	)
	accountRepo.EXPECT().Add(gomock.Any(), int64(20), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, delta int64) (int64, error) {
			credited += delta
			return delta, nil
		},
	)
	accountRepo.EXPECT().Add(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, delta int64) (int64, error) {
			credited += delta
			return delta, nil
		},
	)

	result, err := service.Transfer(context.Background(), 10, 20, 33333)
	assert.NoError(t, err)
	assert.Equal(t, int64(33333), debited)
	assert.Equal(t, debited, credited)
	assert.Equal(t, result.Net+result.Fee, debited)
}

func TestTopBalances(t *testing.T) {
	service, accountRepo, _ := NewMock(t)

	accounts := []domain.Account{
		{UserID: 2, Balance: 900},
		{UserID: 1, Balance: 500},
	}

	tests := []struct {
		name          string
		limit         int
		prepareMock   func()
		expected      []domain.Account
		expectedError error
	}{
		{
			name:  "Explicit limit is passed through",
			limit: 5,
			prepareMock: func() {
				accountRepo.EXPECT().TopBalances(gomock.Any(), 5).Return(accounts, nil)
			},
			expected:      accounts,
			expectedError: nil,
		},
		{
			name:  "Zero limit falls back to the default",
			limit: 0,
			prepareMock: func() {
				accountRepo.EXPECT().TopBalances(gomock.Any(), 10).Return(accounts, nil)
			},
			expected:      accounts,
			expectedError: nil,
		},
		{
			name:  "Oversized limit is capped",
			limit: 100,
			prepareMock: func() {
				accountRepo.EXPECT().TopBalances(gomock.Any(), 20).Return(accounts, nil)
			},
			expected:      accounts,
			expectedError: nil,
		},
		{
			name:  "Error fetching top balances",
			limit: 10,
			prepareMock: func() {
				accountRepo.EXPECT().TopBalances(gomock.Any(), 10).Return(nil, errors.New("db error"))
			},
			expected:      nil,
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			result, err := service.TopBalances(context.Background(), tt.limit)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}
