package record_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rpfonseca/finboard/internal/record"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    record.CreateParams
		setupMock func(m *record.MockRepository)
		wantErr   error
	}

	validParams := record.CreateParams{
		Owner:       "user-1",
		Kind:        record.KindExpense,
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Description: "Office rent",
		Amount:      85000,
		Category:    "housing",
		Status:      record.StatusCompleted,
	}

	tests := []testCase{
		{
			name:   "Success",
			params: validParams,
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *record.Record) error {
						r.ID = 42
						r.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "NegativeAmount",
			params: record.CreateParams{
				Owner:  "user-1",
				Kind:   record.KindExpense,
				Date:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Amount: -1,
				Status: record.StatusCompleted,
			},
			wantErr: &record.ValidationError{},
		},
		{
			name: "UnknownStatus",
			params: record.CreateParams{
				Owner:  "user-1",
				Kind:   record.KindExpense,
				Date:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
				Amount: 100,
				Status: record.Status("archived"),
			},
			wantErr: &record.ValidationError{},
		},
		{
			name: "MissingDate",
			params: record.CreateParams{
				Owner:  "user-1",
				Kind:   record.KindExpense,
				Amount: 100,
				Status: record.StatusPending,
			},
			wantErr: &record.ValidationError{},
		},
		{
			name:   "RepoError",
			params: validParams,
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := record.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := record.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				var vErr *record.ValidationError
				if errors.As(tt.wantErr, &vErr) {
					assert.ErrorAs(t, err, &vErr)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, int64(42), got.ID)
			assert.Equal(t, validParams.Amount, got.Amount)
		})
	}
}

func TestService_Update_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	svc := record.NewService(repo)

	err := svc.Update(context.Background(), &record.Record{
		ID:     7,
		Owner:  "user-1",
		Kind:   record.KindExpense,
		Date:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount: -500,
		Status: record.StatusPending,
	})

	var vErr *record.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "amount", vErr.Field)
}

func TestService_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	svc := record.NewService(repo)

	window := record.Window{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	records := []*record.Record{
		{ID: 1, Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Amount: 100},
		{ID: 2, Date: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), Amount: 200},
	}

	repo.EXPECT().
		ListRecords(gomock.Any(), "user-1", record.KindExpense, record.ListFilter{Window: window}).
		Return(records, nil)

	page, err := svc.Query(context.Background(), "user-1", record.KindExpense, record.Query{
		Window:   window,
		Page:     1,
		PageSize: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalCount)
	assert.Len(t, page.Items, 2)
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	svc := record.NewService(repo)

	repo.EXPECT().
		ListRecords(gomock.Any(), "user-1", record.KindExpense, gomock.Any()).
		Return([]*record.Record{
			{Amount: 10000, Status: record.StatusCompleted, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Amount: 5000, Status: record.StatusPending, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		}, nil)

	summary, err := svc.Stats(context.Background(), "user-1", record.KindExpense, record.Window{})

	require.NoError(t, err)
	assert.Equal(t, int64(15000), summary.TotalAmount)
	assert.Equal(t, int64(5000), summary.PendingAmount)
	assert.Equal(t, 1, summary.PendingCount)
}

func TestService_RevenueStats_ListsUnwindowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	svc := record.NewService(repo)

	window := record.Window{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	// The month-over-month baseline needs the full ledger, so the repository
	// must be queried without the caller's window.
	repo.EXPECT().
		ListRecords(gomock.Any(), "user-1", record.KindRevenue, record.ListFilter{}).
		Return([]*record.Record{
			{Client: "acme", Amount: 12000, Status: record.StatusCompleted, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		}, nil)

	summary, err := svc.RevenueStats(context.Background(), "user-1", window)

	require.NoError(t, err)
	assert.Equal(t, "acme", summary.TopClient)
	assert.Equal(t, int64(12000), summary.TopClientAmount)
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	svc := record.NewService(repo)

	repo.EXPECT().
		GetRecord(gomock.Any(), "user-1", record.KindRevenue, int64(99)).
		Return(nil, record.ErrNotFound)

	got, err := svc.Get(context.Background(), "user-1", record.KindRevenue, 99)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, record.ErrNotFound)
}
