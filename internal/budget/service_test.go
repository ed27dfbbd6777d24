package budget_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rpfonseca/finboard/internal/budget"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    budget.CreateParams
		setupMock func(m *budget.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			params: budget.CreateParams{
				Owner:        "user-1",
				Name:         "Groceries",
				Color:        "#2dd4bf",
				BudgetAmount: 60000,
			},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *budget.Category) error {
						require.NotEqual(t, uuid.Nil, c.ID)
						return nil
					})
			},
		},
		{
			name:    "MissingName",
			params:  budget.CreateParams{Owner: "user-1", BudgetAmount: 100},
			wantErr: true,
		},
		{
			name:    "NegativeBudget",
			params:  budget.CreateParams{Owner: "user-1", Name: "Rent", BudgetAmount: -1},
			wantErr: true,
		},
		{
			name:   "RepoError",
			params: budget.CreateParams{Owner: "user-1", Name: "Rent", BudgetAmount: 100},
			setupMock: func(m *budget.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := budget.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := budget.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.params.Name, got.Name)
			assert.Equal(t, tt.params.BudgetAmount, got.BudgetAmount)
		})
	}
}

func TestCategory_DerivedFigures(t *testing.T) {
	c := &budget.Category{BudgetAmount: 50000, ActualSpent: 42500}

	assert.Equal(t, int64(7500), c.Remaining())
	assert.InDelta(t, 85.0, c.PercentUsed(), 1e-9)
	assert.False(t, c.OverBudget())

	c.ActualSpent = 51000
	assert.True(t, c.OverBudget())
	assert.Equal(t, int64(-1000), c.Remaining())
}

func TestCategory_PercentUsedZeroBudget(t *testing.T) {
	c := &budget.Category{BudgetAmount: 0, ActualSpent: 100}

	assert.Equal(t, float64(0), c.PercentUsed())
}
