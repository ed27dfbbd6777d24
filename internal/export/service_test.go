package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rpfonseca/finboard/internal/export"
	"github.com/rpfonseca/finboard/internal/record"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWrite_Expenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	repo.EXPECT().
		ListRecords(gomock.Any(), "user-1", record.KindExpense, gomock.Any()).
		Return([]*record.Record{
			{ID: 1, Date: day(2024, 3, 5), Description: "Office rent", Category: "housing", Amount: 85000, Status: record.StatusCompleted},
			{ID: 2, Date: day(2024, 3, 10), Description: "Team lunch", Category: "food", Amount: 6450, Status: record.StatusPending, Notes: "4 people"},
		}, nil)

	svc := export.NewService(record.NewService(repo))

	var buf bytes.Buffer

	err := svc.Write(context.Background(), &buf, "user-1", record.KindExpense, record.Window{})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"id", "date", "description", "category", "amount", "status", "notes"}, rows[0])
	assert.Equal(t, []string{"1", "2024-03-05", "Office rent", "housing", "850.00", "completed", ""}, rows[1])
	assert.Equal(t, []string{"2", "2024-03-10", "Team lunch", "food", "64.50", "pending", "4 people"}, rows[2])
}

func TestWrite_RevenueIncludesClientColumns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := record.NewMockRepository(ctrl)
	repo.EXPECT().
		ListRecords(gomock.Any(), "user-1", record.KindRevenue, gomock.Any()).
		Return([]*record.Record{
			{
				ID: 7, Date: day(2024, 2, 15), Description: "Consulting sprint", Category: "consulting",
				Amount: 450000, Status: record.StatusCompleted,
				Client: "Acme Corp", PaymentMethod: "bank transfer", Invoice: "INV-0042",
			},
		}, nil)

	svc := export.NewService(record.NewService(repo))

	var buf bytes.Buffer

	err := svc.Write(context.Background(), &buf, "user-1", record.KindRevenue, record.Window{})
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Contains(t, rows[0], "client")
	assert.Equal(t, "Acme Corp", rows[1][6])
	assert.Equal(t, "INV-0042", rows[1][8])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "expenses_20240331.csv", export.Filename(record.KindExpense, day(2024, 3, 31)))
	assert.Equal(t, "revenues_20240101.csv", export.Filename(record.KindRevenue, day(2024, 1, 1)))
}
