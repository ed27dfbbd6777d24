package importer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpfonseca/finboard/internal/importer"
	"github.com/rpfonseca/finboard/internal/record"
)

func TestParse_CommaSeparated(t *testing.T) {
	csvData := strings.Join([]string{
		"Date,Description,Category,Amount,Status",
		"2024-03-05,Office rent,housing,850.00,completed",
		"2024-03-10,Team lunch,food,64.50,pending",
	}, "\n")

	svc := importer.NewService()

	result, err := svc.Parse(strings.NewReader(csvData), record.KindExpense)
	require.NoError(t, err)
	require.Len(t, result.Params, 2)
	assert.Equal(t, 0, result.Skipped)

	first := result.Params[0]
	assert.Equal(t, record.KindExpense, first.Kind)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Office rent", first.Description)
	assert.Equal(t, "housing", first.Category)
	assert.Equal(t, int64(85000), first.Amount)
	assert.Equal(t, record.StatusCompleted, first.Status)

	assert.Equal(t, record.StatusPending, result.Params[1].Status)
}

func TestParse_SemicolonWithCommaDecimals(t *testing.T) {
	csvData := strings.Join([]string{
		"Data;Descrição;Montante",
		"05-03-2024;Renda do escritório;850,00",
	}, "\n")

	svc := importer.NewService()

	result, err := svc.Parse(strings.NewReader(csvData), record.KindExpense)
	require.NoError(t, err)
	require.Len(t, result.Params, 1)

	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), result.Params[0].Date)
	assert.Equal(t, int64(85000), result.Params[0].Amount)
}

func TestParse_RevenueColumns(t *testing.T) {
	csvData := strings.Join([]string{
		"Date,Description,Amount,Client,Payment Method,Invoice",
		"2024-02-15,Consulting sprint,4500.00,Acme Corp,bank transfer,INV-0042",
	}, "\n")

	svc := importer.NewService()

	result, err := svc.Parse(strings.NewReader(csvData), record.KindRevenue)
	require.NoError(t, err)
	require.Len(t, result.Params, 1)

	p := result.Params[0]
	assert.Equal(t, record.KindRevenue, p.Kind)
	assert.Equal(t, "Acme Corp", p.Client)
	assert.Equal(t, "bank transfer", p.PaymentMethod)
	assert.Equal(t, "INV-0042", p.Invoice)
}

func TestParse_SkipsBadRows(t *testing.T) {
	csvData := strings.Join([]string{
		"some export preamble",
		"Date,Description,Amount",
		"2024-03-05,ok,10.00",
		"not-a-date,bad date,10.00",
		"2024-03-06,bad amount,oops",
		",,",
		"2024-03-07,ok again,20.00",
	}, "\n")

	svc := importer.NewService()

	result, err := svc.Parse(strings.NewReader(csvData), record.KindExpense)
	require.NoError(t, err)

	assert.Len(t, result.Params, 2)
	assert.Equal(t, 3, result.Skipped)
}

func TestParse_NoHeader(t *testing.T) {
	svc := importer.NewService()

	_, err := svc.Parse(strings.NewReader("just,some,cells\n1,2,3"), record.KindExpense)
	assert.Error(t, err)
}

func TestParse_UnknownKind(t *testing.T) {
	svc := importer.NewService()

	_, err := svc.Parse(strings.NewReader("Date,Amount\n"), record.Kind("transfer"))
	assert.Error(t, err)
}

func TestParse_UnknownStatusSkipsRow(t *testing.T) {
	csvData := strings.Join([]string{
		"Date,Amount,Status",
		"2024-03-05,10.00,archived",
	}, "\n")

	svc := importer.NewService()

	result, err := svc.Parse(strings.NewReader(csvData), record.KindExpense)
	require.NoError(t, err)

	assert.Empty(t, result.Params)
	assert.Equal(t, 1, result.Skipped)
}
