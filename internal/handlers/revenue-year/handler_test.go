// internal/handlers/revenue-year/handler_test.go
package revenueyear

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "finbot/internal/common/errors"
	"finbot/internal/common/logger"
	"finbot/internal/dataset"
	"finbot/internal/extract"
)

// ==========================
// Test Helper Functions
// ==========================

func buildTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	rows := []dataset.RawRow{
		{Company: "Microsoft", Year: "2023", TotalRevenue: "211,915", NetIncome: "72,361", TotalAssets: "411,976", TotalLiabilities: "205,753", CashFlow: "87,582"},
		{Company: "Microsoft", Year: "2024", TotalRevenue: "245,122", NetIncome: "88,136", TotalAssets: "512,163", TotalLiabilities: "243,686", CashFlow: "118,548"},
		{Company: "Tesla", Year: "2023", TotalRevenue: "96,773", NetIncome: "14,997", TotalAssets: "106,618", TotalLiabilities: "43,009", CashFlow: "13,256"},
	}
	ds, err := dataset.Build(rows)
	require.NoError(t, err)
	return ds
}

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), buildTestDataset(t), logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_Success(t *testing.T) {
	handler := createTestHandler(t)

	output, err := handler.Execute(context.Background(), &Input{
		Tokens: extract.Tokenize("show microsoft revenue for 2024"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Microsoft", output.Company)
	assert.Equal(t, 2024, output.Year)
	assert.InDelta(t, 245122.0, output.Revenue, 0.001)
}

// ==========================
// Error Handling Tests
// ==========================

func TestHandler_Execute_MissingParameters(t *testing.T) {
	handler := createTestHandler(t)

	tests := []struct {
		name  string
		query string
	}{
		{"missing year", "show microsoft revenue"},
		{"missing company", "show revenue for 2024"},
		{"missing both", "show revenue"},
		{"year not defaulted", "show tesla revenue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Execute(context.Background(), &Input{
				Tokens: extract.Tokenize(tt.query),
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, cerrors.ErrMissingParameters)
		})
	}
}

func TestHandler_Execute_RecordNotFound(t *testing.T) {
	handler := createTestHandler(t)

	// Tesla has no 2024 row in the fixture, but 2024 is a valid data year
	_, err := handler.Execute(context.Background(), &Input{
		Tokens: extract.Tokenize("show tesla revenue for 2024"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, cerrors.ErrRecordNotFound)
}
