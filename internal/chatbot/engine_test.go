// internal/chatbot/engine_test.go
package chatbot

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbot/internal/common/database"
	"finbot/internal/common/logger"
	"finbot/internal/dataset"
	"finbot/internal/response"
)

// ==========================
// Test Helper Functions
// ==========================

func buildTestDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	rows := []dataset.RawRow{
		{Company: "Apple", Year: "2023", TotalRevenue: "383,285", NetIncome: "96,995", TotalAssets: "352,583", TotalLiabilities: "290,437", CashFlow: "110,543"},
		{Company: "Apple", Year: "2024", TotalRevenue: "391,035", NetIncome: "93,736", TotalAssets: "364,980", TotalLiabilities: "308,030", CashFlow: "118,254"},
		{Company: "Microsoft", Year: "2023", TotalRevenue: "211,915", NetIncome: "72,361", TotalAssets: "411,976", TotalLiabilities: "205,753", CashFlow: "87,582"},
		{Company: "Microsoft", Year: "2024", TotalRevenue: "245,122", NetIncome: "88,136", TotalAssets: "512,163", TotalLiabilities: "243,686", CashFlow: "118,548"},
		{Company: "Tesla", Year: "2023", TotalRevenue: "96,773", NetIncome: "14,997", TotalAssets: "106,618", TotalLiabilities: "43,009", CashFlow: "13,256"},
		{Company: "Tesla", Year: "2024", TotalRevenue: "97,690", NetIncome: "7,091", TotalAssets: "122,070", TotalLiabilities: "48,390", CashFlow: "14,923"},
	}
	ds, err := dataset.Build(rows)
	require.NoError(t, err)
	return ds
}

func createTestEngine(t *testing.T) *Engine {
	return NewEngine(&Config{}, buildTestDataset(t), nil, nil, logger.NewTestLogger(t))
}

// ==========================
// Conversation Tests
// ==========================

func TestEngine_Respond_Conversations(t *testing.T) {
	engine := createTestEngine(t)

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "revenue for year",
			query:    "show microsoft revenue for 2024",
			expected: "Microsoft's 2024 revenue: $245,122 million",
		},
		{
			name:  "comparison defaults to latest year",
			query: "compare revenue between tesla and apple",
			expected: "Tesla vs Apple (Revenue):\n" +
				"-Tesla: $97,690 million\n" +
				"-Apple: $391,035 million",
		},
		{
			name:  "growth between years",
			query: "what was the revenue growth for microsoft from 2023 to 2024",
			expected: "Microsoft's Revenue growth (2023-2024):\n" +
				"-2023: $211,915 million\n" +
				"-2024: $245,122 million\n" +
				"Growth: +15.7%",
		},
		{
			name:  "growth is commutative in year order",
			query: "what was the revenue growth for microsoft from 2024 to 2023",
			expected: "Microsoft's Revenue growth (2023-2024):\n" +
				"-2023: $211,915 million\n" +
				"-2024: $245,122 million\n" +
				"Growth: +15.7%",
		},
		{
			name:  "profit margin defaults to latest year",
			query: "what is the profit margin for microsoft",
			expected: "Microsoft's 2024 net profit margin:\n" +
				"-Net Income: $88,136 million\n" +
				"-Total Revenue: $245,122 million\n" +
				"Margin: 36.0%",
		},
		{
			name:     "list companies",
			query:    "list all companies",
			expected: "Available companies: Apple, Microsoft, Tesla",
		},
		{
			name:     "unknown query returns suggestions verbatim",
			query:    "banana please",
			expected: response.Unknown(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := engine.Respond(context.Background(), tt.query)
			assert.Equal(t, tt.expected, reply.Text)
			assert.False(t, reply.Exit)
		})
	}
}

func TestEngine_Respond_Exit(t *testing.T) {
	engine := createTestEngine(t)

	reply := engine.Respond(context.Background(), "exit")
	assert.Equal(t, "Thank you for using FinancialBot!", reply.Text)
	assert.True(t, reply.Exit)
}

// ==========================
// Error Surfacing Tests
// ==========================

func TestEngine_Respond_ErrorFamilies(t *testing.T) {
	engine := createTestEngine(t)

	// Missing parameters fall back to the generic reply on every path
	reply := engine.Respond(context.Background(), "show microsoft revenue")
	assert.Equal(t, response.Unknown(), reply.Text)
	reply = engine.Respond(context.Background(), "compare tesla and apple")
	assert.Equal(t, response.Unknown(), reply.Text)

	// Sparse fixture: Microsoft has no 2022 row, Tesla does.
	rows := []dataset.RawRow{
		{Company: "Microsoft", Year: "2023", TotalRevenue: "211,915", NetIncome: "72,361", TotalAssets: "411,976", TotalLiabilities: "205,753", CashFlow: "87,582"},
		{Company: "Tesla", Year: "2022", TotalRevenue: "81,462", NetIncome: "12,556", TotalAssets: "82,338", TotalLiabilities: "36,440", CashFlow: "14,724"},
		{Company: "Tesla", Year: "2023", TotalRevenue: "96,773", NetIncome: "14,997", TotalAssets: "106,618", TotalLiabilities: "43,009", CashFlow: "13,256"},
	}
	ds, err := dataset.Build(rows)
	require.NoError(t, err)
	sparse := NewEngine(&Config{}, ds, nil, nil, logger.NewTestLogger(t))

	// Lookup miss on the revenue and compare paths also yields the generic
	// reply; the record-not-found detail is swallowed.
	reply = sparse.Respond(context.Background(), "show microsoft revenue for 2022")
	assert.Equal(t, response.Unknown(), reply.Text)
	reply = sparse.Respond(context.Background(), "compare revenue microsoft tesla 2022")
	assert.Equal(t, response.Unknown(), reply.Text)

	// Lookup miss on the growth path surfaces an explicit error string
	reply = sparse.Respond(context.Background(), "microsoft revenue growth 2022 2023")
	assert.Contains(t, reply.Text, "Error: ")
	assert.Contains(t, reply.Text, "Microsoft")
}

func TestEngine_Respond_AverageRevenueDisabledByDefault(t *testing.T) {
	engine := createTestEngine(t)

	reply := engine.Respond(context.Background(), "average revenue for 2024")
	assert.Equal(t, response.Unknown(), reply.Text)
}

func TestEngine_Respond_AverageRevenueEnabled(t *testing.T) {
	engine := NewEngine(&Config{AverageRevenue: true}, buildTestDataset(t), nil, nil, logger.NewTestLogger(t))

	reply := engine.Respond(context.Background(), "average revenue for 2024")
	assert.Equal(t, "Average revenue (2024): $244,616 million", reply.Text)
}

// ==========================
// Answer Cache Tests
// ==========================

func TestEngine_Respond_CacheHit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := &database.RedisClient{Client: rdb}

	engine := NewEngine(&Config{
		CacheEnabled: true,
		CacheTTL:     time.Minute,
	}, buildTestDataset(t), cache, nil, logger.NewTestLogger(t))

	first := engine.Respond(context.Background(), "show microsoft revenue for 2024")
	assert.Equal(t, "Microsoft's 2024 revenue: $245,122 million", first.Text)

	cached, err := mr.Get("answer:show microsoft revenue for 2024")
	require.NoError(t, err)
	assert.Equal(t, first.Text, cached)

	second := engine.Respond(context.Background(), "Show Microsoft revenue for 2024")
	assert.Equal(t, first.Text, second.Text, "normalized query hits the same key")
}

func TestEngine_Respond_CacheFailureIsNonFatal(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("answer:show microsoft revenue for 2024").RedisNil()
	mock.ExpectSet("answer:show microsoft revenue for 2024",
		"Microsoft's 2024 revenue: $245,122 million", time.Minute).
		SetErr(assert.AnError)

	engine := NewEngine(&Config{
		CacheEnabled: true,
		CacheTTL:     time.Minute,
	}, buildTestDataset(t), &database.RedisClient{Client: rdb}, nil, logger.NewTestLogger(t))

	reply := engine.Respond(context.Background(), "show microsoft revenue for 2024")
	assert.Equal(t, "Microsoft's 2024 revenue: $245,122 million", reply.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkEngine_Respond(b *testing.B) {
	rows := []dataset.RawRow{
		{Company: "Microsoft", Year: "2023", TotalRevenue: "211,915", NetIncome: "72,361", TotalAssets: "411,976", TotalLiabilities: "205,753", CashFlow: "87,582"},
		{Company: "Microsoft", Year: "2024", TotalRevenue: "245,122", NetIncome: "88,136", TotalAssets: "512,163", TotalLiabilities: "243,686", CashFlow: "118,548"},
	}
	ds, err := dataset.Build(rows)
	if err != nil {
		b.Fatal(err)
	}
	engine := NewEngine(&Config{}, ds, nil, nil, logger.NewNoOpLogger())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Respond(context.Background(), "show microsoft revenue for 2024")
	}
}
