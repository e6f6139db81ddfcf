// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finbot/internal/chatbot"
	"finbot/internal/common/config"
	"finbot/internal/common/logger"
	"finbot/internal/dataset"
)

const datasetPath = "../../testdata/metrics.csv"

// ==========================
// 1. Dataset + Config Loading
// ==========================

func TestLoadBundledDataset(t *testing.T) {
	ds, err := dataset.LoadCSV(datasetPath)
	require.NoError(t, err, "bundled dataset must load")

	assert.Equal(t, []string{"Apple", "Microsoft", "Tesla"}, ds.Companies())
	assert.Equal(t, 2024, ds.MaxYear())

	rec, ok := ds.Lookup("Microsoft", 2024)
	require.True(t, ok)
	assert.InDelta(t, 245122, rec.TotalRevenue, 0.01)
}

func TestLoadBundledConfig(t *testing.T) {
	cfg, err := config.LoadFromFile("../../configs/config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Dataset.Source)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, config.IsHandlerEnabled(cfg, "revenue-year"))
	assert.False(t, config.IsHandlerEnabled(cfg, "avg-revenue"))
}

// ==========================
// 2. Full Scripted Conversation
// ==========================

func TestFullConversation(t *testing.T) {
	ds, err := dataset.LoadCSV(datasetPath)
	require.NoError(t, err)

	engine := chatbot.NewEngine(&chatbot.Config{}, ds, nil, nil, logger.NewTestLogger(t))
	ctx := context.Background()

	script := []struct {
		you string
		bot string
	}{
		{
			you: "List all companies",
			bot: "Available companies: Apple, Microsoft, Tesla",
		},
		{
			you: "Show Microsoft revenue for 2024",
			bot: "Microsoft's 2024 revenue: $245,122 million",
		},
		{
			you: "Compare income between Apple and Microsoft for 2023",
			bot: "Apple vs Microsoft (Income):\n" +
				"-Apple: $96,995 million\n" +
				"-Microsoft: $72,361 million",
		},
		{
			you: "What was Microsoft revenue growth from 2023 to 2024",
			bot: "Microsoft's Revenue growth (2023-2024):\n" +
				"-2023: $211,915 million\n" +
				"-2024: $245,122 million\n" +
				"Growth: +15.7%",
		},
		{
			you: "profit margin for Tesla in 2023",
			bot: "Tesla's 2023 net profit margin:\n" +
				"-Net Income: $14,997 million\n" +
				"-Total Revenue: $96,773 million\n" +
				"Margin: 15.5%",
		},
		{
			you: "tell me a joke",
			bot: "I didn't understand that. Try:\n" +
				"- 'Show Microsoft revenue for 2024'\n" +
				"- 'Compare revenue between Tesla and Apple'\n" +
				"- 'List all companies'",
		},
	}

	for _, step := range script {
		reply := engine.Respond(ctx, step.you)
		assert.Equalf(t, step.bot, reply.Text, "query: %q", step.you)
		assert.False(t, reply.Exit)
	}

	farewell := engine.Respond(ctx, "exit")
	assert.True(t, farewell.Exit)
	assert.Equal(t, "Thank you for using FinancialBot!", farewell.Text)
}

// ==========================
// 3. Error Surfacing
// ==========================

func TestConversationErrorReplies(t *testing.T) {
	ds, err := dataset.LoadCSV(datasetPath)
	require.NoError(t, err)

	engine := chatbot.NewEngine(&chatbot.Config{}, ds, nil, nil, logger.NewTestLogger(t))
	ctx := context.Background()

	// A company the data does not know is treated as a missing parameter
	// and falls back to the generic reply.
	reply := engine.Respond(ctx, "show netflix revenue for 2024")
	assert.True(t, strings.HasPrefix(reply.Text, "I didn't understand that."))

	// So does a margin query without a recognizable company.
	reply = engine.Respond(ctx, "profit margin for netflix")
	assert.True(t, strings.HasPrefix(reply.Text, "I didn't understand that."))
}
