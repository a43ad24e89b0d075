package commands_test

import (
	"net/http"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lendingclub/cmd/lc/commands"
	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

func TestAccountCommand(t *testing.T) {
	t.Parallel()

	cmd := commands.NewAccountCommand()
	assert.Equal(t, "account", cmd.Use)
	assert.Contains(t, cmd.Aliases, "acct")
	assert.NotNil(t, cmd.PersistentFlags().Lookup("fields"))

	expectedSubcommands := []string{
		"summary", "cash", "add-funds", "withdraw", "pending", "cancel",
		"notes", "detailed-notes", "portfolios", "create-portfolio", "order", "filters",
	}

	for _, name := range expectedSubcommands {
		subCmd := findSubcommand(cmd, name)
		require.NotNil(t, subCmd, "subcommand %s not found", name)
		assert.NotEmpty(t, subCmd.Short)
		assert.NotNil(t, subCmd.RunE)
	}
}

func TestAccountAddFundsCommand_Flags(t *testing.T) {
	t.Parallel()

	cmd := findSubcommand(commands.NewAccountCommand(), "add-funds")
	require.NotNil(t, cmd)
	assert.Equal(t, "add-funds AMOUNT", cmd.Use)

	frequency := cmd.Flags().Lookup("frequency")
	require.NotNil(t, frequency)
	assert.Equal(t, "now", frequency.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("start-date"))
	assert.NotNil(t, cmd.Flags().Lookup("end-date"))
}

func TestAccountCash(t *testing.T) {
	api := newFakeAPI(t, map[string]route{
		"GET /accounts/123/availablecash": {http.StatusOK, `{"investorId":123,"availableCash":1234.56}`},
	})

	t.Run("table", func(t *testing.T) {
		setupCLI(t, api.server.URL)

		stdout, _, err := runCommand(commands.NewAccountCommand(), "cash")
		require.NoError(t, err)
		assert.Contains(t, stdout, "availableCash")
		assert.Contains(t, stdout, "1234.56")
	})

	t.Run("json", func(t *testing.T) {
		setupCLI(t, api.server.URL)
		viper.Set("output", "json")

		stdout, _, err := runCommand(commands.NewAccountCommand(), "cash")
		require.NoError(t, err)
		assert.JSONEq(t, `{"availableCash":1234.56}`, stdout)
	})

	t.Run("verbose logs requests", func(t *testing.T) {
		setupCLI(t, api.server.URL)
		viper.Set("verbose", true)

		_, stderr, err := runCommand(commands.NewAccountCommand(), "cash")
		require.NoError(t, err)
		assert.Contains(t, stderr, "HTTP Request")
		assert.Contains(t, stderr, "HTTP Response")
		assert.NotContains(t, stderr, testAPIKey)
	})
}

func TestAccountCommands_Configuration(t *testing.T) {
	t.Run("requires API key", func(t *testing.T) {
		setupCLI(t, "http://127.0.0.1:1")
		viper.Set("api_key", "")

		_, _, err := runCommand(commands.NewAccountCommand(), "summary")
		require.ErrorIs(t, err, constants.ErrNoAPIKeyConfigured)
	})

	t.Run("requires investor ID", func(t *testing.T) {
		setupCLI(t, "http://127.0.0.1:1")
		viper.Set("investor_id", "")

		_, _, err := runCommand(commands.NewAccountCommand(), "summary")
		require.ErrorIs(t, err, constants.ErrNoInvestorIDConfigured)
	})

	t.Run("rejects invalid output format", func(t *testing.T) {
		api := newFakeAPI(t, map[string]route{
			"GET /accounts/123/summary": {http.StatusOK, `{"investorId":123}`},
		})
		setupCLI(t, api.server.URL)
		viper.Set("output", "xml")

		_, _, err := runCommand(commands.NewAccountCommand(), "summary")
		require.ErrorIs(t, err, constants.ErrInvalidOutputFormat)
	})
}

func TestAccountPending(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		api := newFakeAPI(t, map[string]route{
			"GET /accounts/123/funds/pending": {http.StatusOK, `{}`},
		})
		setupCLI(t, api.server.URL)

		stdout, _, err := runCommand(commands.NewAccountCommand(), "pending")
		require.NoError(t, err)
		assert.Contains(t, stdout, "No pending transfers.")
	})

	t.Run("selected fields", func(t *testing.T) {
		api := newFakeAPI(t, map[string]route{
			"GET /accounts/123/funds/pending": {http.StatusOK,
				`{"transfers":[{"transferId":5,"amount":25,"frequency":"LOAD_NOW"}]}`},
		})
		setupCLI(t, api.server.URL)

		stdout, _, err := runCommand(commands.NewAccountCommand(), "pending", "--fields", "transferId,amount")
		require.NoError(t, err)
		assert.Contains(t, stdout, "25")
		assert.NotContains(t, stdout, "LOAD_NOW")
	})
}

func TestAccountAddFunds(t *testing.T) {
	t.Run("sends transfer", func(t *testing.T) {
		api := newFakeAPI(t, map[string]route{
			"POST /accounts/123/funds/add": {http.StatusOK, `{"investorId":123,"amount":250}`},
		})
		setupCLI(t, api.server.URL)
		viper.Set("output", "json")

		stdout, _, err := runCommand(commands.NewAccountCommand(),
			"add-funds", "250.00", "--frequency", "weekly", "--start-date", "2024-03-01")
		require.NoError(t, err)
		assert.JSONEq(t, `{"investorId":123,"amount":250}`, stdout)

		requests := api.Requests()
		require.Len(t, requests, 1)
		assert.JSONEq(t,
			`{"amount":250,"transferFrequency":"LOAD_WEEKLY","startDate":"03/01/2024","endDate":null}`,
			requests[0].Body)
	})

	t.Run("argument errors", func(t *testing.T) {
		api := newFakeAPI(t, nil)
		setupCLI(t, api.server.URL)

		_, _, err := runCommand(commands.NewAccountCommand(), "add-funds", "abc")
		require.Error(t, err)

		_, _, err = runCommand(commands.NewAccountCommand(), "add-funds", "25", "--frequency", "daily")
		require.ErrorIs(t, err, lendingclub.ErrInvalidTransferFrequency)

		_, _, err = runCommand(commands.NewAccountCommand(), "add-funds", "25", "--start-date", "03/01/2024")
		require.ErrorIs(t, err, constants.ErrInvalidDate)

		assert.Empty(t, api.Requests())
	})
}

func TestAccountCancel(t *testing.T) {
	api := newFakeAPI(t, map[string]route{
		"POST /accounts/123/funds/cancel": {http.StatusOK,
			`{"cancellationResults":[{"transferId":5,"status":"CANCELLED"}]}`},
	})
	setupCLI(t, api.server.URL)

	stdout, _, err := runCommand(commands.NewAccountCommand(), "cancel", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CANCELLED")

	requests := api.Requests()
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"transferId":[5]}`, requests[0].Body)

	_, _, err = runCommand(commands.NewAccountCommand(), "cancel", "five")
	require.ErrorIs(t, err, constants.ErrInvalidTransferID)
}

func TestAccountOrder(t *testing.T) {
	t.Run("submits orders", func(t *testing.T) {
		api := newFakeAPI(t, map[string]route{
			"POST /accounts/123/orders": {http.StatusOK,
				`{"orderInstructId":9,"orderConfirmations":[{"loanId":1234,"investedAmount":25,"executionStatus":["ORDER_FULFILLED"]}]}`},
		})
		setupCLI(t, api.server.URL)

		stdout, _, err := runCommand(commands.NewAccountCommand(), "order", "1234:25", "5678:50.5:42")
		require.NoError(t, err)
		assert.Contains(t, stdout, "ORDER_FULFILLED")

		requests := api.Requests()
		require.Len(t, requests, 1)

		assert.JSONEq(t, `{"aid":123,"orders":[
			{"loanId":1234,"requestedAmount":25,"portfolioId":null},
			{"loanId":5678,"requestedAmount":50.5,"portfolioId":42}]}`, requests[0].Body)
	})

	t.Run("business error", func(t *testing.T) {
		api := newFakeAPI(t, map[string]route{
			"POST /accounts/123/orders": {http.StatusBadRequest,
				`{"errors":[{"field":"loanId","code":"invalid","message":"Loan not listed"}]}`},
		})
		setupCLI(t, api.server.URL)

		_, _, err := runCommand(commands.NewAccountCommand(), "order", "1234:25")
		require.Error(t, err)
		assert.True(t, lendingclub.IsBusinessError(err))
		assert.Contains(t, err.Error(), "Failed to submit order.")
	})

	t.Run("invalid order specs", func(t *testing.T) {
		api := newFakeAPI(t, nil)
		setupCLI(t, api.server.URL)

		for _, spec := range []string{"1234", "1234:", "x:25", "1234:25:y", "1:2:3:4"} {
			_, _, err := runCommand(commands.NewAccountCommand(), "order", spec)
			require.ErrorIs(t, err, constants.ErrInvalidOrderSpec, spec)
		}

		assert.Empty(t, api.Requests())
	})
}

func TestAccountCreatePortfolio(t *testing.T) {
	api := newFakeAPI(t, map[string]route{
		"POST /accounts/123/portfolios": {http.StatusOK,
			`{"portfolioId":42,"portfolioName":"Growth","portfolioDescription":null}`},
	})
	setupCLI(t, api.server.URL)
	viper.Set("output", "yaml")

	stdout, _, err := runCommand(commands.NewAccountCommand(), "create-portfolio", "Growth")
	require.NoError(t, err)
	assert.Equal(t, "portfolioId: 42\nportfolioName: Growth\nportfolioDescription: null\n", stdout)

	requests := api.Requests()
	require.Len(t, requests, 1)
	assert.JSONEq(t, `{"actorId":123,"portfolioName":"Growth","portfolioDescription":null}`, requests[0].Body)
}

func TestAccountDetailedNotes(t *testing.T) {
	api := newFakeAPI(t, map[string]route{
		"GET /accounts/123/detailednotes": {http.StatusOK, `{"myNotes":[{"noteId":1,"grade":"B2"}]}`},
	})
	setupCLI(t, api.server.URL)

	stdout, _, err := runCommand(commands.NewAccountCommand(), "detailed-notes", "--version", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "B2")

	requests := api.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "2", requests[0].Headers.Get(constants.HeaderDetailedNotesVersion))
}
