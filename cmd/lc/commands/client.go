package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/pkg/lcclient"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// clientConfig builds the library configuration from flags, environment and
// config file. With --verbose, requests and responses are logged to stderr.
func clientConfig(cmd *cobra.Command) (*lendingclub.Config, error) {
	apiKey := viper.GetString(keyAPIKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	config := &lendingclub.Config{
		APIKey:      apiKey,
		InvestorID:  viper.GetString(keyInvestorID),
		Endpoint:    viper.GetString(keyEndpoint),
		HTTPTimeout: constants.DefaultHTTPTimeout,
	}

	if viper.GetBool("verbose") {
		config.Logger = NewZapLogger(cmd.ErrOrStderr(), zapcore.DebugLevel)
		config.Debug = true
	}

	return config, nil
}

// newAccountClient creates the account operations of a full client.
func newAccountClient(cmd *cobra.Command) (lendingclub.AccountClient, error) {
	config, err := clientConfig(cmd)
	if err != nil {
		return nil, err
	}

	if config.InvestorID == "" {
		return nil, constants.ErrNoInvestorIDConfigured
	}

	client, err := lcclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client.Account(), nil
}

// newLoansClient creates the loan operations, which need no investor ID.
func newLoansClient(cmd *cobra.Command) (lendingclub.LoansClient, error) {
	config, err := clientConfig(cmd)
	if err != nil {
		return nil, err
	}

	client, err := lcclient.NewLoanClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client.Loans(), nil
}
