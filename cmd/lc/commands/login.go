package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/lendingclub/internal/auth"
	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/pkg/lcclient"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var skipVerify bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save LendingClub API credentials",
		Long: `Save the API key and investor ID used by every other command.

The API key is read from --api-key or LC_API_KEY, or prompted for without echo.
Unless --skip-verify is given, the credentials are checked with one request
before they are saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey := viper.GetString(keyAPIKey)
			if apiKey == "" {
				var err error

				apiKey, err = promptSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "API Key: ")
				if err != nil {
					return err
				}
			}

			if apiKey == "" {
				return constants.ErrNoAPIKeyConfigured
			}

			investorID := viper.GetString(keyInvestorID)
			endpoint := viper.GetString(keyEndpoint)

			if !skipVerify {
				err := verifyCredentials(cmd.Context(), &lendingclub.Config{
					APIKey:     apiKey,
					InvestorID: investorID,
					Endpoint:   endpoint,
				})
				if err != nil {
					return err
				}
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.APIKey = apiKey
			config.InvestorID = investorID

			if endpoint != "" {
				config.Endpoint = endpoint
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			return renderRecord(cmd.OutOrStdout(), lendingclub.NewRecord(map[string]interface{}{
				"status":      "logged in",
				keyAPIKey:     auth.Mask(apiKey),
				keyInvestorID: investorID,
				"verified":    !skipVerify,
			}, "status", keyAPIKey, keyInvestorID, "verified"))
		},
	}

	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save credentials without checking them")

	return cmd
}

// verifyCredentials issues one read-only request: the available cash when an
// investor ID is given, the loan listing otherwise.
func verifyCredentials(ctx context.Context, config *lendingclub.Config) error {
	ctx, cancel := context.WithTimeout(ctx, constants.ShortHTTPTimeout)
	defer cancel()

	if config.InvestorID != "" {
		client, err := lcclient.New(config)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		_, err = client.Account().AvailableCash(ctx)
		if err != nil {
			return fmt.Errorf("failed to verify credentials: %w", err)
		}

		return nil
	}

	client, err := lcclient.NewLoanClient(config)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	_, err = client.Loans().ListedLoans(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to verify credentials: %w", err)
	}

	return nil
}

// promptSecret reads a line without echo when in is a terminal, and a plain
// line otherwise.
func promptSecret(in io.Reader, out io.Writer, prompt string) (string, error) {
	_, _ = fmt.Fprint(out, prompt)

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		secret, err := term.ReadPassword(int(file.Fd()))
		_, _ = fmt.Fprintln(out)

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return strings.TrimSpace(line), nil
}
