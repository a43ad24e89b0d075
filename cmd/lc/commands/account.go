package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// dateLayout is the date format accepted on the command line.
const dateLayout = "2006-01-02"

// NewAccountCommand creates the account command group
func NewAccountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"acct"},
		Short:   "Manage the investor account",
		Long:    "View and manage the funds, notes, portfolios and orders of the configured investor account",
	}

	cmd.PersistentFlags().StringSlice("fields", nil, "table columns to show for list commands")

	cmd.AddCommand(newAccountSummaryCommand())
	cmd.AddCommand(newAccountCashCommand())
	cmd.AddCommand(newAccountAddFundsCommand())
	cmd.AddCommand(newAccountWithdrawCommand())
	cmd.AddCommand(newAccountPendingCommand())
	cmd.AddCommand(newAccountCancelCommand())
	cmd.AddCommand(newAccountNotesCommand())
	cmd.AddCommand(newAccountDetailedNotesCommand())
	cmd.AddCommand(newAccountPortfoliosCommand())
	cmd.AddCommand(newAccountCreatePortfolioCommand())
	cmd.AddCommand(newAccountOrderCommand())
	cmd.AddCommand(newAccountFiltersCommand())

	return cmd
}

func newAccountSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the account summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			summary, err := account.Summary(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get account summary: %w", err)
			}

			return renderRecord(cmd.OutOrStdout(), summary)
		},
	}
}

func newAccountCashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cash",
		Short: "Show the available cash",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			cash, err := account.AvailableCash(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get available cash: %w", err)
			}

			return renderRecord(cmd.OutOrStdout(), lendingclub.NewRecord(map[string]interface{}{
				"availableCash": cash,
			}))
		},
	}
}

func newAccountAddFundsCommand() *cobra.Command {
	var (
		frequency string
		startDate string
		endDate   string
	)

	cmd := &cobra.Command{
		Use:   "add-funds AMOUNT",
		Short: "Transfer funds into the account",
		Long: `Transfer funds from the linked bank account.

Frequency is one of now, once, weekly, biweekly, semimonthly or monthly, or the
API name such as LOAD_WEEKLY. Dates use the YYYY-MM-DD format.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			transferFrequency, err := lendingclub.ParseTransferFrequency(frequency)
			if err != nil {
				return err
			}

			request := &lendingclub.AddFundsRequest{
				Amount:            amount,
				TransferFrequency: transferFrequency,
			}

			request.StartDate, err = parseOptionalDate(startDate)
			if err != nil {
				return err
			}

			request.EndDate, err = parseOptionalDate(endDate)
			if err != nil {
				return err
			}

			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			result, err := account.AddFunds(cmd.Context(), request)
			if err != nil {
				return fmt.Errorf("failed to add funds: %w", err)
			}

			return renderRecord(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&frequency, "frequency", "now", "transfer frequency")
	cmd.Flags().StringVar(&startDate, "start-date", "", "first transfer date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "last transfer date of a recurring transfer (YYYY-MM-DD)")

	return cmd
}

func newAccountWithdrawCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw AMOUNT",
		Short: "Withdraw funds to the linked bank account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}

			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			result, err := account.WithdrawFunds(cmd.Context(), amount)
			if err != nil {
				return fmt.Errorf("failed to withdraw funds: %w", err)
			}

			return renderRecord(cmd.OutOrStdout(), result)
		},
	}
}

func newAccountPendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List pending transfers",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			transfers, err := account.PendingTransfers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list pending transfers: %w", err)
			}

			return renderRecords(cmd.OutOrStdout(), transfers, fieldsFlag(cmd), "No pending transfers.")
		},
	}
}

func newAccountCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel TRANSFER_ID...",
		Short: "Cancel pending transfers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transferIDs, err := parseTransferIDs(args)
			if err != nil {
				return err
			}

			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			results, err := account.CancelTransfers(cmd.Context(), transferIDs)
			if err != nil {
				return fmt.Errorf("failed to cancel transfers: %w", err)
			}

			return renderRecords(cmd.OutOrStdout(), results, fieldsFlag(cmd), "No transfers cancelled.")
		},
	}
}

func newAccountNotesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notes",
		Short: "List owned notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			notes, err := account.NotesOwned(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}

			return renderRecords(cmd.OutOrStdout(), notes, fieldsFlag(cmd), "No notes owned.")
		},
	}
}

func newAccountDetailedNotesCommand() *cobra.Command {
	var version string

	cmd := &cobra.Command{
		Use:   "detailed-notes",
		Short: "List owned notes with loan details",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			notes, err := account.DetailedNotesOwned(cmd.Context(), &lendingclub.DetailedNotesOptions{Version: version})
			if err != nil {
				return fmt.Errorf("failed to list detailed notes: %w", err)
			}

			return renderRecords(cmd.OutOrStdout(), notes, fieldsFlag(cmd), "No notes owned.")
		},
	}

	cmd.Flags().StringVar(&version, "version", "", "response schema version (X-LC-DETAILED-NOTES-VERSION)")

	return cmd
}

func newAccountPortfoliosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "portfolios",
		Short: "List owned portfolios",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			portfolios, err := account.PortfoliosOwned(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list portfolios: %w", err)
			}

			return renderRecords(cmd.OutOrStdout(), portfolios, fieldsFlag(cmd), "No portfolios owned.")
		},
	}
}

func newAccountCreatePortfolioCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create-portfolio NAME",
		Short: "Create a portfolio",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			portfolio, err := account.CreatePortfolio(cmd.Context(), args[0], description)
			if err != nil {
				return fmt.Errorf("failed to create portfolio: %w", err)
			}

			return renderRecord(cmd.OutOrStdout(), portfolio)
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "portfolio description")

	return cmd
}

func newAccountOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order LOAN_ID:AMOUNT[:PORTFOLIO_ID]...",
		Short: "Submit investment orders",
		Long: `Submit one order per argument. Each order invests AMOUNT dollars in LOAN_ID
and optionally assigns the note to PORTFOLIO_ID, e.g.

  lc account order 1234:25 5678:50:42`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders := make([]lendingclub.Order, 0, len(args))

			for _, arg := range args {
				order, err := parseOrder(arg)
				if err != nil {
					return err
				}

				orders = append(orders, order)
			}

			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			confirmations, err := account.SubmitOrder(cmd.Context(), orders)
			if err != nil {
				return fmt.Errorf("failed to submit order: %w", err)
			}

			return renderRecords(cmd.OutOrStdout(), confirmations, fieldsFlag(cmd), "No orders confirmed.")
		},
	}
}

func newAccountFiltersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List saved loan filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := newAccountClient(cmd)
			if err != nil {
				return err
			}

			filters, err := account.Filters(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list filters: %w", err)
			}

			return renderRecords(cmd.OutOrStdout(), filters, fieldsFlag(cmd), "No filters saved.")
		},
	}
}

func fieldsFlag(cmd *cobra.Command) []string {
	fields, _ := cmd.Flags().GetStringSlice("fields")

	return fields
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}

	return amount, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil // no date given
	}

	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidDate, value)
	}

	return &date, nil
}

func parseTransferIDs(args []string) ([]int64, error) {
	transferIDs := make([]int64, 0, len(args))

	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidTransferID, arg)
		}

		transferIDs = append(transferIDs, id)
	}

	return transferIDs, nil
}

// parseOrder parses LOAN_ID:AMOUNT[:PORTFOLIO_ID].
func parseOrder(value string) (lendingclub.Order, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return lendingclub.Order{}, fmt.Errorf("%w: %q", constants.ErrInvalidOrderSpec, value)
	}

	loanID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return lendingclub.Order{}, fmt.Errorf("%w: %q", constants.ErrInvalidOrderSpec, value)
	}

	amount, err := decimal.NewFromString(parts[1])
	if err != nil {
		return lendingclub.Order{}, fmt.Errorf("%w: %q", constants.ErrInvalidOrderSpec, value)
	}

	order := lendingclub.NewOrder(loanID, amount)

	if len(parts) == 3 {
		portfolioID, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return lendingclub.Order{}, fmt.Errorf("%w: %q", constants.ErrInvalidOrderSpec, value)
		}

		order = order.WithPortfolio(portfolioID)
	}

	return order, nil
}
