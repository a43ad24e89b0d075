package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lendingclub/internal/constants"
	"github.com/fivetwenty-io/lendingclub/internal/publish"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// NewLoansCommand creates the loans command group
func NewLoansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Browse listed loans",
		Long:  "Browse the loans currently listed on the LendingClub platform. No investor ID is needed.",
	}

	cmd.AddCommand(newLoansListCommand())

	return cmd
}

func newLoansListCommand() *cobra.Command {
	var (
		filterID       int64
		showAll        bool
		listingVersion string
		natsURL        string
		natsSubject    string
		fields         []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List loans",
		Long: `List the loans of the most recent listing period, or every listed loan with
--show-all. With --nats-url, each loan is also published as one message on
--nats-subject.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := &lendingclub.ListedLoansOptions{Version: listingVersion}

			if cmd.Flags().Changed("filter-id") {
				options.FilterID = &filterID
			}

			if cmd.Flags().Changed("show-all") {
				options.ShowAll = &showAll
			}

			loans, err := newLoansClient(cmd)
			if err != nil {
				return err
			}

			listed, err := loans.ListedLoans(cmd.Context(), options)
			if err != nil {
				return fmt.Errorf("failed to list loans: %w", err)
			}

			if natsURL != "" {
				publisher, err := publish.Connect(natsURL, natsSubject)
				if err != nil {
					return err
				}
				defer publisher.Close()

				count, err := publisher.PublishListing(cmd.Context(), listed)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Published %d loans to %s\n", count, natsSubject)
			}

			return renderListedLoans(cmd.OutOrStdout(), listed, fields)
		},
	}

	cmd.Flags().Int64Var(&filterID, "filter-id", 0, "saved filter to apply (see 'lc account filters')")
	cmd.Flags().BoolVar(&showAll, "show-all", false, "list every loan instead of the most recent listing")
	cmd.Flags().StringVar(&listingVersion, "listing-version", "", "response schema version (X-LC-LISTING-VERSION)")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server to publish listed loans to")
	cmd.Flags().StringVar(&natsSubject, "nats-subject", constants.DefaultNATSSubject, "NATS subject for published loans")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "table columns to show")

	return cmd
}
