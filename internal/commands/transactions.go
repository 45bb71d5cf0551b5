package commands

import (
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/dto"
)

func newMatchCommand(rt *runtime) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "match <transactionID> <userID>",
		Short: "Manually assign a transaction to a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := rt.services.Reconciler.SetManualMatch(cmd.Context(), args[0], args[1], actor)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.NewTransactionResponse(tx, ""))
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "ID of the person making the change")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}

func newClearCommand(rt *runtime) *cobra.Command {
	var actor string

	cmd := &cobra.Command{
		Use:   "clear <transactionID>",
		Short: "Reset a transaction to unmatched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tx, err := rt.services.Reconciler.ClearMatch(cmd.Context(), args[0], actor)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.NewTransactionResponse(tx, ""))
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "ID of the person making the change")
	_ = cmd.MarkFlagRequired("actor")
	return cmd
}

func newShowCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "show <transactionID>",
		Short: "Show a transaction and its match history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := rt.services.Reconciler.GetTransaction(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			provenance, err := rt.services.Reconciler.GetMatchProvenance(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), struct {
				Transaction dto.TransactionResponse `json:"transaction"`
				Provenance  dto.ProvenanceResponse  `json:"provenance"`
			}{
				Transaction: dto.NewTransactionViewResponse(*view),
				Provenance:  dto.NewProvenanceResponse(provenance),
			})
		},
	}
}

func newListCommand(rt *runtime) *cobra.Command {
	var query dto.ListTransactionsQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := query.ToFilter()
			if err != nil {
				return err
			}

			views, err := rt.services.Reconciler.ListTransactions(cmd.Context(), filter)
			if err != nil {
				return err
			}

			items := make([]dto.TransactionResponse, 0, len(views))
			for _, view := range views {
				items = append(items, dto.NewTransactionViewResponse(view))
			}
			return printJSON(cmd.OutOrStdout(), dto.TransactionListResponse{
				Items:  items,
				Count:  len(items),
				Limit:  filter.Limit,
				Offset: filter.Offset,
			})
		},
	}

	cmd.Flags().StringSliceVar(&query.Confidence, "confidence", nil, "filter by confidence (auto, manual, unmatched)")
	cmd.Flags().StringVar(&query.UserID, "user", "", "filter by matched user ID")
	cmd.Flags().StringVar(&query.Search, "search", "", "search the description")
	cmd.Flags().IntVar(&query.Limit, "limit", dto.DefaultListLimit, "maximum number of rows")
	cmd.Flags().IntVar(&query.Offset, "offset", 0, "rows to skip")
	return cmd
}
