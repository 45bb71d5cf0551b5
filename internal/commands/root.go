package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/statement"
)

// Services are the use cases the commands run against
type Services struct {
	Reconciler usecase.ReconciliationUseCase
	Profiles   usecase.ProfileUseCase
	Close      func() error
}

// ServiceFactory builds the services once a command has been selected
type ServiceFactory func(ctx context.Context) (*Services, error)

type runtime struct {
	factory  ServiceFactory
	readers  *statement.Registry
	services *Services
}

// NewRootCommand creates the root CLI command with all subcommands registered
func NewRootCommand(factory ServiceFactory, readers *statement.Registry) *cobra.Command {
	rt := &runtime{factory: factory, readers: readers}

	rootCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Match bank statement lines to member profiles",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			services, err := rt.factory(cmd.Context())
			if err != nil {
				return err
			}
			rt.services = services
			return nil
		},
	}

	rootCmd.AddCommand(
		newImportCommand(rt),
		newRerunCommand(rt),
		newMatchCommand(rt),
		newClearCommand(rt),
		newShowCommand(rt),
		newListCommand(rt),
		newProfilesCommand(rt),
	)
	closeAfterRun(rootCmd, rt)

	return rootCmd
}

// closeAfterRun releases the services once a leaf command finishes, whether it failed or not
func closeAfterRun(cmd *cobra.Command, rt *runtime) {
	for _, child := range cmd.Commands() {
		if run := child.RunE; run != nil {
			child.RunE = func(c *cobra.Command, args []string) (err error) {
				defer func() {
					if closeErr := rt.close(); err == nil {
						err = closeErr
					}
				}()
				return run(c, args)
			}
		}
		closeAfterRun(child, rt)
	}
}

func (rt *runtime) close() error {
	if rt.services == nil || rt.services.Close == nil {
		return nil
	}
	err := rt.services.Close()
	rt.services = nil
	return err
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
