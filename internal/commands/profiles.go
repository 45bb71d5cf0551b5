package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/amirhossein-jamali/bank-reconciler/internal/domain/entity"
	"github.com/amirhossein-jamali/bank-reconciler/internal/infrastructure/adapter/api/dto"
)

// profileFile is the YAML layout accepted by "profiles load"
type profileFile struct {
	Profiles []profileEntry `yaml:"profiles"`
}

type profileEntry struct {
	ID          string   `yaml:"id"`
	DisplayName string   `yaml:"displayName"`
	Aliases     []string `yaml:"aliases"`
	Active      *bool    `yaml:"active"`
}

// decodeProfiles parses a profile file. Entries without an active flag are active
func decodeProfiles(r io.Reader) ([]entity.Profile, error) {
	var file profileFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	profiles := make([]entity.Profile, 0, len(file.Profiles))
	for _, e := range file.Profiles {
		active := true
		if e.Active != nil {
			active = *e.Active
		}
		profiles = append(profiles, entity.Profile{
			ID:          e.ID,
			DisplayName: e.DisplayName,
			Aliases:     e.Aliases,
			Active:      active,
		})
	}
	return profiles, nil
}

func newProfilesCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Inspect and load member profiles",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List active profiles",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				profiles, err := rt.services.Profiles.ListActiveProfiles(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.NewProfileResponses(profiles))
			},
		},
		&cobra.Command{
			Use:   "load <file.yaml>",
			Short: "Create or replace profiles from a YAML file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open profiles: %w", err)
				}
				defer func() { _ = file.Close() }()

				profiles, err := decodeProfiles(file)
				if err != nil {
					return err
				}

				written, err := rt.services.Profiles.LoadProfiles(cmd.Context(), profiles)
				fmt.Fprintf(cmd.OutOrStdout(), "loaded %d of %d profiles\n", written, len(profiles))
				return err
			},
		},
	)

	return cmd
}
