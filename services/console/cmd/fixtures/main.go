// Command fixtures checks and previews the seed data console sessions start
// from.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"metro-console/services/console/internal/store"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fixtures",
		Short:         "Inspect console seed data",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newValidateCmd(), newDumpCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate fixture files",
		Long:  `Decodes each YAML fixture file strictly and checks ids and statuses. With no files the built-in set is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{""}
			}
			failed := 0
			for _, path := range args {
				name := path
				if name == "" {
					name = "built-in"
				}
				f, err := store.LoadFixturesFile(path)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n%v\n", name, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%d trains, %d staff, %d schedules, %d stations, %d notifications)\n",
					name, len(f.Trains), len(f.Staff), len(f.Schedules), len(f.Stations), len(f.Notifications))
			}
			if failed > 0 {
				return fmt.Errorf("%d fixture file(s) invalid", failed)
			}
			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	var (
		file  string
		slice string
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the state a fresh session starts with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := store.LoadFixturesFile(file)
			if err != nil {
				return err
			}
			s := store.New(f)
			defer s.Close()

			var out interface{} = s.State()
			if slice != "" {
				v, ok := s.State().Slice(store.Slice(slice))
				if !ok {
					return fmt.Errorf("unknown slice %q", slice)
				}
				out = v
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "fixture file (default: built-in)")
	cmd.Flags().StringVarP(&slice, "slice", "s", "", "print only this slice")
	return cmd
}
