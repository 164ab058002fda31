package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheViking816/DescansosCPE/pkg/core/services"
)

// ListWorkersCmd creates the listWorkers command
func ListWorkersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listWorkers",
		Short: "List the worker directory with rest groups and specialties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ListWorkers(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nTrabajadores (%d):\n", len(result.Workers))
			for _, w := range result.Workers {
				specialty := w.SpecialtyCode
				if w.SpecialtyName != "" {
					specialty = fmt.Sprintf("%s - %s", w.SpecialtyCode, w.SpecialtyName)
				}
				fmt.Printf("  %-25s chapa %-8s %s-%s  %s\n",
					w.Name, w.Badge, w.RestGroup, w.RotationWeek, specialty)
			}
			fmt.Println()
			return nil
		},
	}
}
