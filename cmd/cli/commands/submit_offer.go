package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TheViking816/DescansosCPE/pkg/core/offerform"
	"github.com/TheViking816/DescansosCPE/pkg/core/services"
)

// SubmitOfferCmd creates the submitOffer command
func SubmitOfferCmd(app *AppContext) *cobra.Command {
	var (
		surrender []string
		desire    []string
	)

	cmd := &cobra.Command{
		Use:   "submitOffer <worker_id>",
		Short: "Publish rest-day swap offers from surrender/desire ranges",
		Long: `Publish one or more swap offers. Each --surrender and --desire flag
takes a date range "YYYY-MM-DD:YYYY-MM-DD" or a single day "YYYY-MM-DD";
every surrender range is paired with every desire range, one offer per
pair, published as a single batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form := offerform.Form{
				Surrender: parseRangeFlags(surrender),
				Desire:    parseRangeFlags(desire),
			}

			result, err := services.SubmitOffer(app.Ctx, app.Database, app.Logger, app.Policy, args[0], form)
			if err != nil {
				return err
			}

			if len(result.ValidationErrors) > 0 {
				fmt.Printf("\n✗ La oferta no cumple las reglas:\n\n")
				for _, msg := range result.ValidationErrors {
					fmt.Printf("  - %s\n", msg)
				}
				fmt.Println()
				return fmt.Errorf("offer rejected by validation")
			}

			fmt.Printf("\n✓ ¡Oferta publicada! (%d cambios)\n\n", len(result.Created))
			for _, o := range result.Created {
				fmt.Printf("  %s  tengo %s..%s / necesito %s..%s\n",
					o.ID, o.SurrenderFrom, o.SurrenderTo, o.DesireFrom, o.DesireTo)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&surrender, "surrender", nil, `Rest days offered ("from:to" or single day, repeatable)`)
	cmd.Flags().StringArrayVar(&desire, "desire", nil, `Rest days wanted ("from:to" or single day, repeatable)`)
	cmd.MarkFlagRequired("surrender")
	cmd.MarkFlagRequired("desire")

	return cmd
}

// parseRangeFlags turns "from:to" / "from" flag values into day ranges.
// Malformed values become empty ranges the builder rejects with a
// worker-facing message.
func parseRangeFlags(values []string) []offerform.DayRange {
	ranges := make([]offerform.DayRange, 0, len(values))
	for _, v := range values {
		from, to, found := strings.Cut(v, ":")
		if !found {
			to = ""
		}
		ranges = append(ranges, offerform.DayRange{
			From: strings.TrimSpace(from),
			To:   strings.TrimSpace(to),
		})
	}
	return ranges
}
