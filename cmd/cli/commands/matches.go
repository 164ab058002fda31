package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheViking816/DescansosCPE/pkg/core/services"
)

// MatchesCmd creates the matches command
func MatchesCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "matches <offer_id>",
		Short: "List reciprocal matches for an offer, best first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.FindMatchesForOffer(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("\nOferta %s: tengo %s..%s / necesito %s..%s\n\n",
				result.Offer.ID,
				result.Offer.SurrenderFrom, result.Offer.SurrenderTo,
				result.Offer.DesireFrom, result.Offer.DesireTo)

			if len(result.Matches) == 0 {
				fmt.Println("Sin matches recíprocos ahora mismo.")
				return nil
			}

			fmt.Printf("Matches (%d):\n", len(result.Matches))
			for _, m := range result.Matches {
				fmt.Printf("  %-10s %s (%s-%s, %s)  tengo %s..%s / necesito %s..%s\n",
					m.Quality,
					m.Owner.Name, m.Owner.RestGroup, m.Owner.RotationWeek, m.Owner.SpecialtyCode,
					m.Offer.SurrenderFrom, m.Offer.SurrenderTo,
					m.Offer.DesireFrom, m.Offer.DesireTo)
			}
			fmt.Println()
			return nil
		},
	}
}
