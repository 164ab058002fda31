package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheViking816/DescansosCPE/pkg/core/offerform"
	"github.com/TheViking816/DescansosCPE/pkg/core/services"
)

// MyOffersCmd creates the myOffers command
func MyOffersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "myOffers <worker_id>",
		Short: "List a worker's own offers, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ListMyOffers(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return err
			}

			if len(result.Offers) == 0 {
				fmt.Println("\nNo tienes ofertas publicadas.")
				return nil
			}

			fmt.Printf("\nTus ofertas (%d):\n", len(result.Offers))
			for _, o := range result.Offers {
				status := "activa"
				if !o.Active {
					status = "inactiva"
				}
				fmt.Printf("  %s  tengo %s..%s / necesito %s..%s  [%s]\n",
					o.ID, o.SurrenderFrom, o.SurrenderTo, o.DesireFrom, o.DesireTo, status)
			}
			fmt.Println()
			return nil
		},
	}
}

// EditOfferCmd creates the editOffer command
func EditOfferCmd(app *AppContext) *cobra.Command {
	var (
		surrenderFrom string
		surrenderTo   string
		desireFrom    string
		desireTo      string
	)

	cmd := &cobra.Command{
		Use:   "editOffer <worker_id> <offer_id>",
		Short: "Replace an offer's date ranges in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges := offerform.OfferDraft{
				SurrenderFrom: surrenderFrom,
				SurrenderTo:   surrenderTo,
				DesireFrom:    desireFrom,
				DesireTo:      desireTo,
			}

			result, err := services.EditOffer(app.Ctx, app.Database, app.Logger, app.Policy, args[0], args[1], ranges)
			if err != nil {
				return err
			}

			if len(result.ValidationErrors) > 0 {
				fmt.Printf("\n✗ El cambio no cumple las reglas:\n\n")
				for _, msg := range result.ValidationErrors {
					fmt.Printf("  - %s\n", msg)
				}
				fmt.Println()
				return fmt.Errorf("offer edit rejected by validation")
			}

			o := result.Offer
			fmt.Printf("\n✓ Oferta actualizada: tengo %s..%s / necesito %s..%s\n\n",
				o.SurrenderFrom, o.SurrenderTo, o.DesireFrom, o.DesireTo)
			return nil
		},
	}

	cmd.Flags().StringVar(&surrenderFrom, "surrender-from", "", "New surrender start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&surrenderTo, "surrender-to", "", "New surrender end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&desireFrom, "desire-from", "", "New desire start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&desireTo, "desire-to", "", "New desire end (YYYY-MM-DD)")
	cmd.MarkFlagRequired("surrender-from")
	cmd.MarkFlagRequired("surrender-to")
	cmd.MarkFlagRequired("desire-from")
	cmd.MarkFlagRequired("desire-to")

	return cmd
}

// DeleteOfferCmd creates the deleteOffer command
func DeleteOfferCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteOffer <worker_id> <offer_id>",
		Short: "Delete one of a worker's own offers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.DeleteOwnOffer(app.Ctx, app.Database, app.Logger, args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("\n✓ Oferta %s eliminada.\n\n", args[1])
			return nil
		},
	}
}
