package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TheViking816/DescansosCPE/pkg/core/feed"
	"github.com/TheViking816/DescansosCPE/pkg/core/model"
	"github.com/TheViking816/DescansosCPE/pkg/core/services"
)

// BoardCmd creates the board command
func BoardCmd(app *AppContext) *cobra.Command {
	var (
		group     string
		week      string
		specialty string
		date      string
	)

	cmd := &cobra.Command{
		Use:   "board <worker_id>",
		Short: "Show the ranked swap board for a worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := feed.Filters{
				RestGroup:     model.RestGroup(group),
				RotationWeek:  model.RotationWeek(week),
				SpecialtyCode: specialty,
				Date:          date,
			}

			result, err := services.ViewBoard(app.Ctx, app.Database, app.Logger, args[0], filters)
			if err != nil {
				return err
			}

			app.trackUsage(result.Viewer.Badge, "board")
			printBoard(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Filter by rest group (A, B or C)")
	cmd.Flags().StringVar(&week, "week", "", "Filter by rotation week (V or N)")
	cmd.Flags().StringVar(&specialty, "specialty", "", "Filter by specialty code")
	cmd.Flags().StringVar(&date, "date", "", "Keep only offers covering this date (YYYY-MM-DD)")

	return cmd
}

func printBoard(result *services.ViewBoardResult) {
	fmt.Printf("\nTablón de cambios — %s (%s-%s)\n\n",
		result.Viewer.Name, result.Viewer.RestGroup, result.Viewer.RotationWeek)

	fmt.Printf("Ofertas activas (%d):\n", result.ActiveCount)
	if result.ActiveCount == 0 {
		fmt.Println("  (ninguna)")
	}
	for _, entry := range result.Board.Active {
		printEntry(entry)
	}

	if result.ExpiredCount > 0 {
		fmt.Printf("\nOfertas finalizadas (%d):\n", result.ExpiredCount)
		for _, entry := range result.Board.Expired {
			printEntry(entry)
		}
	}
	fmt.Println()
}

func printEntry(entry feed.Entry) {
	var bits []string

	bits = append(bits, fmt.Sprintf("%-10s", entry.Quality))
	bits = append(bits, fmt.Sprintf("tengo %s..%s", entry.Offer.SurrenderFrom, entry.Offer.SurrenderTo))
	bits = append(bits, fmt.Sprintf("necesito %s..%s", entry.Offer.DesireFrom, entry.Offer.DesireTo))

	if entry.UrgencyDays != nil {
		switch *entry.UrgencyDays {
		case 0:
			bits = append(bits, "hoy")
		case 1:
			bits = append(bits, "mañana")
		default:
			bits = append(bits, fmt.Sprintf("en %d días", *entry.UrgencyDays))
		}
	}

	owner := entry.Owner.Name
	if entry.IsOwn {
		owner += " (tú)"
	}
	if len(entry.GroupedOffers) > 1 {
		owner += fmt.Sprintf(" [%d ofertas]", len(entry.GroupedOffers))
	}

	fmt.Printf("  %s  %s\n", strings.Join(bits, "  "), owner)
}
