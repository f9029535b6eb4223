package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/cloudbridge-lab/minwon/pkg/cli/config"
	"github.com/cloudbridge-lab/minwon/pkg/domain/model"
	"github.com/cloudbridge-lab/minwon/pkg/service/backend"
	"github.com/cloudbridge-lab/minwon/pkg/service/guidance"
	"github.com/cloudbridge-lab/minwon/pkg/utils/logging"
)

func cmdSearch() *cli.Command {
	var backendCfg config.Backend
	var datasetCfg config.Dataset

	flags := append(backendCfg.Flags(), datasetCfg.Flags()...)

	return &cli.Command{
		Name:      "search",
		Usage:     "Search civil petitions by keyword",
		ArgsUsage: "[query]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			query := c.Args().First()

			override, err := datasetCfg.Configure()
			if err != nil {
				return err
			}
			guidanceSvc := guidance.New(guidance.WithOverride(override))

			be, err := backendCfg.Configure(
				backend.WithPetitions(guidanceSvc.Petitions()),
			)
			if err != nil {
				return err
			}

			petitions, err := be.SearchPetitions(ctx, query)
			if err != nil {
				logging.Default().Warn("backend search failed, using bundled data",
					"query", query, "error", err)
				petitions = guidanceSvc.SearchFallback(query)
			}

			printPetitions(petitions)
			return nil
		},
	}
}

func printPetitions(petitions []*model.CivilPetition) {
	if len(petitions) == 0 {
		color.Yellow("No petitions found")
		return
	}

	title := color.New(color.FgCyan, color.Bold)
	id := color.New(color.FgHiBlack)
	for _, petition := range petitions {
		title.Fprintln(os.Stdout, petition.Name)
		id.Fprintf(os.Stdout, "  %s\n", petition.InfoID)
		if petition.Summary != "" {
			fmt.Printf("  %s\n", petition.Summary)
		}
		fmt.Println()
	}
}
