package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/cloudbridge-lab/minwon/pkg/cli/config"
	"github.com/cloudbridge-lab/minwon/pkg/domain/types"
	"github.com/cloudbridge-lab/minwon/pkg/service/guidance"
	"github.com/cloudbridge-lab/minwon/pkg/service/offices"
	"github.com/cloudbridge-lab/minwon/pkg/usecase"
	"github.com/cloudbridge-lab/minwon/pkg/utils/logging"
)

const officeLookupTimeout = 8 * time.Second

func cmdNearby() *cli.Command {
	var lat, lng, radius float64
	var serviceID string
	var backendCfg config.Backend
	var datasetCfg config.Dataset

	flags := []cli.Flag{
		&cli.FloatFlag{
			Name:        "lat",
			Usage:       "Latitude of the search origin",
			Value:       usecase.DefaultLatitude,
			Destination: &lat,
		},
		&cli.FloatFlag{
			Name:        "lng",
			Usage:       "Longitude of the search origin",
			Value:       usecase.DefaultLongitude,
			Destination: &lng,
		},
		&cli.FloatFlag{
			Name:        "radius",
			Usage:       "Search radius in kilometers",
			Value:       usecase.DefaultRadiusKm,
			Destination: &radius,
		},
		&cli.StringFlag{
			Name:        "service",
			Usage:       "Service id whose office filter to apply",
			Destination: &serviceID,
		},
	}
	flags = append(flags, backendCfg.Flags()...)
	flags = append(flags, datasetCfg.Flags()...)

	return &cli.Command{
		Name:  "nearby",
		Usage: "List government offices near a coordinate",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			override, err := datasetCfg.Configure()
			if err != nil {
				return err
			}
			guidanceSvc := guidance.New(guidance.WithOverride(override))

			be, err := backendCfg.Configure()
			if err != nil {
				return err
			}
			cache := offices.NewCache(be)

			lookupCtx, cancel := context.WithTimeout(ctx, officeLookupTimeout)
			defer cancel()

			all, err := cache.List(lookupCtx)
			if err != nil {
				return err
			}

			filter := guidanceSvc.NearbyFilterFor(types.ServiceID(serviceID))
			results := usecase.Locate(lat, lng, all, radius, filter)

			if len(results) == 0 {
				color.Yellow("No offices within %.1fkm", radius)
				return nil
			}

			logging.Default().Debug("nearby lookup",
				"lat", lat, "lng", lng, "radius", radius, "results", len(results))

			name := color.New(color.FgCyan, color.Bold)
			dist := color.New(color.FgGreen)
			for _, office := range results {
				name.Fprint(os.Stdout, office.Name)
				dist.Fprintf(os.Stdout, "  %s\n", usecase.FormatDistance(office.DistanceKm))
				fmt.Printf("  %s", office.Address)
				if office.Phone != "" {
					fmt.Printf("  %s", office.Phone)
				}
				fmt.Println()
			}
			return nil
		},
	}
}
