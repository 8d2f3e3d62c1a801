package main

import (
	"os"
	"pubapis/internal/prompt"
	"pubapis/internal/weatherreport"
	"pubapis/pkg/jokes/officialjoke"
	"pubapis/pkg/weather"
	"pubapis/pkg/weather/openmeteo"

	"github.com/spf13/cobra"
)

func (a *app) jokeClient() (*officialjoke.Client, error) {
	api, err := a.apiClient(nil)
	if err != nil {
		return nil, err
	}

	return officialjoke.New(api, officialjoke.Options{
		URL:     a.cfg.APIs.Jokes.URL,
		Timeout: a.cfg.APIs.Jokes.Timeout,
	}), nil
}

func (a *app) weatherCommand() *cobra.Command {
	var (
		city   string
		noJoke bool
	)
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Shows the current weather of a city, with alerts and a bonus joke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			api, err := a.apiClient(nil)
			if err != nil {
				return err
			}
			jokes, err := a.jokeClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			p := prompt.New(os.Stdin, out)
			reporter := weatherreport.New(
				openmeteo.New(api, openmeteo.Options{
					GeocodingURL: a.cfg.APIs.OpenMeteo.GeocodingURL,
					ForecastURL:  a.cfg.APIs.OpenMeteo.ForecastURL,
					Timeout:      a.cfg.APIs.OpenMeteo.Timeout,
				}),
				weatherreport.NewJokeTeller(jokes, p, out),
				p,
				out,
				weatherreport.Options{
					Thresholds: weather.Thresholds{
						Hot:  a.cfg.Weather.HotThreshold,
						Cold: a.cfg.Weather.ColdThreshold,
					},
					NoJoke: noJoke,
				})

			return reporter.Run(cmd.Context(), city)
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "City to report; asked interactively when empty")
	cmd.Flags().BoolVar(&noJoke, "no-joke", false, "Skip the bonus joke")

	return cmd
}

func (a *app) jokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "joke",
		Short: "Tells a random joke",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jokes, err := a.jokeClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			return weatherreport.NewJokeTeller(jokes, prompt.New(os.Stdin, out), out).Tell(cmd.Context())
		},
	}
}
