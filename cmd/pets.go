package main

import (
	"os"
	"pubapis/internal/petgen"
	"pubapis/internal/prompt"
	"pubapis/pkg/pets"
	"pubapis/pkg/pets/dogceo"
	"pubapis/pkg/pets/thecatapi"

	"github.com/spf13/cobra"
)

func (a *app) catsCommand() *cobra.Command {
	return a.petCommand(petgen.Cat, "cats", "Shows a random cat picture and cat fact",
		func() (pets.Client, error) {
			api, err := a.apiClient(nil)
			if err != nil {
				return nil, err
			}

			return thecatapi.New(api, thecatapi.Options{
				ImagesURL: a.cfg.APIs.Cats.ImagesURL,
				FactURL:   a.cfg.APIs.Cats.FactURL,
				Timeout:   a.cfg.APIs.Cats.Timeout,
			}), nil
		})
}

func (a *app) dogsCommand() *cobra.Command {
	return a.petCommand(petgen.Dog, "dogs", "Shows a random dog picture, its breed and a dog fact",
		func() (pets.Client, error) {
			api, err := a.apiClient(nil)
			if err != nil {
				return nil, err
			}

			return dogceo.New(api, dogceo.Options{
				ImageURL: a.cfg.APIs.Dogs.ImageURL,
				FactsURL: a.cfg.APIs.Dogs.FactsURL,
				Timeout:  a.cfg.APIs.Dogs.Timeout,
			}), nil
		})
}

func (a *app) petCommand(kind petgen.Kind, use, short string,
	newClient func() (pets.Client, error),
) *cobra.Command {
	var opts petgen.Options
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			gen := petgen.New(kind, client, prompt.New(os.Stdin, out), petgen.BrowserOpener{}, out, opts)

			return gen.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&opts.Once, "once", false, "Show a single picture and fact without any prompt")
	cmd.Flags().BoolVar(&opts.AutoOpen, "open", false, "Open the picture in the browser without asking")

	return cmd
}
