package main

import (
	"areaprop/internal/api"
	"areaprop/internal/config"
	"areaprop/internal/container"
	"areaprop/internal/errors"

	"github.com/spf13/cobra"
)

func newServeCmd(cfg *config.Config, s streams) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve propagation runs over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cfg, s.err)
			c, err := container.New(cfg, logger)
			if err != nil {
				return errors.Wrap(err, "initializing")
			}

			handler := api.NewPropagateHandler(c.Propagation, c.Renderer, cfg.Sampling.Samples, logger)
			router := api.NewRouter(handler, cfg.Server.GinMode)
			return api.Serve(cmd.Context(), addr, router, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", cfg.Server.Addr, "listen address")
	return cmd
}
