package api

import (
	"github.com/urfave/cli/v2"

	"github.com/vvoproxy/vvoproxy/pkg/config"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the proxy web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "listen target for the web server (overrides configuration)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			listen := cfg.Listen
			if c.String("listen") != "" {
				listen = c.String("listen")
			}

			return SetupServer(listen, cfg)
		},
	}
}
