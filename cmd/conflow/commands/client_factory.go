package commands

import (
	"time"

	"conflow/internal/config"
	"conflow/internal/confluence"
	"conflow/pkg/logger"
)

// newConfluenceClient is a package-level variable to allow test injection of a mock.
// Production code uses the real client constructor; tests can override this.
var newConfluenceClient = func(cfg *config.Config, log *logger.Logger) confluence.ConfluenceClient {
	var opts []confluence.Option
	if cfg.Confluence.Flavor != "" {
		opts = append(opts, confluence.WithFlavor(cfg.Confluence.Flavor))
	}
	if cfg.Export.PollIntervalSeconds > 0 {
		opts = append(opts, confluence.WithPollInterval(time.Duration(cfg.Export.PollIntervalSeconds)*time.Second))
	}
	if cfg.Export.MaxPolls > 0 {
		opts = append(opts, confluence.WithMaxPolls(cfg.Export.MaxPolls))
	}
	return confluence.NewClient(cfg.Confluence.BaseURL, cfg.Confluence.Username, cfg.Confluence.APIToken, log, opts...)
}

// loadClient loads the config file and builds a client from it. Commands
// that take the space from a flag use the relaxed loader.
func loadClient(requireSpace bool) (confluence.ConfluenceClient, *config.Config, error) {
	path := config.ResolveConfigPath(configFile)

	var (
		cfg *config.Config
		err error
	)
	if requireSpace {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadRelaxed(path)
	}
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(verbose)
	return newConfluenceClient(cfg, log), cfg, nil
}
