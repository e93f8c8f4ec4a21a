package di

import (
	dealService "github.com/aboutmisha/flight-deals-bot/internal/modules/deal/service"
	feedService "github.com/aboutmisha/flight-deals-bot/internal/modules/feed/service"
	searchService "github.com/aboutmisha/flight-deals-bot/internal/modules/search/service"
	userRepo "github.com/aboutmisha/flight-deals-bot/internal/modules/user/repository"
	userService "github.com/aboutmisha/flight-deals-bot/internal/modules/user/service"
	"github.com/aboutmisha/flight-deals-bot/internal/shared/config"
	"github.com/aboutmisha/flight-deals-bot/internal/transport/aviasales"
	httpTransport "github.com/aboutmisha/flight-deals-bot/internal/transport/http"
	"github.com/aboutmisha/flight-deals-bot/internal/transport/telegram"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	injector := do.New()

	// Register Config
	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	// Register State Repository (local file, optionally layered with a gist)
	do.Provide(injector, func(i do.Injector) (userRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)

		local, err := userRepo.NewFileStorage(cfg.StoragePath, cfg.AdminChatID)
		if err != nil {
			return nil, oops.With("storage_path", cfg.StoragePath, "context", "failed to initialize state repository").Wrap(err)
		}

		var remote userRepo.Repository
		if cfg.GistID != "" {
			remote = userRepo.NewGistStorage("", cfg.GistID, cfg.GHToken, cfg.AdminChatID)
		}

		return userRepo.NewLayered(remote, local), nil
	})

	// Register User Registry (loads the state for this run)
	do.Provide(injector, func(i do.Injector) (*userService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo := do.MustInvoke[userRepo.Repository](i)

		state, err := repo.Load()
		if err != nil {
			return nil, oops.With("context", "failed to load state").Wrap(err)
		}
		return userService.New(state, cfg.AdminChatID), nil
	})

	// Register Deal Service
	do.Provide(injector, func(i do.Injector) (*dealService.Service, error) {
		return dealService.New(), nil
	})

	// Register Feed Service
	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		return feedService.New(), nil
	})

	// Register Aviasales Client
	do.Provide(injector, func(i do.Injector) (*aviasales.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return aviasales.NewClient(cfg.AviasalesAPIURL, cfg.AviasalesToken), nil
	})

	// Register Telegram Client
	do.Provide(injector, func(i do.Injector) (*telegram.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client, err := telegram.NewClient(cfg)
		if err != nil {
			return nil, oops.With("context", "failed to create telegram client").Wrap(err)
		}
		return client, nil
	})

	// Register Telegram Handler
	do.Provide(injector, func(i do.Injector) (*telegram.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		registry := do.MustInvoke[*userService.Service](i)
		client := do.MustInvoke[*telegram.Client](i)
		return telegram.New(cfg, registry, client), nil
	})

	// Register HTTP Server (feed publishing)
	do.Provide(injector, func(i do.Injector) (*httpTransport.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return httpTransport.New(cfg), nil
	})

	// Register Search Service
	do.Provide(injector, func(i do.Injector) (*searchService.Service, error) {
		cfg := do.MustInvoke[*config.Config](i)
		registry := do.MustInvoke[*userService.Service](i)
		deals := do.MustInvoke[*dealService.Service](i)
		prices := do.MustInvoke[*aviasales.Client](i)
		handler := do.MustInvoke[*telegram.Handler](i)
		repo := do.MustInvoke[userRepo.Repository](i)
		feed := do.MustInvoke[*feedService.Service](i)
		return searchService.New(cfg, registry, deals, prices, handler, handler, repo, feed), nil
	})

	return injector, nil
}
