package providers

import (
	"time"

	"github.com/stdtour/stdtour/internal/config"
	"github.com/stdtour/stdtour/internal/providers/collections"
	"github.com/stdtour/stdtour/internal/providers/concurrency"
	"github.com/stdtour/stdtour/internal/providers/fileio"
	"github.com/stdtour/stdtour/internal/providers/futures"
	"github.com/stdtour/stdtour/internal/providers/network"
	"github.com/stdtour/stdtour/internal/providers/recovery"
	"github.com/stdtour/stdtour/internal/providers/system"
	"github.com/stdtour/stdtour/internal/providers/timeops"
	"github.com/stdtour/stdtour/internal/providers/values"
	"github.com/stdtour/stdtour/internal/service"
)

// RegisterAll wires every demonstration provider into the registry.
func RegisterAll(reg *service.Registry, cfg config.TourConfig) error {
	all := []service.Provider{
		concurrency.NewProvider(cfg.Workers),
		timeops.NewProvider(time.Duration(cfg.SleepMillis) * time.Millisecond),
		collections.NewProvider(),
		fileio.NewProvider(""),
		system.NewProvider(cfg.EnvSample),
		network.NewProvider(),
		values.NewProvider(),
		futures.NewProvider(),
		recovery.NewProvider(),
	}

	for _, p := range all {
		if err := reg.Register(p); err != nil {
			return err
		}
	}
	return nil
}
