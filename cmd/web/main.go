package main

import (
	"io"
	"log"
	"os"

	"github.com/njprem/Fit_city_Reset_Portal/internal/client"
	"github.com/njprem/Fit_city_Reset_Portal/internal/config"
	"github.com/njprem/Fit_city_Reset_Portal/internal/logging"
	"github.com/njprem/Fit_city_Reset_Portal/internal/service"
	transport "github.com/njprem/Fit_city_Reset_Portal/internal/transport/http"
)

func main() {
	cfg := config.LoadPortal()

	if cfg.LogstashTCPAddr != "" {
		mirror, err := logging.NewLogstash(cfg.LogstashTCPAddr, logging.Config{})
		if err != nil {
			log.Printf("logstash mirror disabled: %v", err)
		} else {
			defer mirror.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, mirror))
		}
	}

	backend := client.NewAccountAPIClient(cfg.AccountAPIURL, cfg.SubmitTimeout)
	portal := service.NewResetPortalService(backend)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterPortal(e, portal, cfg.LoginURL)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
