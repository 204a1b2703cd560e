package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/njprem/Fit_city_Reset_Portal/internal/config"
	"github.com/njprem/Fit_city_Reset_Portal/internal/logging"
	"github.com/njprem/Fit_city_Reset_Portal/internal/repository/postgres"
	"github.com/njprem/Fit_city_Reset_Portal/internal/service"
	transport "github.com/njprem/Fit_city_Reset_Portal/internal/transport/http"
	"github.com/njprem/Fit_city_Reset_Portal/internal/transport/mail"
	"github.com/njprem/Fit_city_Reset_Portal/internal/util"
)

func main() {
	cfg := config.LoadAPI()

	if cfg.LogstashTCPAddr != "" {
		mirror, err := logging.NewLogstash(cfg.LogstashTCPAddr, logging.Config{})
		if err != nil {
			log.Printf("logstash mirror disabled: %v", err)
		} else {
			defer mirror.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, mirror))
		}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(context.Background(), db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	users := postgres.NewUserRepo(db)
	resets := postgres.NewPasswordResetRepo(db)
	tokens := util.NewResetTokenManager(cfg.ResetTokenSecret, cfg.ResetTokenTTL)
	mailer := mail.NewResetLinkMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	account := service.NewAccountService(users, resets, tokens, mailer, cfg.PortalBaseURL)

	e := transport.NewRouter(cfg.AllowOrigins)
	transport.RegisterAccountAPI(e, account)
	transport.RegisterSwagger(e)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
