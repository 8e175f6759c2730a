package main

import (
	"context"

	"planora-api/config"
	minioConnect "planora-api/config/minio"
	postgreConnect "planora-api/config/postgre"
	redisConnect "planora-api/config/redis"
	"planora-api/internal/httpserver"
	"planora-api/pkg/discord"
	"planora-api/pkg/encrypter"
	"planora-api/pkg/log"
	"planora-api/pkg/scope"
)

//	@title			Planora API
//	@version		1.0
//	@description	Event plan management service.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	db, err := postgreConnect.Connect(cfg.Postgres)
	if err != nil {
		l.Fatalf(ctx, "main: connect postgres: %v", err)
	}
	defer func() {
		if err := postgreConnect.Disconnect(); err != nil {
			l.Errorf(ctx, "main: disconnect postgres: %v", err)
		}
	}()

	cache, err := redisConnect.Connect(cfg.Redis)
	if err != nil {
		l.Fatalf(ctx, "main: connect redis: %v", err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			l.Errorf(ctx, "main: close redis: %v", err)
		}
	}()

	storage, err := minioConnect.Connect(ctx, cfg.MinIO)
	if err != nil {
		l.Fatalf(ctx, "main: connect minio: %v", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			l.Errorf(ctx, "main: close minio: %v", err)
		}
	}()

	manager, err := scope.New(scope.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
		Leeway:    cfg.JWT.Leeway,
	})
	if err != nil {
		l.Fatalf(ctx, "main: init scope manager: %v", err)
	}

	var reporter discord.IDiscord
	if cfg.Discord.ReportBugWebhookID != "" && cfg.Discord.ReportBugWebhookToken != "" {
		reporter, err = discord.New(l, &discord.DiscordWebhook{
			ID:    cfg.Discord.ReportBugWebhookID,
			Token: cfg.Discord.ReportBugWebhookToken,
		})
		if err != nil {
			l.Fatalf(ctx, "main: init discord reporter: %v", err)
		}
	} else {
		l.Warn(ctx, "main: discord bug reporting disabled, webhook not configured")
	}

	srv, err := httpserver.New(l, httpserver.Config{
		Port:         cfg.Server.Port,
		Mode:         cfg.Server.Mode,
		DB:           db,
		Redis:        cache,
		Storage:      storage,
		AvatarBucket: cfg.MinIO.AvatarBucket,
		Encrypter:    encrypter.New(cfg.Encrypter.Key),
		ScopeManager: manager,
		Discord:      reporter,
	})
	if err != nil {
		l.Fatalf(ctx, "main: init http server: %v", err)
	}

	if err := srv.Run(); err != nil {
		l.Fatalf(ctx, "main: run http server: %v", err)
	}
}
