package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"javabite-client/internal/api"
	"javabite-client/internal/config"
	"javabite-client/internal/dashboard"
	"javabite-client/internal/domain"
	"javabite-client/internal/session"
)

// Demo harness for the JavaBite client: logs in with the given credentials and
// runs the role-appropriate dashboard poller until interrupted.
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	flag.Parse()

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	tokens := session.TokenStore(session.NewMemoryTokenStore())
	if cfg.RedisAddr != "" {
		redisClient := config.MustInitRedis(cfg.RedisAddr)
		defer redisClient.Close()
		tokens = session.NewRedisTokenStore(redisClient, cfg.TokenKey, cfg.TokenTTL)
	}

	client := api.New(cfg.BaseURL,
		api.WithTokenSource(session.Source{Store: tokens}),
		api.WithLogger(log),
	)
	sessions := session.New(client, tokens)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sessions.Restore(ctx); err != nil {
		log.WithError(err).Warn("session restore failed")
	}

	if !sessions.IsAuthenticated() {
		if *email == "" || *password == "" {
			log.Fatal("not authenticated; pass -email and -password")
		}
		if _, err := sessions.Login(ctx, *email, *password); err != nil {
			log.WithError(err).Fatal("login failed")
		}
	}

	user := sessions.Current()
	log.WithFields(logrus.Fields{"user": user.Email, "role": user.Role}).Info("logged in")

	switch user.Role {
	case domain.RoleChef:
		d := dashboard.NewChef(client)
		d.Mount(ctx)
		defer d.Unmount()
	case domain.RoleWaiter:
		d := dashboard.NewWaiter(client)
		d.Mount(ctx)
		defer d.Unmount()
	case domain.RoleAdmin:
		d := dashboard.NewAdmin(client)
		d.Mount(ctx)
		defer d.Unmount()
	default:
		log.Info("customer account; no dashboard to poll")
	}

	<-ctx.Done()
	log.Info("shutting down")

	if err := sessions.Logout(context.Background()); err != nil {
		log.WithError(err).Warn("logout failed")
	}
}
