package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AzielCF/wa-cloud-bridge/config"
	"github.com/AzielCF/wa-cloud-bridge/infrastructure/meta"
	"github.com/AzielCF/wa-cloud-bridge/pkg/alert"
	"github.com/AzielCF/wa-cloud-bridge/pkg/dedupe"
	"github.com/AzielCF/wa-cloud-bridge/pkg/msgworker"
	"github.com/AzielCF/wa-cloud-bridge/ui/rest"
	"github.com/AzielCF/wa-cloud-bridge/ui/rest/middleware"
	"github.com/AzielCF/wa-cloud-bridge/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var restCmd = &cobra.Command{
	Use:   "rest",
	Short: "Serve the webhook relay over HTTP",
	Run:   restServer,
}

func init() {
	rootCmd.AddCommand(restCmd)
}

func restServer(_ *cobra.Command, _ []string) {
	fiberConfig := fiber.Config{
		Network:               "tcp",
		AppName:               "WA Cloud Bridge " + config.Global.App.Version,
		DisableStartupMessage: false,
		ServerHeader:          "Hidden",
	}
	if len(config.Global.App.TrustedProxies) > 0 {
		fiberConfig.EnableTrustedProxyCheck = true
		fiberConfig.TrustedProxies = config.Global.App.TrustedProxies
		fiberConfig.ProxyHeader = fiber.HeaderXForwardedHost
	}

	app := fiber.New(fiberConfig)
	app.Use(requestid.New())
	app.Use(middleware.Recovery())
	if config.Global.App.Debug {
		app.Use(logger.New())
	}

	client := meta.NewClient()
	sendService := usecase.NewSendService(client)
	chatService := usecase.NewChatService()

	registry := dedupe.NewRegistry(config.Global.Dedupe.Window)

	var notifier *alert.Notifier
	if config.Global.Alert.Enabled {
		notifier = alert.NewNotifier(config.Global.Alert.Interval)
		logrus.Infof("[APP] error alerts enabled for %s", config.Global.Alert.AdminEmail)
	}

	processor := usecase.NewProcessor(chatService, sendService, registry, notifier)

	pool := msgworker.NewPool(config.Global.Worker.PoolSize, config.Global.Worker.QueueSize)
	poolCtx, poolCancel := context.WithCancel(context.Background())
	defer poolCancel()
	pool.Start(poolCtx)

	group := app.Group(config.Global.App.BasePath)
	rest.InitRestWebhook(group, processor, pool)
	rest.InitRestChat(group, chatService)
	rest.InitRestSend(group, sendService)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logrus.Info("[REST] termination signal received, shutting down gracefully...")
		if err := app.Shutdown(); err != nil {
			logrus.Errorf("[REST] error during shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + config.Global.App.Port); err != nil {
		logrus.Fatalln("Failed to start: ", err.Error())
	}

	// Listen returned: server is down, drain in-flight webhook work.
	if !pool.StopWithTimeout(30 * time.Second) {
		logrus.Warn("[REST] worker pool did not drain before timeout")
	}
	registry.Stop()

	stats := pool.Stats()
	logrus.Infof("[REST] pool processed=%d errors=%d dropped=%d", stats.TotalProcessed, stats.TotalErrors, stats.TotalDropped)
}
