package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fashionstop/storefront/internal/application/storefront"
	"github.com/fashionstop/storefront/internal/infrastructure/apiclient"
	"github.com/fashionstop/storefront/internal/infrastructure/cartstore"
	"github.com/fashionstop/storefront/internal/infrastructure/config"
	"github.com/fashionstop/storefront/internal/infrastructure/event"
	"github.com/fashionstop/storefront/internal/infrastructure/logger"
	"github.com/fashionstop/storefront/internal/infrastructure/notification"
	"go.uber.org/zap"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	var (
		serverURL string
		logLevel  string
		openLinks bool
	)
	flag.StringVar(&serverURL, "server", "", "Backend base URL (default: client.base_url)")
	flag.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&openLinks, "open", false, "Open order notifications in the browser instead of printing them")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() == 0 {
		printUsage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if serverURL != "" {
		cfg.Client.BaseURL = serverURL
	}

	log, err := logger.New(logger.ClientConfig(logLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api, err := apiclient.New(cfg.Client.BaseURL, cfg.Client.Timeout, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	store, closeStore, err := cartstore.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open cart store: %v\n", err)
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Warn("Error closing cart store", zap.Error(err))
		}
	}()

	// Notifications run after the confirmation is printed; Stop waits for them
	bus := event.NewInMemoryEventBus(log, event.WithAsync())
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), cfg.Notification.Delay+5*time.Second)
		defer cancel()
		if err := bus.Stop(stopCtx); err != nil {
			log.Warn("Pending notifications dropped", zap.Error(err))
		}
	}()
	if cfg.Notification.Enabled {
		printer := notification.NewLinkPrinter(os.Stdout, "Notify the shop on WhatsApp: ")
		var opener storefront.Opener = printer
		if openLinks {
			opener = notification.NewCommandOpener(printer, log)
		}
		bus.Subscribe(storefront.NewWhatsAppNotifier(storefront.NotifierConfig{
			AdminNumber: cfg.Notification.AdminNumber,
			CountryCode: cfg.Notification.CountryCode,
			Delay:       cfg.Notification.Delay,
		}, opener, log))
	}

	cartSvc := storefront.NewCartService(ctx, store, log)
	checkout := storefront.NewCheckout(cartSvc, api, bus, log)
	a := newApp(api, cartSvc, checkout, os.Stdout, log)

	if err := a.run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		if errors.Is(err, errUsage) {
			printUsage()
			return 2
		}
		return 1
	}
	return 0
}

// describeError turns a client error into a message for the shopper
func describeError(err error) string {
	var (
		te *storefront.TransportError
		ve *storefront.ValidationError
	)
	switch {
	case errors.As(err, &te):
		return fmt.Sprintf("%s. Is the server running?", te.Error())
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, storefront.ErrNotLoggedIn):
		return "Admin login required: pass -u and -p"
	default:
		return err.Error()
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `FashionStop terminal storefront

Usage:
  storefront [flags] <command> [args]

Commands:
  products [-brand B] [-featured] [-category C]   Browse the catalog
  cart [show]                                      Show the cart
  cart add|remove|inc|dec <product-id>             Change the cart
  cart clear                                       Empty the cart
  checkout -name N -email E -phone P -address A -city C -pincode Z
                                                   Place a cash-on-delivery order
  admin -u USER -p PASS [dashboard|products|orders]
  admin -u USER -p PASS add-product -name N -brand B -price P -image URL [...]
  admin -u USER -p PASS delete-product <product-id>
  admin -u USER -p PASS set-status <order-id> <status>

Flags:
`)
	flag.PrintDefaults()
}
