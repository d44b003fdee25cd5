// Command orderdemo runs the headless ordering client against a
// FoodExpress API: it signs in, fills a cart from the live menu,
// fetches a delivery estimate and simulates payment. Session state
// persists in a JSON file between runs, the way the browser frontend
// kept it in localStorage.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/foodexpress/foodexpress-backend/internal/client/cart"
	"github.com/foodexpress/foodexpress-backend/internal/client/checkout"
	"github.com/foodexpress/foodexpress-backend/internal/client/foodapi"
	"github.com/foodexpress/foodexpress-backend/internal/client/session"
	"github.com/foodexpress/foodexpress-backend/pkg/config"
	"github.com/foodexpress/foodexpress-backend/pkg/kvstore"
	"github.com/foodexpress/foodexpress-backend/pkg/logger"
	pkgredis "github.com/foodexpress/foodexpress-backend/pkg/redis"
)

func main() {
	decimal.MarshalJSONWithoutQuotes = true

	logg := logger.New(logger.Options{ServiceName: "orderdemo"})

	_ = godotenv.Load()

	email := flag.String("email", "demo@foodexpress.local", "account email")
	location := flag.String("location", "Bengaluru 560001", "delivery location")
	dishes := flag.String("dishes", "", "comma-separated dish names (default: first two menu items)")
	flag.Parse()

	cfg, err := config.LoadClient()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	statePath := cfg.Client.StatePath
	if statePath == "" {
		statePath = filepath.Join(os.TempDir(), "foodexpress-client.json")
	}

	ctx := logg.WithFields(context.Background(), map[string]any{
		"api":   cfg.Client.APIBaseURL,
		"state": statePath,
	})

	api := foodapi.NewClient(cfg.Client.APIBaseURL, foodapi.WithTimeout(cfg.Client.Timeout))
	cartStore := cart.NewStore()
	sessionStore := session.NewStore(stateStore(ctx, cfg, statePath, *email, logg))

	flow, err := checkout.NewFlow(cartStore, sessionStore, api, api, checkout.NavigatorFunc(func(page string) {
		fmt.Println("-> navigating to", page)
	}))
	if err != nil {
		logg.Error(ctx, "failed to wire checkout flow", err)
		os.Exit(1)
	}

	identity, err := sessionStore.Login(ctx, *email, "demo")
	if err != nil {
		logg.Error(ctx, "login failed", err)
		os.Exit(1)
	}
	fmt.Printf("signed in as %s <%s>\n", identity.Name, identity.Email)

	items, err := api.Menu(ctx)
	if err != nil {
		logg.Error(ctx, "failed to fetch menu", err)
		os.Exit(1)
	}
	if len(items) == 0 {
		fmt.Println("menu is empty, nothing to order")
		return
	}

	wanted := pickDishes(items, *dishes)
	for _, item := range wanted {
		if _, err := cartStore.Add(item.Name, item.Price); err != nil {
			logg.Error(ctx, "failed to add dish", err)
			os.Exit(1)
		}
		fmt.Printf("added %s (%s)\n", item.Name, item.Price)
	}

	estimate, err := flow.RequestEstimate(ctx, *location)
	if err != nil {
		logg.Error(ctx, "failed to estimate delivery", err)
		os.Exit(1)
	}
	fmt.Printf("delivery to %s in about %d minutes\n", estimate.Label, estimate.EtaMinutes)

	record, err := flow.ProceedToPay(ctx)
	if err != nil {
		logg.Error(ctx, "payment failed", err)
		os.Exit(1)
	}
	fmt.Printf("order %s placed with %d line(s), total %s\n", record.ID, len(record.Items), cartStore.Total())

	history := sessionStore.Orders(ctx)
	fmt.Printf("order history (%d):\n", len(history))
	for _, past := range history {
		fmt.Printf("  %s at %s\n", past.ID, past.When.Format("2006-01-02 15:04"))
	}
}

// stateStore keeps session state in redis when one is configured,
// namespaced by account email, and falls back to a local JSON file.
func stateStore(ctx context.Context, cfg *config.Config, statePath, profile string, logg *logger.Logger) kvstore.Store {
	if cfg.Redis.Enabled() {
		client, err := pkgredis.New(ctx, cfg.Redis, logg)
		if err == nil {
			return kvstore.NewRedis(client, profile)
		}
		logg.Warn(logg.WithField(ctx, "error", err.Error()), "redis unavailable, keeping state on disk")
	}
	return kvstore.NewFile(statePath)
}

// pickDishes resolves the requested dish names against the menu, or
// defaults to the first two items.
func pickDishes(items []foodapi.MenuItem, requested string) []foodapi.MenuItem {
	if strings.TrimSpace(requested) == "" {
		if len(items) > 2 {
			return items[:2]
		}
		return items
	}

	byName := make(map[string]foodapi.MenuItem, len(items))
	for _, item := range items {
		byName[strings.ToLower(item.Name)] = item
	}

	var picked []foodapi.MenuItem
	for _, name := range strings.Split(requested, ",") {
		if item, ok := byName[strings.ToLower(strings.TrimSpace(name))]; ok {
			picked = append(picked, item)
		} else {
			fmt.Printf("dish %q not on the menu, skipping\n", strings.TrimSpace(name))
		}
	}
	return picked
}
