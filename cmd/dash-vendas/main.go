package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/FernandoGuns/Dash-Vendas/internal/config"
	"github.com/FernandoGuns/Dash-Vendas/internal/fact"
	"github.com/FernandoGuns/Dash-Vendas/internal/parser"
	"github.com/FernandoGuns/Dash-Vendas/internal/server"
	"github.com/FernandoGuns/Dash-Vendas/internal/util"
)

var (
	port    = flag.Int("port", 0, "listen port (config.toml wins when it sets one)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config)")
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Dash Vendas - sales dashboard")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadWithInfo()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.Default()
		info = config.LoadInfo{}
	}

	// Flags fill the gaps the config file left open.
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}
	fmt.Printf("data directory: %s\n", dir)

	// Load, normalize and join everything up front. Any failure here is
	// fatal: the process must not serve a partially-built fact table.
	sales, customers, products, stores := config.SourcePaths(cfg)
	raw, err := parser.LoadSources(parser.SourcePaths{
		Sales:     sales,
		Customers: customers,
		Products:  products,
		Stores:    stores,
	})
	if err != nil {
		log.Fatalf("failed to load sources: %v", err)
	}

	snap, err := fact.FromRaw(raw)
	if err != nil {
		log.Fatalf("failed to build fact table: %v", err)
	}
	fmt.Printf("fact table ready: %d rows (%d customers, %d products, %d stores)\n",
		len(snap.Rows), snap.CustomerCount, snap.ProductCount, snap.StoreCount)

	srv := server.New(cfg, snap)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	url := fmt.Sprintf("http://%s", addr)

	go func() {
		fmt.Printf("listening on %s ...\n", addr)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("could not open a browser, visit %s manually\n", url)
		}
	} else {
		fmt.Printf("dev mode: visit %s\n", url)
	}

	fmt.Println("\npress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nshutting down...")
}
