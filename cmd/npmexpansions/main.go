// Command npmexpansions bootstraps the server: loads the two file-backed
// models, wires the router, starts the background updater and the worker
// pool, then accepts connections and hands them off for service.
package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/yourusername/npm-expansions/internal/applog"
	"github.com/yourusername/npm-expansions/internal/config"
	"github.com/yourusername/npm-expansions/internal/conn"
	"github.com/yourusername/npm-expansions/internal/expansions"
	"github.com/yourusername/npm-expansions/internal/history"
	"github.com/yourusername/npm-expansions/internal/router"
	"github.com/yourusername/npm-expansions/internal/updater"
	"github.com/yourusername/npm-expansions/internal/upstream"
	"github.com/yourusername/npm-expansions/internal/workerpool"
)

func main() {
	cfg := config.FromEnv()
	logger := applog.Default()

	expansionsStore, err := expansions.Load(cfg.ExpansionsFile)
	if err != nil {
		log.Fatalf("npmexpansions: loading %s: %v", cfg.ExpansionsFile, err)
	}

	historyStore, err := history.Load(cfg.HistoryFile)
	if err != nil {
		log.Fatalf("npmexpansions: loading %s: %v", cfg.HistoryFile, err)
	}

	client := upstream.NewClient(cfg.GithubRepoBase, cfg.GithubUserAgent)
	harvester := upstream.NewHarvester(client)
	up := updater.New(expansionsStore, historyStore, harvester, cfg.UpdaterInterval, logger)

	stopUpdater := make(chan struct{})
	go up.Run(stopUpdater)

	pool := workerpool.New(cfg.ThreadCount)
	handler := conn.New(router.New(expansionsStore), logger)

	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		log.Fatalf("npmexpansions: listen on %s: %v", cfg.Addr, err)
	}
	log.Printf("npmexpansions: listening on %s", cfg.Addr)

	var wg sync.WaitGroup
	go conn.AcceptLoop(listener, func(c net.Conn) {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			handler.Serve(c)
		})
	})

	waitForShutdown()

	close(stopUpdater)
	listener.Close()
	wg.Wait()
	pool.Close()
}

// waitForShutdown blocks until the process receives SIGINT or SIGTERM.
func waitForShutdown() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	<-ctx.Done()
}
