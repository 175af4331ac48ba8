// Copyright (c) 2025 The Stakeward developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/inconshreveable/log15"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/stakeward/stakeward/api"
	"github.com/stakeward/stakeward/genesis"
	"github.com/stakeward/stakeward/metrics"
	"github.com/stakeward/stakeward/vault"
)

var (
	version   string
	gitCommit string
	gitTag    string
	log       = log15.New()
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "Stakeward",
		Usage:     "Staking vault with accumulator-per-share reward distribution",
		Copyright: "2025 Stakeward",
		Flags: []cli.Flag{
			genesisFlag,
			apiAddrFlag,
			apiCorsFlag,
			apiTimeoutFlag,
			verbosityFlag,
			enableMetricsFlag,
			metricsAddrFlag,
		},
		Action: defaultAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	defer func() { log.Info("exited") }()

	initLogger(ctx)
	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		if addr := ctx.String(metricsAddrFlag.Name); addr != "" {
			srv, err := startMetricsServer(addr)
			if err != nil {
				return err
			}
			defer func() { log.Info("stopping metrics server..."); srv.Close() }()
		}
	}

	gene, err := loadGenesis(ctx)
	if err != nil {
		return err
	}
	v, principal, reward, err := gene.Build()
	if err != nil {
		return err
	}

	handler, closeAPI := api.New(v, api.Options{
		AllowedOrigins: ctx.String(apiCorsFlag.Name),
		EnableMetrics:  ctx.Bool(enableMetricsFlag.Name),
	})
	defer func() { log.Info("closing API..."); closeAPI() }()

	srv, apiURL, err := startAPIServer(ctx, handler)
	if err != nil {
		return err
	}
	defer func() { log.Info("stopping API server..."); srv.Close() }()

	printStartupMessage(v, principal.Symbol(), reward.Symbol(), apiURL)

	<-handleExitSignal()
	return nil
}

func initLogger(ctx *cli.Context) {
	logLevel := ctx.Int(verbosityFlag.Name)
	log15.Root().SetHandler(log15.LvlFilterHandler(log15.Lvl(logLevel), log15.StderrHandler))
}

func loadGenesis(ctx *cli.Context) (*genesis.Genesis, error) {
	path := ctx.String(genesisFlag.Name)
	if path == "" {
		return nil, fmt.Errorf("--%s is required", genesisFlag.Name)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return genesis.Load(file)
}

func startAPIServer(ctx *cli.Context, handler http.HandlerFunc) (*http.Server, string, error) {
	addr := ctx.String(apiAddrFlag.Name)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", fmt.Errorf("listen API addr [%v]: %v", addr, err)
	}
	timeout := ctx.Int(apiTimeoutFlag.Name)
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       time.Duration(timeout) * time.Millisecond,
		ReadHeaderTimeout: time.Duration(timeout) * time.Millisecond,
		WriteTimeout:      time.Duration(timeout) * time.Millisecond,
	}
	go func() {
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			log.Error("API server stopped", "err", err)
		}
	}()
	return srv, "http://" + listener.Addr().String() + "/", nil
}

func startMetricsServer(addr string) (*http.Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics addr [%v]: %v", addr, err)
	}
	router := mux.NewRouter()
	router.PathPrefix("/metrics").Handler(metrics.HTTPHandler())
	srv := &http.Server{Handler: router}
	go func() {
		if err := srv.Serve(listener); err != http.ErrServerClosed {
			log.Error("metrics server stopped", "err", err)
		}
	}()
	return srv, nil
}

func printStartupMessage(v *vault.Vault, principalSymbol, rewardSymbol, apiURL string) {
	fmt.Printf(`Starting %v
    Assets     [ principal %v, reward %v ]
    Admin      [ %v ]
    API portal [ %v ]
`,
		"Stakeward "+fullVersion(),
		principalSymbol,
		rewardSymbol,
		v.Admin(),
		apiURL,
	)
}

func handleExitSignal() chan os.Signal {
	exit := make(chan os.Signal, 1)
	signal.Notify(exit, os.Interrupt, syscall.SIGTERM)
	return exit
}
