// Command fxcli fetches recent candlestick data from the OANDA v20
// API for one or more instruments.
//
// Usage:
//
//	fxcli --instruments EUR_USD,USD_JPY --granularity H4 --count 10
//	fxcli --config config.yaml --instruments EUR_USD
//
// Without --config, connection settings come from the environment:
// OANDA_HOST and OANDA_KEY are required, OANDA_ACCOUNT and
// OANDA_TIMEOUT are optional. A .env file in the working directory is
// picked up automatically.
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	oanda "github.com/vadiminshakov/go-oanda"
	"github.com/vadiminshakov/go-oanda/config"
	"github.com/vadiminshakov/go-oanda/entity"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config (environment is used when empty)")
	instruments := flag.String("instruments", "EUR_USD", "comma-separated instrument names, example: EUR_USD,USD_JPY")
	granularity := flag.String("granularity", "H1", "candle granularity, example: M5, H1, D")
	count := flag.Int("count", 10, "number of candles to fetch per instrument")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	client := cfg.Client(oanda.WithLogger(logger))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range strings.Split(*instruments, ",") {
		name := strings.TrimSpace(name)
		if _, err := entity.ParsePair(name); err != nil {
			logger.Fatal("invalid instrument", zap.String("instrument", name), zap.Error(err))
		}

		g.Go(func() error {
			resp, err := client.GetCandles(ctx, oanda.CandlesRequest{
				Instrument:  name,
				Granularity: entity.Granularity(*granularity),
				Count:       *count,
			})
			if err != nil {
				return err
			}

			for _, candle := range resp.Candles {
				if candle.Mid == nil {
					continue
				}
				fmt.Printf("%s %s o=%s h=%s l=%s c=%s volume=%d\n",
					resp.Instrument,
					candle.Time.UTC().Format(time.RFC3339),
					candle.Mid.Open, candle.Mid.High, candle.Mid.Low, candle.Mid.Close,
					candle.Volume)
			}

			logger.Info("fetched candles",
				zap.String("instrument", resp.Instrument),
				zap.Int("count", len(resp.Candles)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Fatal("failed to fetch candles", zap.Error(err))
	}
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.FromYaml(path)
	}
	return config.FromEnv()
}
