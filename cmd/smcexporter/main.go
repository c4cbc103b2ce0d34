// The smcexporter daemon polls the SMC for temperatures and fan speeds and
// exposes them as Prometheus metrics, with /metrics and /health endpoints.
//
// It needs to run on the machine whose SMC it reads; sensor polling is
// read-only and does not require root.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/beltex/go-smc/iokit"
	"github.com/beltex/go-smc/protocol"
	"github.com/beltex/go-smc/smc"
)

var flagConfig = flag.String("config", "smcexporter.toml", "path to the exporter config file")

var startedAt = time.Now()

func main() {
	flag.Parse()

	logger := initLogger("smcexporter")

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}

	conn, err := iokit.Open()
	if err != nil {
		logger.Fatal().Err(err).Msg("open SMC session")
	}
	defer conn.Close()

	client := smc.New(conn,
		smc.WithLogger(logger),
		smc.WithPreciseSP78(cfg.PreciseSP78),
	)

	registerMetrics()

	// Single poller goroutine: the client must not be shared unserialized.
	go poll(client, cfg, logger)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(startedAt).String(),
			"service": "smcexporter",
		})
	})
	r.GET("/sensors", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"temperature_keys": cfg.TemperatureKeys,
			"numeric_keys":     cfg.NumericKeys,
			"unit":             cfg.Unit.String(),
			"poll_interval":    cfg.PollInterval.String(),
		})
	})

	logger.Info().Str("listen", cfg.Listen).Msg("serving")
	if err := r.Run(cfg.Listen); err != nil {
		logger.Fatal().Err(err).Msg("http server")
	}
}

func initLogger(app string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).With().Timestamp().Str("app", app).Logger()
}

func poll(client *smc.Client, cfg exporterConfig, logger zerolog.Logger) {
	ctx := context.Background()

	scrape(ctx, client, cfg, logger)
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for range ticker.C {
		scrape(ctx, client, cfg, logger)
	}
}

func scrape(ctx context.Context, client *smc.Client, cfg exporterConfig, logger zerolog.Logger) {
	start := time.Now()

	for _, key := range cfg.TemperatureKeys {
		temp, err := client.Temperature(ctx, key, cfg.Unit)
		if err != nil {
			scrapeErrors.WithLabelValues(key).Inc()
			logger.Warn().Err(err).Str("key", key).Msg("temperature read")
			continue
		}
		temperature.WithLabelValues(key, cfg.Unit.String()).Set(temp)
	}

	for _, key := range cfg.NumericKeys {
		r, err := client.Read(ctx, key)
		if err != nil {
			scrapeErrors.WithLabelValues(key).Inc()
			logger.Warn().Err(err).Str("key", key).Msg("numeric read")
			continue
		}
		tag := r.Info.Tag()
		v, err := protocol.DecodeUint(tag, r.Data)
		if err != nil {
			scrapeErrors.WithLabelValues(key).Inc()
			logger.Warn().Err(err).Str("key", key).Str("type", tag).Msg("numeric decode")
			continue
		}
		numericValue.WithLabelValues(key, strings.TrimRight(tag, " ")).Set(float64(v))
	}

	n, err := client.FanCount(ctx)
	if err != nil {
		scrapeErrors.WithLabelValues("FNum").Inc()
		logger.Warn().Err(err).Msg("fan count read")
	} else {
		fanCount.Set(float64(n))
		for fan := 0; fan < n && fan <= smc.MaxFanIndex; fan++ {
			rpm, err := client.FanRPM(ctx, uint(fan))
			if err != nil {
				scrapeErrors.WithLabelValues(fanRPMKey(fan)).Inc()
				logger.Warn().Err(err).Int("fan", fan).Msg("fan rpm read")
				continue
			}
			fanRPM.WithLabelValues(fanLabel(fan)).Set(float64(rpm))
		}
	}

	scrapeDuration.Observe(time.Since(start).Seconds())
}
