package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ElmaazouziSara/song-stream-daily/internal/loader"
	"github.com/ElmaazouziSara/song-stream-daily/internal/metrics"
	"github.com/ElmaazouziSara/song-stream-daily/internal/orchestrator"
	"github.com/ElmaazouziSara/song-stream-daily/pkg/config/provider"
	"github.com/ElmaazouziSara/song-stream-daily/pkg/logs"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the configuration file")
	dateArg := flag.String("date", "", "date to process as YYYYMMDD (default: today)")
	fromArg := flag.String("from", "", "start of a date range as YYYYMMDD (requires -to)")
	toArg := flag.String("to", "", "end of a date range as YYYYMMDD (requires -from)")
	daily := flag.Bool("daily", false, "run once per day indefinitely instead of a single run")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := provider.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config %s: %s\n", *configPath, err.Error())
		os.Exit(1)
	}

	if err = logs.Init(cfg.String("log-level", "INFO")); err != nil {
		fmt.Printf("Failed to initialize logger: %s\n", err.Error())
		os.Exit(1)
	}

	var m *metrics.ChartsMetrics
	if *daily {
		m = metrics.NewChartsMetrics()
		metrics.Serve(cfg.String("metrics-addr", ":9464"))
	}

	o, err := orchestrator.New(cfg, m)
	if err != nil {
		logs.Logger.Criticalf("Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	if *daily {
		o.RunDaily()
		o.Close()
		return
	}

	if *fromArg != "" || *toArg != "" {
		from, errFrom := time.Parse(loader.DateLayout, *fromArg)
		to, errTo := time.Parse(loader.DateLayout, *toArg)
		if errFrom != nil || errTo != nil {
			logs.Logger.Criticalf("Invalid range %q..%q, want -from and -to as YYYYMMDD", *fromArg, *toArg)
			o.Close()
			os.Exit(1)
		}
		if err = o.RunRange(from, to); err != nil {
			logs.Logger.Errorf("range run %s..%s failed: %v", *fromArg, *toArg, err)
			o.Close()
			os.Exit(1)
		}
		o.Close()
		return
	}

	date := time.Now()
	if *dateArg != "" {
		date, err = time.Parse(loader.DateLayout, *dateArg)
		if err != nil {
			logs.Logger.Criticalf("Invalid -date %q, want YYYYMMDD: %v", *dateArg, err)
			o.Close()
			os.Exit(1)
		}
	}

	if err = o.RunDate(date); err != nil {
		logs.Logger.Errorf("run for %s failed: %v", date.Format(loader.DateLayout), err)
		o.Close()
		os.Exit(1)
	}
	o.Close()
}
