package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callcenter-planner/config"
	"callcenter-planner/editor"
	"callcenter-planner/formatter"
	"callcenter-planner/logger"
	"callcenter-planner/metrics"
	"callcenter-planner/parser"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Define flags; defaults come from the environment
	input := flag.String("input", "", "Input CSV file with caller groups (required)")
	total := flag.Float64("total", 0, "Total number of calls to distribute over the day")
	format := flag.String("format", cfg.Format, "Output format: text|json|csv")
	copyName := flag.String("copy", "", "Duplicate the named group before redistributing")
	metricsAddr := flag.String("metrics-addr", cfg.MetricsAddr, "Address to expose Prometheus metrics (e.g., :9090)")
	pushGateway := flag.String("push-url", cfg.PushURL, "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
	wait := flag.Bool("wait", false, "Keep process running after completion to allow for metric scraping")

	// Parse command-line flags
	flag.Parse()

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("service", "callcenter-planner")),
	)

	// Start metrics server if address provided
	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			log.Info("metrics server listening", slog.String("addr", *metricsAddr))
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				log.Error("metrics server error", slog.String("error", err.Error()))
			}
		}()
	}

	// Validate required input flag
	if *input == "" {
		fmt.Println("Error: -input flag is required")
		fmt.Println("\nUsage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := config.ValidateFormat(*format); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *total < 0 {
		fmt.Println("Error: total must not be negative")
		os.Exit(1)
	}

	// Open input file
	file, err := os.Open(*input)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	groups, err := parser.Parse(file)
	if err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	session := editor.NewSession(log, groups...)

	if *copyName != "" {
		dup, err := session.DuplicateGroup(*copyName)
		if err != nil {
			fmt.Printf("Error copying group: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Copied %q as %q\n", *copyName, dup.Name)
	}

	dist, err := session.Redistribute(*total)
	if err != nil {
		fmt.Printf("Error redistributing calls: %v\n", err)
		os.Exit(1)
	}

	// Output based on format
	switch *format {
	case "json":
		out, err := formatter.FormatJSON(dist)
		if err != nil {
			fmt.Printf("Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	case "csv":
		fmt.Print(formatter.FormatCSV(dist))
	default: // "text"
		fmt.Print(formatter.FormatText(dist))
	}

	// Handle metrics pushing or waiting
	if *pushGateway != "" {
		if err := push.New(*pushGateway, cfg.PushJob).Gatherer(metrics.Registry).Push(); err != nil {
			log.Error("pushing to Pushgateway failed", slog.String("error", err.Error()))
		} else {
			log.Info("metrics pushed to Pushgateway", slog.String("url", *pushGateway))
		}
	}

	if *wait && *metricsAddr != "" {
		log.Info("process kept alive for metric scraping, press Ctrl+C to exit")
		// Wait for interrupt signal
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		log.Info("exiting")
	} else if *metricsAddr != "" && *pushGateway == "" {
		// Small delay to allow a final scrape when not waiting explicitly
		time.Sleep(100 * time.Millisecond)
	}
}
