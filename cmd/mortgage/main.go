package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/sagayev/mortlib/calendar"
	"github.com/sagayev/mortlib/config"
	"github.com/sagayev/mortlib/marketdata/rates"
	"github.com/sagayev/mortlib/mortgage"
	"github.com/sagayev/mortlib/schedule"
	"github.com/sagayev/mortlib/utils"
)

func main() {
	start := flag.String("start", "", "loan start date (YYYY-MM-DD)")
	end := flag.String("end", "", "loan maturity date (YYYY-MM-DD)")
	principal := flag.Float64("principal", 0, "loan principal")
	rate := flag.Float64("rate", math.NaN(), "annual zero rate as a decimal (e.g. 0.05); looked up from the rates feed if omitted")
	rateDate := flag.String("rate-date", "", "quote date for the rates feed lookup (defaults to the start date)")
	mtype := flag.String("type", string(mortgage.Repayment), "mortgage type: REPAYMENT, INTEREST_ONLY or INTEREST_ONLY_BULLET")
	freq := flag.Int("frequency", 0, "payments per year (1, 2, 4 or 12); config default if omitted")
	cal := flag.String("calendar", "", "holiday calendar; config default if omitted")
	cfgPath := flag.String("config", "mortlib.yaml", "YAML config path")
	jsonOut := flag.Bool("json", false, "emit cashflow rows as JSON instead of the table")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help || *start == "" || *end == "" || *principal == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mortgage -start <date> -end <date> -principal <amount> [-rate <decimal>]")
		fmt.Fprintln(os.Stderr, "Compute a fixed-rate mortgage amortization schedule.")
		if *help {
			flag.PrintDefaults()
			return
		}
		os.Exit(2)
	}

	// .env is optional; it typically carries MORTLIB_RATES_DSN.
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		exitError(fmt.Sprintf("load config: %v", err))
	}
	if *freq == 0 {
		*freq = cfg.Frequency
	}
	if *cal == "" {
		*cal = cfg.Calendar
	}

	zeroRate := *rate
	if math.IsNaN(zeroRate) {
		zeroRate, err = lookupRate(cfg.Rates.DSN, *rateDate, *start)
		if err != nil {
			exitError(err.Error())
		}
	}

	m, err := mortgage.New(mortgage.Params{
		StartDate:    utils.DateParser(*start),
		EndDate:      utils.DateParser(*end),
		Principal:    *principal,
		Frequency:    schedule.Frequency(*freq),
		Calendar:     calendar.ID(*cal),
		BusDayAdjust: calendar.BusDayAdjust(cfg.BusDayAdjust),
		DateGenRule:  schedule.GenRule(cfg.DateGenRule),
		DayCount:     utils.DayCount(cfg.DayCount),
	})
	if err != nil {
		exitError(err.Error())
	}

	fv, err := m.GenerateFlows(zeroRate, mortgage.Type(*mtype))
	if err != nil {
		exitError(err.Error())
	}

	if *jsonOut {
		rows, err := fv.Cashflows()
		if err != nil {
			exitError(err.Error())
		}
		b, _ := json.Marshal(rows)
		fmt.Println(string(b))
		return
	}

	table, err := mortgage.Table(m, fv)
	if err != nil {
		exitError(err.Error())
	}
	fmt.Print(table)
}

// lookupRate resolves the zero rate from the configured Postgres feed.
func lookupRate(dsn, rateDate, start string) (float64, error) {
	if dsn == "" {
		return 0, fmt.Errorf("no -rate given and no rates DSN configured")
	}
	feed, err := rates.OpenPostgres(dsn)
	if err != nil {
		return 0, fmt.Errorf("open rates feed: %v", err)
	}
	defer feed.Close()

	quoteDate := rateDate
	if quoteDate == "" {
		quoteDate = start
	}
	d, err := time.Parse("2006-01-02", quoteDate)
	if err != nil {
		return 0, fmt.Errorf("parse rate date: %v", err)
	}
	r, ok := feed.ZeroRateOn(d)
	if !ok {
		return 0, fmt.Errorf("no zero rate quoted on %s", quoteDate)
	}
	return r, nil
}

func exitError(msg string) {
	fmt.Fprintln(os.Stderr, "error:", msg)
	os.Exit(1)
}
