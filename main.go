package main

import (
	"fmt"
	"log"

	"github.com/sagayev/mortlib/calendar"
	"github.com/sagayev/mortlib/mortgage"
	"github.com/sagayev/mortlib/schedule"
	"github.com/sagayev/mortlib/utils"
)

func main() {
	m, err := mortgage.New(mortgage.Params{
		StartDate:    utils.DateParser("2025-01-01"),
		EndDate:      utils.DateParser("2026-01-01"),
		Principal:    120000,
		Frequency:    schedule.Monthly,
		Calendar:     calendar.Weekend,
		BusDayAdjust: calendar.Following,
		DateGenRule:  schedule.Backward,
	})
	if err != nil {
		log.Fatal(err)
	}

	payment, err := m.RepaymentAmount(0.05)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Level payment: %.2f\n", payment)

	fv, err := m.GenerateFlows(0.05, mortgage.Repayment)
	if err != nil {
		log.Fatal(err)
	}

	table, err := mortgage.Table(m, fv)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(table)
}
