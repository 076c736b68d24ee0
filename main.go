package main

import (
	"log"

	"stock-backtest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("stock-backtest: %v", err)
	}
}
