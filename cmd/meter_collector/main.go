// Meter collector follows the interpreter API and logs every reading it broadcasts.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/NotCoffee418/dsmr_parser/pkg/config"
	"github.com/NotCoffee418/dsmr_parser/pkg/interpreter"
	"github.com/NotCoffee418/dsmr_parser/pkg/types"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.LoadMeterCollectorConfig(); err != nil {
		logrus.WithError(err).Fatal("Failed to load meter collector config")
	}
	cfg := config.ActiveMeterCollectorConfig

	// INTERPRETER_API_HOST overrides the configured host:port
	host := os.Getenv("INTERPRETER_API_HOST")
	if host == "" {
		host = cfg.InterpreterAPIHost
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	u := interpreter.ListenerURL(host, cfg.TLSEnabled)
	if err := interpreter.StartListener(ctx, u, handleMeterReading); err != nil {
		logrus.WithError(err).Fatal("Lost the interpreter API")
	}
}

func handleMeterReading(reading *types.MeterReading) {
	logrus.WithFields(logrus.Fields{
		"timestamp":      reading.Timestamp,
		"consumption_kw": reading.CurrentConsumptionKW,
		"production_kw":  reading.CurrentProductionKW,
		"net_power_w":    reading.NetPowerW,
		"tariff":         reading.CurrentTariff,
		"gas_m3":         reading.GasConsumptionM3,
	}).Info("Meter reading")
}
