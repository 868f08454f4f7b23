package metrics

import (
	"errors"
	"sync"
	"time"

	"github.com/NotCoffee418/dsmr_parser/pkg/crc"
	"github.com/NotCoffee418/dsmr_parser/pkg/dsmr"
	"github.com/NotCoffee418/dsmr_parser/pkg/obis"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "esm_"

	ResultSuccess = "success"
	ResultError   = "error"

	ReasonChecksum = "checksum"
	ReasonFormat   = "format"
	ReasonObisID   = "obis_id"
	ReasonRead     = "read"
	ReasonUnknown  = "unknown"
)

var (
	registerOnce sync.Once

	telegramsTotal   *prometheus.CounterVec
	telegramErrors   *prometheus.CounterVec
	telegramLatency  *prometheus.HistogramVec
	websocketClients prometheus.Gauge
	lastTelegramTime prometheus.Gauge
)

// Init registers the collector metrics with the default registry.
func Init() {
	registerOnce.Do(func() {
		telegramsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "telegrams_total",
				Help: "Total telegrams read from the P1 port by result",
			},
			[]string{"result"},
		)
		telegramErrors = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "telegram_errors_total",
				Help: "Total rejected telegrams by reason",
			},
			[]string{"reason"},
		)
		telegramLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "telegram_parse_seconds",
				Help:    "Telegram parse duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"result"},
		)
		websocketClients = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "websocket_clients",
				Help: "Connected websocket clients",
			},
		)
		lastTelegramTime = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "last_telegram_timestamp_seconds",
				Help: "Unix time of the last accepted telegram",
			},
		)

		prometheus.MustRegister(
			telegramsTotal,
			telegramErrors,
			telegramLatency,
			websocketClients,
			lastTelegramTime,
		)
	})
}

// ObserveTelegram records the outcome of one telegram read. A nil err counts as success.
func ObserveTelegram(err error, duration time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
		if telegramErrors != nil {
			telegramErrors.WithLabelValues(Reason(err)).Inc()
		}
	} else if lastTelegramTime != nil {
		lastTelegramTime.SetToCurrentTime()
	}
	if telegramsTotal != nil {
		telegramsTotal.WithLabelValues(result).Inc()
	}
	if telegramLatency != nil {
		telegramLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// SetWebsocketClients sets the connected client gauge.
func SetWebsocketClients(n int) {
	if n < 0 {
		n = 0
	}
	if websocketClients != nil {
		websocketClients.Set(float64(n))
	}
}

// Reason maps a parse error to its metric label.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crc.ErrChecksum):
		return ReasonChecksum
	case errors.Is(err, obis.ErrInvalidID):
		return ReasonObisID
	case errors.Is(err, dsmr.ErrInvalidFormat):
		return ReasonFormat
	case errors.Is(err, ErrRead):
		return ReasonRead
	default:
		return ReasonUnknown
	}
}

// ErrRead marks transport failures so they are counted apart from parse errors.
var ErrRead = errors.New("telegram read failed")
