package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"fedi_relay/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks fedi_relay/logic IMetrics,IRequestObserver

type IMetrics interface {
	StartApubRequestIn(label string) IRequestObserver
	StartApubRequestOut(label string) IRequestObserver
	DeliveryAttempted()
	DeliverySucceeded()
	DeliveryGivenUp()
	TargetSkipped(reason string)
	FanoutTargets(count int)
	BoostAccepted()
	BoostRejected()
	BoostCacheHit()
	ServiceStarted()
	TotalFollowers(count int)
	ParallelSends(count int)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg             *shared.Config
	apubRequestsIn  *prometheus.HistogramVec
	apubRequestsOut *prometheus.HistogramVec
	deliveriesTried prometheus.Counter
	deliveriesOk    prometheus.Counter
	deliveriesLost  prometheus.Counter
	targetsSkipped  *prometheus.CounterVec
	fanoutTargets   prometheus.Counter
	boostsAccepted  prometheus.Counter
	boostsRejected  prometheus.Counter
	boostCacheHits  prometheus.Counter
	serviceStarted  prometheus.Counter
	totalFollowers  prometheus.Gauge
	parallelSends   prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.apubRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_in_duration",
		Help: "Duration in seconds of ActivityPub requests served.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsIn)

	res.apubRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "apub_requests_out_duration",
		Help: "Duration in seconds of ActivityPub requests made.",
	}, []string{"label"})
	prometheus.Register(res.apubRequestsOut)

	res.deliveriesTried = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "delivery_attempts",
		Help: "Number of inbox POST attempts made",
	})
	prometheus.Register(res.deliveriesTried)

	res.deliveriesOk = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_succeeded",
		Help: "Number of activities delivered to an inbox",
	})
	prometheus.Register(res.deliveriesOk)

	res.deliveriesLost = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deliveries_given_up",
		Help: "Number of deliveries abandoned after retries were exhausted",
	})
	prometheus.Register(res.deliveriesLost)

	res.targetsSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fanout_targets_skipped",
		Help: "Number of fan-out targets skipped, by reason",
	}, []string{"reason"})
	prometheus.Register(res.targetsSkipped)

	res.fanoutTargets = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fanout_targets_scheduled",
		Help: "Number of delivery targets scheduled by fan-out",
	})
	prometheus.Register(res.fanoutTargets)

	res.boostsAccepted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boosts_accepted",
		Help: "Number of announced posts accepted after validation",
	})
	prometheus.Register(res.boostsAccepted)

	res.boostsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boosts_rejected",
		Help: "Number of announced posts rejected by validation",
	})
	prometheus.Register(res.boostsRejected)

	res.boostCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "boost_cache_hits",
		Help: "Number of announce resolutions served from the verdict cache",
	})
	prometheus.Register(res.boostCacheHits)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.totalFollowers = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "total_follower_count",
		Help: "Total follower count of local accounts",
	})
	prometheus.Register(res.totalFollowers)

	res.parallelSends = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "parallel_sends",
		Help: "Deliveries currently in flight",
	})
	prometheus.Register(res.parallelSends)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartApubRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsIn}
}

func (m *metrics) StartApubRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apubRequestsOut}
}

func (m *metrics) DeliveryAttempted() {
	m.deliveriesTried.Add(1)
}

func (m *metrics) DeliverySucceeded() {
	m.deliveriesOk.Add(1)
}

func (m *metrics) DeliveryGivenUp() {
	m.deliveriesLost.Add(1)
}

func (m *metrics) TargetSkipped(reason string) {
	m.targetsSkipped.WithLabelValues(reason).Add(1)
}

func (m *metrics) FanoutTargets(count int) {
	m.fanoutTargets.Add(float64(count))
}

func (m *metrics) BoostAccepted() {
	m.boostsAccepted.Add(1)
}

func (m *metrics) BoostRejected() {
	m.boostsRejected.Add(1)
}

func (m *metrics) BoostCacheHit() {
	m.boostCacheHits.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) TotalFollowers(count int) {
	m.totalFollowers.Set(float64(count))
}

func (m *metrics) ParallelSends(count int) {
	m.parallelSends.Set(float64(count))
}
