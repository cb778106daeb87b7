package test

import (
	"fedi_relay/shared"
	"fedi_relay/test/mocks"

	"go.uber.org/mock/gomock"
)

// Shared fixtures for the harness tests in this package. Timing knobs are
// zeroed so retry loops and domain pauses run without waiting.
func newTestConfig() *shared.Config {
	return &shared.Config{
		Host: "relay.example",
		Delivery: shared.DeliveryConfig{
			MaxAttempts:      20,
			RetryIntervalSec: 0,
			DomainPauseSec:   0,
			MaxParallelSends: 1000,
			OutRatePerSec:    1000,
			ProbeTimeoutSec:  1,
		},
		Boosts: shared.BoostConfig{
			FreshnessWindowDays: 90,
		},
		Account: &shared.UserInfo{User: "birb"},
	}
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockILogger {
	logger := mocks.NewMockILogger(ctrl)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
	return logger
}

func quietMetrics(ctrl *gomock.Controller) *mocks.MockIMetrics {
	observer := mocks.NewMockIRequestObserver(ctrl)
	observer.EXPECT().Finish().AnyTimes()
	metrics := mocks.NewMockIMetrics(ctrl)
	metrics.EXPECT().StartApubRequestIn(gomock.Any()).Return(observer).AnyTimes()
	metrics.EXPECT().StartApubRequestOut(gomock.Any()).Return(observer).AnyTimes()
	metrics.EXPECT().DeliveryAttempted().AnyTimes()
	metrics.EXPECT().DeliverySucceeded().AnyTimes()
	metrics.EXPECT().DeliveryGivenUp().AnyTimes()
	metrics.EXPECT().TargetSkipped(gomock.Any()).AnyTimes()
	metrics.EXPECT().FanoutTargets(gomock.Any()).AnyTimes()
	metrics.EXPECT().BoostAccepted().AnyTimes()
	metrics.EXPECT().BoostRejected().AnyTimes()
	metrics.EXPECT().BoostCacheHit().AnyTimes()
	metrics.EXPECT().ServiceStarted().AnyTimes()
	metrics.EXPECT().TotalFollowers(gomock.Any()).AnyTimes()
	metrics.EXPECT().ParallelSends(gomock.Any()).AnyTimes()
	return metrics
}
