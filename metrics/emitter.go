package metrics // import "github.com/brewgate/brewgate/metrics"

import (
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cloudfoundry/dropsonde"
	dropsondemetrics "github.com/cloudfoundry/dropsonde/metrics"
)

const dropsondeOrigin = "brewgate"

// Emitter reports verb durations to a metron agent. With no endpoint
// configured every emission is a no-op.
type Emitter struct {
	enabled bool
}

func NewEmitter(metronEndpoint string) (*Emitter, error) {
	if metronEndpoint == "" {
		return &Emitter{}, nil
	}

	if err := dropsonde.Initialize(metronEndpoint, dropsondeOrigin); err != nil {
		return nil, err
	}

	return &Emitter{enabled: true}, nil
}

func (e *Emitter) TryEmitDuration(logger lager.Logger, name string, duration time.Duration) {
	if !e.enabled {
		return
	}

	if err := dropsondemetrics.SendValue(name, float64(duration), "nanos"); err != nil {
		logger.Error("failed-to-emit-metric", err, lager.Data{"name": name})
	}
}
