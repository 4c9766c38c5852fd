package telemetry

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
	ResultFatal = "fatal"
)

// Metrics counts bridge operations by name and outcome.
type Metrics struct {
	ops *prometheus.CounterVec
}

// NewMetrics creates the operation counter and registers it on reg. A nil
// reg leaves the counter unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bnbridge_operations_total",
			Help: "Bridge operations by operation name and result",
		}, []string{"op", "result"}),
	}
	if reg != nil {
		if err := reg.Register(m.ops); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe records one call of op. It is a no-op on a nil receiver.
func (m *Metrics) Observe(op string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.ops.WithLabelValues(op, result).Inc()
}

// ObserveFatal records a contract violation in op.
func (m *Metrics) ObserveFatal(op string) {
	if m == nil {
		return
	}
	m.ops.WithLabelValues(op, ResultFatal).Inc()
}

// Collector exposes the underlying counter vector.
func (m *Metrics) Collector() prometheus.Collector {
	return m.ops
}

// Total is one labelled counter value.
type Total struct {
	Op     string
	Result string
	Count  float64
}

// Totals reads back every counter of the operations family from g, sorted
// by operation then result.
func Totals(g prometheus.Gatherer) ([]Total, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	var out []Total
	for _, mf := range families {
		if mf.GetName() != "bnbridge_operations_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			out = append(out, total(metric))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Op != out[j].Op {
			return out[i].Op < out[j].Op
		}
		return out[i].Result < out[j].Result
	})
	return out, nil
}

func total(metric *dto.Metric) Total {
	t := Total{Count: metric.GetCounter().GetValue()}
	for _, lp := range metric.GetLabel() {
		switch lp.GetName() {
		case "op":
			t.Op = lp.GetValue()
		case "result":
			t.Result = lp.GetValue()
		}
	}
	return t
}
