// Package metrics counts what a run of mitab saw, and writes the counts
// in the prometheus text format. The file can be picked up by the
// node_exporter textfile collector after a nightly load.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrew-torda/mitab/pkg/mitab"
)

const namespace = "mitab"

// Metrics has its own registry, so nothing about the go runtime ends
// up in the file.
type Metrics struct {
	reg       *prometheus.Registry
	records   prometheus.Counter
	skipped   prometheus.Counter
	relations *prometheus.CounterVec
	seconds   prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		records: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Records parsed.",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_rows_total",
			Help:      "Bad rows skipped.",
		}),
		relations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interaction_types_total",
			Help:      "Interaction types by relation kind and source database.",
		}, []string{"relation", "source_db"}),
		seconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "read_seconds",
			Help:      "Time spent reading and parsing the last file.",
		}),
	}
	m.reg.MustRegister(m.records, m.skipped, m.relations, m.seconds)
	return m
}

// Observe adds records. A record with no interaction types counts as
// one unclassified.
func (m *Metrics) Observe(recs []mitab.Record) {
	m.records.Add(float64(len(recs)))
	for i := range recs {
		db := recs[i].SourceDatabase
		if recs[i].InteractionTypes.Len() == 0 {
			m.relations.WithLabelValues(mitab.Unclassified.String(), db).Inc()
			continue
		}
		for it := range recs[i].InteractionTypes {
			m.relations.WithLabelValues(mitab.Classify(it).String(), db).Inc()
		}
	}
}

// Skipped counts one bad row. It has the signature of Options.OnSkip.
func (m *Metrics) Skipped(*mitab.RowError) { m.skipped.Inc() }

// ReadTime records how long reading took.
func (m *Metrics) ReadTime(d time.Duration) { m.seconds.Set(d.Seconds()) }

// Gatherer gives access to the registry, mostly for tests.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.reg }

// WriteTextfile writes the counts. The file is written under a
// temporary name and renamed, so a collector never sees half a file.
func (m *Metrics) WriteTextfile(fname string) error {
	return prometheus.WriteToTextfile(fname, m.reg)
}
