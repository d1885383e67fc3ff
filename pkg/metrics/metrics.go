package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Site holds the application counters. A nil *Site is valid and records nothing.
type Site struct {
	registry *prometheus.Registry
	uploads  *prometheus.CounterVec
	deletes  *prometheus.CounterVec
	contact  *prometheus.CounterVec
	orphans  *prometheus.CounterVec
}

func New() *Site {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Site{
		registry: reg,
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_media_uploads_total",
			Help: "Admin media uploads by page and result.",
		}, []string{"page", "result"}),
		deletes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_media_deletes_total",
			Help: "Admin media deletions by result.",
		}, []string{"result"}),
		contact: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_contact_messages_total",
			Help: "Contact form relays by result.",
		}, []string{"result"}),
		orphans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_reconcile_orphans_total",
			Help: "Inconsistencies found between media rows and stored files.",
		}, []string{"kind"}),
	}
	reg.MustRegister(s.uploads, s.deletes, s.contact, s.orphans)
	return s
}

func (s *Site) Handler() http.Handler {
	if s == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

func (s *Site) IncUpload(page, result string) {
	if s == nil {
		return
	}
	s.uploads.WithLabelValues(normalizeLabel(page), normalizeLabel(result)).Inc()
}

func (s *Site) IncDelete(result string) {
	if s == nil {
		return
	}
	s.deletes.WithLabelValues(normalizeLabel(result)).Inc()
}

func (s *Site) IncContact(result string) {
	if s == nil {
		return
	}
	s.contact.WithLabelValues(normalizeLabel(result)).Inc()
}

func (s *Site) AddOrphans(kind string, n int) {
	if s == nil || n <= 0 {
		return
	}
	s.orphans.WithLabelValues(normalizeLabel(kind)).Add(float64(n))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
