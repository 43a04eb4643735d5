package observability

import (
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestSampleRatioByEnvironment(t *testing.T) {
	cases := []struct {
		env   string
		ratio float64
		want  float64
	}{
		{"local", -1, 1},
		{"production", -1, 0.1},
		{"production", 0.5, 0.5},
		{"local", 3, 1},
		{"prod", 0, 0},
	}
	for _, c := range cases {
		if got := sampleRatio(OtelConfig{Environment: c.env, SampleRatio: c.ratio}); got != c.want {
			t.Fatalf("env=%s ratio=%v: got %v want %v", c.env, c.ratio, got, c.want)
		}
	}
	if d := sampler(OtelConfig{SampleRatio: 0.25}).Description(); !strings.Contains(d, "TraceIDRatioBased{0.25}") {
		t.Fatalf("sampler: %s", d)
	}
	if d := sampler(OtelConfig{SampleRatio: 0}).Description(); !strings.Contains(d, "root:AlwaysOffSampler") {
		t.Fatalf("sampler: %s", d)
	}
}

func TestResourceAttributes(t *testing.T) {
	attrs := resourceAttributes(OtelConfig{
		Environment:        "staging",
		DBDriver:           "postgres",
		CatalogBackend:     "youtube",
		CatalogSharedCache: true,
		IngestConcurrency:  4,
	})
	got := map[attribute.Key]attribute.Value{}
	for _, kv := range attrs {
		got[kv.Key] = kv.Value
	}
	if got["service.name"].AsString() != serviceNamespace || got["service.namespace"].AsString() != serviceNamespace {
		t.Fatalf("service attrs: %v", got)
	}
	if got["db.system"].AsString() != "postgres" || got["videoscripter.catalog.backend"].AsString() != "youtube" {
		t.Fatalf("deployment attrs: %v", got)
	}
	if got["videoscripter.ingest.concurrency"].AsInt64() != 4 || !got["videoscripter.catalog.shared_cache"].AsBool() {
		t.Fatalf("ingest attrs: %v", got)
	}
	if _, ok := got["service.version"]; ok {
		t.Fatalf("blank version should be omitted")
	}
}

func TestParseHeaders(t *testing.T) {
	h := ParseHeaders(" api-key = abc , bad, =x, team=video ")
	if len(h) != 2 || h["api-key"] != "abc" || h["team"] != "video" {
		t.Fatalf("ParseHeaders: %v", h)
	}
	if ParseHeaders("") != nil {
		t.Fatalf("empty headers should be nil")
	}
}
