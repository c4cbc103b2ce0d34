package main

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/beltex/go-smc/protocol"
	"github.com/beltex/go-smc/smc"
)

type testKey struct {
	tag  string
	data []byte
}

// tableTransport answers the two-phase protocol from a fixed key table, the
// way real hardware does.
type tableTransport struct {
	keys map[string]testKey
}

func (tr *tableTransport) Exchange(in *protocol.ParamStruct) (*protocol.ParamStruct, error) {
	k, ok := tr.keys[protocol.DecodeTag(in.Key)]
	if !ok {
		return &protocol.ParamStruct{Result: protocol.ResultKeyNotFound}, nil
	}

	out := &protocol.ParamStruct{Result: protocol.ResultSuccess}
	switch in.Data8 {
	case protocol.OpGetKeyInfo:
		out.KeyInfo = protocol.KeyInfo{
			DataSize: uint32(len(k.data)),
			DataType: protocol.EncodeKey(k.tag),
		}
	case protocol.OpReadKey:
		copy(out.Bytes[:], k.data)
	default:
		out.Result = protocol.ResultError
	}

	return out, nil
}

func TestScrapeExportsNumericKeys(t *testing.T) {
	registerMetrics()
	numericValue.Reset()
	scrapeErrors.Reset()

	tr := &tableTransport{keys: map[string]testKey{
		protocol.KeyCPUDiode: {tag: protocol.TypeSP78, data: []byte{0x3A, 0x80}},
		protocol.KeyFanCount: {tag: protocol.TypeUInt8, data: []byte{0}},
		"BNum":               {tag: protocol.TypeUInt8, data: []byte{1}},
		"MPrc":               {tag: protocol.TypeUInt16, data: []byte{0x01, 0x2C}},
	}}

	cfg := defaultExporterConfig()
	cfg.TemperatureKeys = []string{protocol.KeyCPUDiode}
	cfg.NumericKeys = []string{"BNum", "MPrc", "NOPE"}

	scrape(context.Background(), smc.New(tr), cfg, zerolog.Nop())

	if got := testutil.ToFloat64(numericValue.WithLabelValues("BNum", "ui8")); got != 1 {
		t.Errorf("BNum gauge = %v, want 1", got)
	}
	if got := testutil.ToFloat64(numericValue.WithLabelValues("MPrc", "ui16")); got != 300 {
		t.Errorf("MPrc gauge = %v, want 300", got)
	}
	if got := testutil.ToFloat64(scrapeErrors.WithLabelValues("NOPE")); got != 1 {
		t.Errorf("scrape errors for missing key = %v, want 1", got)
	}
	if got := testutil.ToFloat64(temperature.WithLabelValues(protocol.KeyCPUDiode, cfg.Unit.String())); got != 58 {
		t.Errorf("temperature gauge = %v, want 58", got)
	}
}
