package main

import (
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// traceKeys are the tracers of module predict.
var traceKeys = []string{"predict.ll", "predict.scanner", "predict.decl"}

// setupTracing loads the configuration and connects the tracing facade to
// trace2go. Configuration is read from a NestedText file "declrepl.nt" at
// the usual locations, if present, e.g.
//
//    tracing:
//      adapter: logrus
//      destination: file://declrepl.log
//    tracelevel:
//      root: Info
//      predict:
//        decl: Debug
//    declrepl:
//      tree: true
//
// Non-empty flag values override configured ones.
//
func setupTracing(adapter string, level string) *koanfadapter.KConf {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	tracing.RegisterTraceAdapter("logrus", logrusadapter.GetAdapter(), false)
	conf := koanfadapter.New(nil, "declrepl", []string{".nt"})
	conf.InitDefaults()
	if adapter != "" {
		conf.Set("tracing.adapter", adapter)
	}
	if level != "" {
		conf.Set("tracelevel.root", level)
	} else if !conf.IsSet("tracelevel.root") {
		conf.Set("tracelevel.root", "Error")
	}
	for _, key := range traceKeys {
		if level != "" || !conf.IsSet("tracelevel."+key) {
			conf.Set("tracelevel."+key, conf.GetString("tracelevel.root"))
		}
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		tracing.Errorf("cannot configure tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return conf
}
