package config

type WorkerKeyStruct struct {
	DiagnosticsQueue string
}

var WorkerKey = &WorkerKeyStruct{
	DiagnosticsQueue: "analysis_diagnostics_queue",
}
