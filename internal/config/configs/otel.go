package configs

// OTel configures OpenTelemetry tracing. Tracing stays off unless Enabled is
// set and Endpoint is not empty.
type OTel struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"promoted-ads"`
}

// Active reports whether spans should be exported.
func (c OTel) Active() bool {
	return c.Enabled && c.Endpoint != ""
}
