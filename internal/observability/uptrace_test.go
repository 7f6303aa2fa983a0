package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/cricinfo/internal/config"
	"github.com/riskibarqy/cricinfo/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cases := map[string]config.Config{
		"flag off":  {UptraceEnabled: false, ServiceName: "cricinfo", ServiceVersion: "dev", AppEnv: config.EnvDev},
		"empty dsn": {UptraceEnabled: true, UptraceDSN: "  ", ServiceName: "cricinfo", ServiceVersion: "dev", AppEnv: config.EnvDev},
	}
	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			base := logging.NewNop()
			logger, shutdown, err := InitUptrace(cfg, base)
			if err != nil {
				t.Fatalf("init uptrace: %v", err)
			}
			if logger != base {
				t.Fatalf("disabled uptrace should keep the logger")
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown uptrace: %v", err)
			}
		})
	}
}
