package sinks

import (
	"fmt"
	"io"
	"os"

	"sand-ca/internal/logging"
)

// FromConfig instantiates the sinks enabled in cfg. Console output goes to
// console; the JSON sink opens cfg.JSON.FilePath, or writes to console when
// the path is empty. The returned closer releases any opened file and must be
// called after the router is closed.
func FromConfig(cfg logging.Config, console io.Writer) ([]logging.NamedSink, func() error, error) {
	var named []logging.NamedSink
	closer := func() error { return nil }
	for _, name := range cfg.EnabledSinks {
		switch name {
		case "console":
			named = append(named, logging.NamedSink{Name: name, Sink: NewConsoleSink(console, cfg.Console)})
		case "json":
			w := console
			if cfg.JSON.FilePath != "" {
				f, err := os.OpenFile(cfg.JSON.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return nil, nil, fmt.Errorf("open json log: %w", err)
				}
				w = f
				closer = f.Close
			}
			named = append(named, logging.NamedSink{Name: name, Sink: NewJSON(w, cfg.JSON.FlushInterval)})
		case "memory":
			named = append(named, logging.NamedSink{Name: name, Sink: NewMemorySink()})
		default:
			closer()
			return nil, nil, fmt.Errorf("unknown log sink %q", name)
		}
	}
	return named, closer, nil
}
