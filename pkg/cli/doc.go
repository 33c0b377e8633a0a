// Package cli implements the nutriscore command-line interface.
//
// # Commands
//
// serve - Run the scoring API:
//
//	nutriscore serve [--port 8080] [--address 0.0.0.0] [--config nutriscore.yaml] [--workers N]
//
// Starts the HTTP server with POST /api/calculate, POST /api/calculate-batch,
// health and metrics endpoints. The optional YAML config file is watched and
// rate limit changes apply without a restart.
//
// score - Score meals locally:
//
//	nutriscore score --calories 200 --protein 15 --fiber 5 --scale-factor 1.5
//	nutriscore score --input meals.yaml
//	cat meals.json | nutriscore score --input -
//
// A single meal is given with flags; a batch is read from a file (or stdin)
// containing a document with a "meals" list.
//
// benchmark - Time batch scoring over synthetic meals:
//
//	nutriscore benchmark [--count 10000] [--seed 42] [--workers N]
//
// Without --output or --format a human-readable summary is printed;
// otherwise the report is serialized.
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (default: info, env: LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// score and benchmark accept --output/-o (default: stdout) and
// --format/-t: yaml (default), json or table.
package cli
