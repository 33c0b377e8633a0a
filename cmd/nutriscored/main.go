package main

import (
	"context"
	"log"
	"os"

	"github.com/mountainkid/nutriscore/pkg/api"
	"github.com/mountainkid/nutriscore/pkg/logging"
)

func main() {
	logging.SetDefaultStructuredLogger("nutriscored", api.Version())

	opts := api.Options{ConfigPath: os.Getenv(api.EnvConfigPath)}
	if err := api.Serve(context.Background(), opts); err != nil {
		log.Fatal(err)
	}
}
