// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfpages/internal/convert"
	"github.com/pdiddy/pdfpages/internal/history"
	"github.com/pdiddy/pdfpages/internal/raster"
	"github.com/pdiddy/pdfpages/pkg/types"
)

// runConvert is the root command action: build the request from arguments
// and configuration, run the conversion, and record the outcome.
func runConvert(cmd *cobra.Command, args []string) error {
	req := types.Request{
		Source:      args[0],
		DestDir:     args[1],
		DPI:         viper.GetInt("dpi"),
		Format:      viper.GetString("fmt"),
		PopplerPath: viper.GetString("poppler_path"),
		Backend:     types.Backend(viper.GetString("backend")),
	}

	started := time.Now()

	ras, err := raster.New(req.Backend, req.PopplerPath)
	if err != nil {
		recordRun(history.NewRun(req, 0, started, err))
		return err
	}

	pages, runErr := convert.Run(ras, req, log)
	recordRun(history.NewRun(req, pages, started, runErr))
	return runErr
}

// recordRun persists a run record. History is best-effort: a failure here
// is logged as a warning and never changes the command's outcome.
func recordRun(run history.Run) {
	if viper.GetBool("no_history") {
		return
	}

	store, err := openHistory()
	if err != nil {
		log.WithError(err).Warn("could not open run history")
		return
	}
	defer store.Close()

	if _, err := store.Record(context.Background(), run); err != nil {
		log.WithError(err).Warn("could not record run history")
	}
}
