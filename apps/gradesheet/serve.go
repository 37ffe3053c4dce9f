package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/trezcool/gradesheet/apps/api/echo"
)

var newServerFunc = echoapi.NewServer // mockable

// serve blocks until the server fails or a shutdown signal is received.
func (cli *commandLine) serve(addr string) error {
	server := newServerFunc(&echoapi.Options{
		Address:        addr,
		Debug:          cli.conf.Debug,
		DisableReqLogs: cli.conf.Server.DisableReqLogs,
		GradeSvc:       cli.gradeSvc,
		Logger:         cli.logger,
	})

	cli.logger.Info(fmt.Sprintf("%s API starting : version %q, address %q", cli.conf.AppName, cli.conf.Build, addr))
	defer cli.logger.Info("API stopped")

	go func() {
		server.Start()
	}()

	select {
	case err := <-server.Errors():
		return errors.Wrap(err, "server error")

	case sig := <-server.ShutdownSignal():
		cli.logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), cli.conf.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			cli.logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				return errors.Wrap(err, "could not force stop server")
			}
		}
	}
	return nil
}
