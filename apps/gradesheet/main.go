package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/trezcool/gradesheet/core"
	"github.com/trezcool/gradesheet/core/grade"
	logsvc "github.com/trezcool/gradesheet/services/logger"
	"github.com/trezcool/gradesheet/storage/database/inmem"
)

func main() {
	// logs go to stderr; stdout belongs to the console
	std := log.New(os.Stderr, "GRADESHEET : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatalf("loading config: %v", err)
	}
	if err = conf.Validate(core.NewValidator()); err != nil {
		std.Fatalf("validating config: %v", err)
	}

	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	// set up registry
	var seed []grade.Entry
	if conf.SeedRegistry {
		seed = grade.SeedEntries()
	}
	db, err := inmemdb.Open(seed...)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening registry: %v", err), err)
	}

	// start CLI
	cli := commandLine{
		conf:     conf,
		logger:   logger,
		gradeSvc: grade.NewService(inmemdb.NewGradeRepository(db)),
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %s", err), err)
		}
		os.Exit(1)
	}
}
