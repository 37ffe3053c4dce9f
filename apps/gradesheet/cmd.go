package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/trezcool/gradesheet/core"
	"github.com/trezcool/gradesheet/core/grade"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf     *core.Config
	logger   core.Logger
	gradeSvc grade.Service
	in       *bufio.Reader
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  prompt                      - choose an action interactively (default)")
	fmt.Fprintln(cli.out, "  list                        - print all grades")
	fmt.Fprintln(cli.out, "  add -name NAME -grade GRADE - add a student or replace their grade")
	fmt.Fprintln(cli.out, "  update -name NAME -grade GRADE - update an existing student's grade")
	fmt.Fprintln(cli.out, "  serve [-addr HOST:PORT]     - serve the registry over HTTP")
}

func (cli *commandLine) run(args []string) error {
	ctx := context.Background()
	if len(args) < 2 {
		return cli.prompt(ctx)
	}

	addCmd, addName, addGrade := cli.studentFlagSet("add")
	updateCmd, updateName, updateGrade := cli.studentFlagSet("update")
	serveCmd := flag.NewFlagSet("serve", flag.ContinueOnError)
	serveCmd.SetOutput(cli.out)
	serveAddr := serveCmd.String("addr", cli.conf.Server.Address, "The address the HTTP server listens on.")

	switch args[1] {
	case "prompt":
		return cli.prompt(ctx)
	case "list":
		return cli.list(ctx)
	case "add":
		if err := parse(addCmd, args[2:], "name", "grade"); err != nil {
			return err
		}
		return cli.add(ctx, *addName, *addGrade)
	case "update":
		if err := parse(updateCmd, args[2:], "name", "grade"); err != nil {
			return err
		}
		return cli.update(ctx, *updateName, *updateGrade)
	case "serve":
		if err := parse(serveCmd, args[2:]); err != nil {
			return err
		}
		return cli.serve(*serveAddr)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) studentFlagSet(name string) (*flag.FlagSet, *string, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	studentName := fs.String("name", "", "The student's name, taken as-is.")
	studentGrade := fs.String("grade", "", "The student's grade, taken as-is.")
	return fs, studentName, studentGrade
}

// parse parses args and requires every flag in `required` to be set, even to an empty value.
func parse(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	set := make(map[string]bool, fs.NFlag())
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, name := range required {
		if !set[name] {
			fs.Usage()
			return errHelp
		}
	}
	return nil
}
