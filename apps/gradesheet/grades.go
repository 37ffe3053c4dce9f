package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/gradesheet/core/grade"
)

const (
	menuPrompt     = "Enter 1 to add new student , 2 to update grade , 3 to print all grades: "
	namePrompt     = "Enter student name: "
	gradePrompt    = "Enter student grade: "
	newGradePrompt = "Enter new grade: "
	invalidInput   = "Invalid input"
)

// prompt runs exactly one console action.
func (cli *commandLine) prompt(ctx context.Context) error {
	choice, err := cli.input(menuPrompt)
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		name, err := cli.input(namePrompt)
		if err != nil {
			return err
		}
		grd, err := cli.input(gradePrompt)
		if err != nil {
			return err
		}
		return cli.add(ctx, name, grd)
	case "2":
		name, err := cli.input(namePrompt)
		if err != nil {
			return err
		}
		grd, err := cli.input(newGradePrompt)
		if err != nil {
			return err
		}
		return cli.update(ctx, name, grd)
	case "3":
		return cli.list(ctx)
	default:
		fmt.Fprintln(cli.out, invalidInput)
		return nil
	}
}

// input prints `prompt` and reads one line without its terminator. EOF ends the line.
func (cli *commandLine) input(prompt string) (string, error) {
	fmt.Fprint(cli.out, prompt)
	line, err := cli.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading input")
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (cli *commandLine) add(ctx context.Context, name, grd string) error {
	sheet, err := cli.gradeSvc.AddOrReplace(ctx, name, grd)
	if err != nil {
		return errors.Wrap(err, "adding student")
	}
	fmt.Fprintln(cli.out, sheet)
	return nil
}

// update prints the full sheet, or the not-found message verbatim.
func (cli *commandLine) update(ctx context.Context, name, grd string) error {
	sheet, err := cli.gradeSvc.UpdateExisting(ctx, name, grd)
	if err != nil {
		if errors.Cause(err) == grade.ErrNotFound {
			fmt.Fprintln(cli.out, err)
			return nil
		}
		return errors.Wrap(err, "updating grade")
	}
	fmt.Fprintln(cli.out, sheet)
	return nil
}

func (cli *commandLine) list(ctx context.Context) error {
	err := cli.gradeSvc.ListAll(ctx, func(e grade.Entry) {
		fmt.Fprintln(cli.out, e)
	})
	return errors.Wrap(err, "listing grades")
}
