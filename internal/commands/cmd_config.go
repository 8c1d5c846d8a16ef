package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/toast/internal/core/config"
	"github.com/colonyops/toast/internal/printer"
	"github.com/colonyops/toast/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	format string
}

// NewConfigCmd creates the config command and its subcommands.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "toast config validate [options]",
				Description: "Validates the configuration file, checking durations, layout values, the theme name and the file itself.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:        "defaults",
				Usage:       "Print the default configuration",
				UsageText:   "toast config defaults > ~/.config/toast/config.yaml",
				Description: "Prints the built-in configuration as YAML, a starting point for a config file.",
				Action:      cmd.runDefaults,
			},
		},
	})

	return app
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	if cmd.format != "text" && cmd.format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", cmd.format)
	}

	cfg := cmd.flags.Config
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}

	fieldErrs, err := validationErrors(cfg.ValidateDeep(cmd.flags.ConfigPath))
	if err != nil {
		return err
	}

	if cmd.format == "json" {
		return cmd.outputJSON(c, fieldErrs)
	}

	return cmd.outputText(printer.Ctx(ctx), fieldErrs)
}

func (cmd *ConfigCmd) runDefaults(_ context.Context, c *cli.Command) error {
	out, err := config.DefaultConfig().YAML()
	if err != nil {
		return fmt.Errorf("render defaults: %w", err)
	}

	_, err = c.Root().Writer.Write(out)
	return err
}

// validationErrors unwraps the field errors of a validation result. Any other
// error is returned as is.
func validationErrors(err error) (config.FieldErrors, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrs config.FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, nil
	}
	return nil, err
}

func (cmd *ConfigCmd) outputJSON(c *cli.Command, fieldErrs config.FieldErrors) error {
	type jsonError struct {
		config.FieldError
		Message string `json:"message"`
	}

	errs := make([]jsonError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, jsonError{FieldError: fe, Message: fe.Error()})
	}

	out := struct {
		Valid  bool        `json:"valid"`
		Path   string      `json:"path"`
		Errors []jsonError `json:"errors,omitempty"`
	}{
		Valid:  len(fieldErrs) == 0,
		Path:   cmd.flags.ConfigPath,
		Errors: errs,
	}

	if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out); err != nil {
		return err
	}

	if len(fieldErrs) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigCmd) outputText(p *printer.Printer, fieldErrs config.FieldErrors) error {
	if len(fieldErrs) == 0 {
		p.Successf("Configuration is valid")
		if cmd.flags.ConfigPath != "" {
			p.Printf("  File: %s", cmd.flags.ConfigPath)
		}
		return nil
	}

	for _, fe := range fieldErrs {
		p.Errorf("%s", fe.Error())
	}

	p.Printf("")
	p.Errorf("%d error(s) found", len(fieldErrs))
	return cli.Exit("", 1)
}
