package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/goliatone/go-paramgen/pkg/params"
)

var kindChoices = []string{"string", "text", "boolean", "choice", "password", "run", "file"}

// Author drives the interactive definition-collection flow.
type Author struct {
	driver PromptDriver
}

// NewAuthor constructs an Author; a nil driver falls back to survey.
func NewAuthor(driver PromptDriver) *Author {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Author{driver: driver}
}

// Collect prompts for parameter definitions until the user stops adding
// more. An interrupt mid-parameter abandons that parameter but keeps the
// ones already collected.
func (a *Author) Collect(ctx context.Context) ([]params.Definition, error) {
	var defs []params.Definition
	for {
		def, err := a.collectOne(ctx)
		if err != nil {
			if errors.Is(err, ErrAborted) {
				return defs, nil
			}
			return defs, err
		}
		defs = append(defs, def)

		more, err := a.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add another parameter?",
			Default: false,
		})
		if err != nil || !more {
			return defs, nil
		}
	}
}

func (a *Author) collectOne(ctx context.Context) (params.Definition, error) {
	kindIndex, err := a.driver.Select(ctx, SelectConfig{
		Message: "Parameter kind",
		Options: kindChoices,
	})
	if err != nil {
		return nil, err
	}
	if kindIndex < 0 || kindIndex >= len(kindChoices) {
		return nil, errors.New("tui: invalid kind selection")
	}

	name, err := a.driver.Input(ctx, InputConfig{
		Message:   "Parameter name",
		Validator: nonEmpty,
	})
	if err != nil {
		return nil, err
	}

	description, err := a.driver.Input(ctx, InputConfig{Message: "Description"})
	if err != nil {
		return nil, err
	}

	switch kindChoices[kindIndex] {
	case "string":
		defaultValue, err := a.driver.Input(ctx, InputConfig{Message: "Default value"})
		if err != nil {
			return nil, err
		}
		return params.StringDefinition{Name: name, Description: description, DefaultValue: defaultValue}, nil
	case "text":
		defaultValue, err := a.driver.TextArea(ctx, TextAreaConfig{Message: "Default value"})
		if err != nil {
			return nil, err
		}
		return params.TextDefinition{Name: name, Description: description, DefaultValue: defaultValue}, nil
	case "boolean":
		defaultValue, err := a.driver.Confirm(ctx, ConfirmConfig{Message: "Default to true?"})
		if err != nil {
			return nil, err
		}
		return params.BooleanDefinition{Name: name, Description: description, DefaultValue: defaultValue}, nil
	case "choice":
		raw, err := a.driver.Input(ctx, InputConfig{
			Message:   "Choices (comma separated, first is the default)",
			Validator: nonEmpty,
		})
		if err != nil {
			return nil, err
		}
		return params.ChoiceDefinition{Name: name, Description: description, Choices: splitChoices(raw)}, nil
	case "password":
		defaultValue, err := a.driver.Input(ctx, InputConfig{Message: "Default value"})
		if err != nil {
			return nil, err
		}
		return params.PasswordDefinition{Name: name, Description: description, DefaultValue: defaultValue}, nil
	case "run":
		project, err := a.driver.Input(ctx, InputConfig{
			Message:   "Project name",
			Validator: nonEmpty,
		})
		if err != nil {
			return nil, err
		}
		filter, err := a.driver.Input(ctx, InputConfig{Message: "Build filter"})
		if err != nil {
			return nil, err
		}
		return params.RunDefinition{Name: name, Description: description, ProjectName: project, Filter: filter}, nil
	default:
		return params.FileDefinition{Name: name, Description: description}, nil
	}
}

func nonEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func splitChoices(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
