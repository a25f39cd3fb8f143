package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	paramgen "github.com/goliatone/go-paramgen"
	"github.com/goliatone/go-paramgen/pkg/generator"
	"github.com/goliatone/go-paramgen/pkg/jobspec"
	"github.com/goliatone/go-paramgen/pkg/openapi"
	"github.com/goliatone/go-paramgen/pkg/params"
	"github.com/goliatone/go-paramgen/pkg/params/unochoice"
	"github.com/goliatone/go-paramgen/pkg/scaffold"
	"github.com/goliatone/go-paramgen/pkg/tui"
)

func main() {
	source := flag.String("source", "", "job config.xml, job spec, or OpenAPI document (path or URL)")
	format := flag.String("format", "auto", "source format: auto, jobspec, configxml, or openapi")
	operation := flag.String("operation", "", "OpenAPI operation ID (required with -format openapi)")
	syntax := flag.String("syntax", "auto", "block syntax: auto or scripted")
	emitScaffold := flag.Bool("scaffold", false, "wrap the block in a Jenkinsfile skeleton")
	interactive := flag.Bool("interactive", false, "author parameters interactively")
	activeChoices := flag.Bool("active-choices", false, "enable Active Choices plugin formatters")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	gen := paramgen.NewGenerator(syntaxOption(*syntax))
	if *activeChoices {
		if err := unochoice.Register(gen.Registry(), gen.Symbols()); err != nil {
			log.Fatalf("Failed to register Active Choices support: %v", err)
		}
	}

	defs, err := collectDefinitions(ctx, *source, *format, *operation, *interactive)
	if err != nil {
		log.Fatalf("Failed to load parameter definitions: %v", err)
	}

	block, err := gen.Build(ctx, defs)
	if err != nil {
		log.Fatalf("Failed to generate parameters block: %v", err)
	}

	text := block
	if *emitScaffold {
		wrapper, err := scaffold.New()
		if err != nil {
			log.Fatalf("Failed to initialise scaffold: %v", err)
		}
		text, err = wrapper.Render(block, scaffold.RenderOptions{})
		if err != nil {
			log.Fatalf("Failed to render Jenkinsfile scaffold: %v", err)
		}
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(text), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Parameters written to %s\n", *output)
	} else {
		fmt.Print(text)
	}
}

func collectDefinitions(ctx context.Context, source, format, operation string, interactive bool) ([]params.Definition, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch {
	case interactive:
		return tui.NewAuthor(nil).Collect(ctx)
	case source == "":
		return nil, fmt.Errorf("either -source or -interactive is required")
	case format == "openapi":
		data, err := readSource(source)
		if err != nil {
			return nil, err
		}
		return openapi.New(openapi.Options{}).Import(ctx, data, operation)
	case format == "auto", format == "jobspec", format == "configxml":
		// Job specs and config.xml share the loader; the decoder tells the
		// payloads apart by their leading byte.
		loader := paramgen.NewLoader(
			jobspec.WithHTTPFallback(),
			jobspec.WithRequestTimeout(30*time.Second),
		)
		doc, err := loader.Load(ctx, parseSource(source))
		if err != nil {
			return nil, err
		}
		return doc.Parameters, nil
	default:
		return nil, fmt.Errorf("unknown format %q: expected auto, jobspec, configxml, or openapi", format)
	}
}

func syntaxOption(raw string) paramgen.Option {
	if strings.EqualFold(strings.TrimSpace(raw), "scripted") {
		return paramgen.WithSyntax(generator.SyntaxScripted)
	}
	return paramgen.WithSyntax(generator.SyntaxAuto)
}

func parseSource(raw string) jobspec.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return jobspec.SourceFromURL(path)
	}
	return jobspec.SourceFromFile(path)
}

func readSource(raw string) ([]byte, error) {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Get(path)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, path)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(path)
}
