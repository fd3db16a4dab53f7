package main

import (
	"io"
	"os"
	"strings"

	"github.com/Alia5/antennagen/footprint"
	"github.com/Alia5/antennagen/internal/config"
	"github.com/Alia5/antennagen/internal/configpaths"
	"github.com/Alia5/antennagen/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg, footprint.ListWizards())

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("antennagen"),
		kong.Description("Planar inductive antenna footprint generator"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File, os.Stderr)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	var dumpTo io.Writer
	if cli.Log.PathFile != "" {
		f, err := os.OpenFile(cli.Log.PathFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open path dump file", "file", cli.Log.PathFile, "error", err)
		} else {
			dumpTo = f
			closeFiles = append(closeFiles, f)
		}
	} else if cli.Log.Level == "trace" {
		dumpTo = os.Stderr
	}

	ctx.Bind(logger)
	ctx.BindTo(log.NewPathDump(dumpTo), (*log.PathDump)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("ANTENNAGEN_CONFIG"); v != "" {
		return v
	}
	return ""
}
