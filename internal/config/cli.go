// Package config holds the root command line definition.
package config

import "github.com/Alia5/antennagen/internal/cmd"

// Log configures logging for every command.
type Log struct {
	Level    string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"ANTENNAGEN_LOG_LEVEL"`
	File     string `help:"Write logs to this file; the console then only shows warnings and errors" type:"path" env:"ANTENNAGEN_LOG_FILE"`
	PathFile string `help:"Dump every generated segment to this file (stderr at trace level)" type:"path" env:"ANTENNAGEN_LOG_PATH_FILE"`
}

type CLI struct {
	ConfigFile string `name:"config" help:"Configuration file (json, yaml or toml)" type:"path" env:"ANTENNAGEN_CONFIG"`
	Log        Log    `embed:"" prefix:"log."`

	Rectangular cmd.Rectangular   `cmd:"" help:"Generate a rectangular spiral antenna, optionally with diagonal connectors"`
	Spiral      cmd.Spiral        `cmd:"" help:"Generate a circular spiral antenna"`
	Params      cmd.Params        `cmd:"" help:"List a wizard's parameters with defaults and ranges"`
	Config      cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}
