package tempmoncmd

import (
	"github.com/jessevdk/go-flags"

	mbp "github.com/advaithhl/TemperatureMonitor/mainboilerplate"
	"github.com/advaithhl/TemperatureMonitor/recorddb"
)

const iniFilename = "tempmon.ini"

// DBConfig locates the SQLite database file.
type DBConfig struct {
	Path string `long:"path" env:"PATH" default:"temperature.db" description:"Path of the SQLite database file"`
}

var (
	baseCfg = new(struct {
		Log mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
		DB  DBConfig      `group:"Database" namespace:"db" env-namespace:"DB"`
	})

	// RegisterCommands collects the sub-command registration hooks
	// contributed by each command's init().
	RegisterCommands []RegisterCommandFunc
)

// RegisterCommandFunc registers a sub-command with the root command.
type RegisterCommandFunc func(*flags.Command) error

func startup() {
	mbp.InitLog(baseCfg.Log)
}

// openStore opens the configured database. The caller closes it.
func openStore() *recorddb.Store {
	var store, err = recorddb.Open(baseCfg.DB.Path)
	mbp.Must(err, "failed to open database", "path", baseCfg.DB.Path)
	return store
}

// Execute parses configuration and runs the selected command.
func Execute() {
	var parser = flags.NewParser(baseCfg, flags.Default)

	parser.LongDescription = `tempmon is a tool for tracking daily morning and evening body temperatures.

	See --help pages of each sub-command for documentation and usage examples.
	Optionally configure tempmon with a '` + iniFilename + `' file in the current working directory,
	or with '~/.config/tempmon/` + iniFilename + `'. Use the 'print-config' sub-command to inspect
	the tool's current configuration.
	`

	mbp.AddPrintConfigCmd(parser, iniFilename)

	for _, addCommand := range RegisterCommands {
		mbp.Must(addCommand(parser.Command), "failed to add command")
	}

	mbp.MustParseConfig(parser, iniFilename)
}
