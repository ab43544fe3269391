package tempmoncmd

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	mbp "github.com/advaithhl/TemperatureMonitor/mainboilerplate"
	"github.com/advaithhl/TemperatureMonitor/recorddb"
)

type cmdInitiate struct{}

func init() {
	RegisterCommands = append(RegisterCommands, AddCmdInitiate)
}

// AddCmdInitiate registers the initiate command.
func AddCmdInitiate(cmd *flags.Command) error {
	var _, err = cmd.AddCommand("initiate", "Create the temperature table", `
Create the temperature table in the configured database.

This is a one-time setup step. If the table already exists it is left
untouched and the command reports as much.
`, &cmdInitiate{})
	return err
}

func (cmd *cmdInitiate) Execute([]string) error {
	startup()

	var store = openStore()
	defer store.Close()

	if err := store.CreateSchema(); recorddb.IsTableExists(err) {
		fmt.Println("Temperature table already exists; nothing to do.")
		return nil
	} else if err != nil {
		mbp.Must(err, "failed to create schema")
	}

	fmt.Println("Created temperature table.")
	return nil
}
