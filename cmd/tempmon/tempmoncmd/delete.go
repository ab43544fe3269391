package tempmoncmd

import (
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/advaithhl/TemperatureMonitor/datearg"
	mbp "github.com/advaithhl/TemperatureMonitor/mainboilerplate"
)

type cmdDelete struct {
	Args struct {
		Date string `positional-arg-name:"DATE" description:"Date of the record to delete: YYYY-MM-DD, '<N>d' for N days ago, or omitted for today"`
	} `positional-args:"yes"`
}

func init() {
	RegisterCommands = append(RegisterCommands, AddCmdDelete)
}

// AddCmdDelete registers the delete command.
func AddCmdDelete(cmd *flags.Command) error {
	var _, err = cmd.AddCommand("delete", "Delete a day's record", `
Delete the record of a single date, defaulting to today.

Deleting a date which has no record is not an error; the command
reports that no record was found.
`, &cmdDelete{})
	return err
}

func (cmd *cmdDelete) Execute([]string) error {
	startup()

	var date, err = datearg.Parse(cmd.Args.Date, time.Now())
	mbp.Must(err, "failed to parse date argument")

	var store = openStore()
	defer store.Close()

	n, err := store.Delete(date)
	mbp.Must(err, "failed to delete record")

	if n == 0 {
		fmt.Printf("No record for %s (0 rows affected).\n", date.Format(datearg.DisplayLayout))
	} else {
		fmt.Printf("Deleted record for %s (%d row affected).\n", date.Format(datearg.DisplayLayout), n)
	}
	return nil
}
