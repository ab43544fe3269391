package tempmoncmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/advaithhl/TemperatureMonitor/datearg"
	mbp "github.com/advaithhl/TemperatureMonitor/mainboilerplate"
	"github.com/advaithhl/TemperatureMonitor/recorddb"
)

type cmdAdd struct {
	Args struct {
		Morning string `positional-arg-name:"MORNING" required:"yes" description:"Morning temperature, or '-' if not taken"`
		Evening string `positional-arg-name:"EVENING" required:"yes" description:"Evening temperature, or '-' if not taken"`
		Date    string `positional-arg-name:"DATE" description:"Date of observation: YYYY-MM-DD, '<N>d' for N days ago, or omitted for today"`
	} `positional-args:"yes"`
}

func init() {
	RegisterCommands = append(RegisterCommands, AddCmdAdd)
}

// AddCmdAdd registers the add command.
func AddCmdAdd(cmd *flags.Command) error {
	var _, err = cmd.AddCommand("add", "Record a day's temperatures", `
Record the morning and evening temperatures of a single date.

The date defaults to today. Use a literal date (2024-01-02), or the
relative shorthand '<N>d' meaning N days before today:
>    tempmon add 36.5 37.0 3d

At most one record may exist per date; a second add for the same date
reports a conflict and inserts nothing.
`, &cmdAdd{})
	return err
}

func (cmd *cmdAdd) Execute([]string) error {
	startup()

	var date, err = datearg.Parse(cmd.Args.Date, time.Now())
	mbp.Must(err, "failed to parse date argument")

	morning, err := parseObservation(cmd.Args.Morning)
	mbp.Must(err, "failed to parse morning temperature")
	evening, err := parseObservation(cmd.Args.Evening)
	mbp.Must(err, "failed to parse evening temperature")

	var store = openStore()
	defer store.Close()

	n, err := store.Insert(recorddb.Record{Date: date, Morning: morning, Evening: evening})
	if recorddb.IsDuplicateDate(err) {
		fmt.Printf("A record for %s already exists; nothing was inserted.\n",
			date.Format(datearg.DisplayLayout))
		return nil
	}
	mbp.Must(err, "failed to insert record")

	fmt.Printf("Recorded temperatures for %s (%d row affected).\n",
		date.Format(datearg.DisplayLayout), n)
	return nil
}

// parseObservation coerces an observation argument to its value,
// mapping '-' (not taken) to nil.
func parseObservation(arg string) (*float64, error) {
	if arg == "-" {
		return nil, nil
	}
	var v, err = strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, errors.Errorf("invalid temperature %q", arg)
	}
	return &v, nil
}
