package tempmoncmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/advaithhl/TemperatureMonitor/datearg"
	"github.com/advaithhl/TemperatureMonitor/export"
	mbp "github.com/advaithhl/TemperatureMonitor/mainboilerplate"
	"github.com/advaithhl/TemperatureMonitor/recorddb"
)

type cmdList struct {
	Sort   string `long:"sort" short:"s" choice:"date" choice:"morning" choice:"evening" default:"date" description:"Column to sort by"`
	Order  string `long:"order" short:"o" choice:"asc" choice:"desc" default:"desc" description:"Sort direction"`
	Export string `long:"export" short:"e" description:"Export records to this file instead of printing them"`
	Format string `long:"format" short:"f" choice:"plain" choice:"table" choice:"yaml" choice:"json" default:"plain" description:"Console output format"`
}

// listedRecord is the serialized form of a Record in yaml/json output.
type listedRecord struct {
	Date    string   `yaml:"date" json:"date"`
	Morning *float64 `yaml:"morning" json:"morning"`
	Evening *float64 `yaml:"evening" json:"evening"`
}

func init() {
	RegisterCommands = append(RegisterCommands, AddCmdList)
}

// AddCmdList registers the list command.
func AddCmdList(cmd *flags.Command) error {
	var _, err = cmd.AddCommand("list", "List recorded temperatures", `
List all recorded temperatures, sorted by date, morning, or evening
value (descending by default).

Results can be output in a variety of --format options:
plain: Prints one 'Date: ... ; Morning: ... ; Evening: ...' line per record
table: Prints as a table
yaml:  Prints records as a YAML list
json:  Prints records encoded as JSON, one per line

With --export the full record set is instead written to the named file
as semicolon-delimited text, one header line plus one line per record.
`, &cmdList{})
	return err
}

func (cmd *cmdList) Execute([]string) error {
	startup()

	var col, err = recorddb.ParseColumn(cmd.Sort)
	mbp.Must(err, "failed to parse sort column")

	var dir = recorddb.Descending
	if cmd.Order == "asc" {
		dir = recorddb.Ascending
	}

	var store = openStore()
	defer store.Close()

	records, err := store.List(col, dir)
	mbp.Must(err, "failed to list records")

	if cmd.Export != "" {
		n, err := export.WriteFile(afero.NewOsFs(), cmd.Export, records)
		mbp.Must(err, "failed to export records", "path", cmd.Export)

		fmt.Printf("Exported %d records to %s (%s).\n",
			len(records), cmd.Export, humanize.Bytes(uint64(n)))
		return nil
	}

	switch cmd.Format {
	case "plain":
		for _, rec := range records {
			fmt.Printf("Date: %s ; Morning: %s ; Evening: %s\n",
				rec.Date.Format(datearg.DisplayLayout),
				export.Value(rec.Morning, "-"),
				export.Value(rec.Evening, "-"))
		}
	case "table":
		mbp.Must(renderTable(os.Stdout, records), "failed to render table")
	case "yaml":
		var b, err = yaml.Marshal(listedRecords(records))
		mbp.Must(err, "failed to encode records")
		_, _ = os.Stdout.Write(b)
	case "json":
		var enc = json.NewEncoder(os.Stdout)
		for _, rec := range listedRecords(records) {
			mbp.Must(enc.Encode(rec), "failed to encode to json")
		}
	}
	return nil
}

func renderTable(w io.Writer, records []recorddb.Record) error {
	var table = tablewriter.NewWriter(w)
	table.Header("Date", "Morning", "Evening")

	for _, rec := range records {
		if err := table.Append([]string{
			rec.Date.Format(datearg.DisplayLayout),
			export.Value(rec.Morning, "<none>"),
			export.Value(rec.Evening, "<none>"),
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func listedRecords(records []recorddb.Record) []listedRecord {
	var out = make([]listedRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, listedRecord{
			Date:    rec.Date.Format(datearg.Layout),
			Morning: rec.Morning,
			Evening: rec.Evening,
		})
	}
	return out
}
