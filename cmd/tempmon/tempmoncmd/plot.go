package tempmoncmd

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/advaithhl/TemperatureMonitor/chart"
	mbp "github.com/advaithhl/TemperatureMonitor/mainboilerplate"
	"github.com/advaithhl/TemperatureMonitor/recorddb"
)

type cmdPlot struct {
	Save bool `long:"save" short:"s" description:"Save the chart to the working directory instead of opening it"`
}

func init() {
	RegisterCommands = append(RegisterCommands, AddCmdPlot)
}

// AddCmdPlot registers the plot command.
func AddCmdPlot(cmd *flags.Command) error {
	var _, err = cmd.AddCommand("plot", "Chart recorded temperatures", `
Chart the morning and evening temperature series against date, with a
dashed reference line at `+fmt.Sprintf("%.1f", chart.ReferenceTemp)+`.

By default the chart is rendered to a temporary file and opened with
the platform image viewer. With --save it is written to the working
directory as 'temperature_<today>.png' instead.
`, &cmdPlot{})
	return err
}

func (cmd *cmdPlot) Execute([]string) error {
	startup()

	var store = openStore()
	defer store.Close()

	var records, err = store.List(recorddb.ColumnDate, recorddb.Ascending)
	mbp.Must(err, "failed to list records")

	var name = chart.SaveName(time.Now())

	if cmd.Save {
		mbp.Must(chart.Render(records, name), "failed to render chart")
		fmt.Printf("Generated %s.\n", name)
		return nil
	}

	var path = filepath.Join(os.TempDir(), name)
	mbp.Must(chart.Render(records, path), "failed to render chart")

	if err = openViewer(path); err != nil {
		log.WithFields(log.Fields{"err": err, "path": path}).Warn("failed to open image viewer")
		fmt.Printf("Rendered chart to %s.\n", path)
	}
	return nil
}

// openViewer launches the platform image viewer on |path|, without
// waiting for it to exit.
func openViewer(path string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}
