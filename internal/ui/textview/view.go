package textview

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"layoutkit/internal/controller"
	"layoutkit/internal/core/apperr"
	"layoutkit/internal/core/events"
	"layoutkit/internal/core/model"
	"layoutkit/internal/ui/preferences"
)

var (
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	pathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

const help = "commands: options | path <dir> | add <dir> | clear | collect <option> | quit"

// View is a line-oriented terminal surface.
type View struct {
	controller  *controller.Controller
	in          io.Reader
	out         io.Writer
	destination string
	paths       []string
}

// Factory returns a view factory reading commands from in and writing to out.
func Factory(in io.Reader, out io.Writer, settings preferences.Settings) controller.ViewFactory {
	return func(ctrl *controller.Controller) controller.View {
		return &View{controller: ctrl, in: in, out: out, destination: settings.DestinationPath}
	}
}

// Update renders a notification from the model.
func (view *View) Update(value any) {
	switch typed := value.(type) {
	case string:
		view.println(typed)
	case events.SetPathEvent:
		view.destination = typed.Path
		view.println(pathStyle.Render("destination: " + typed.Path))
	case events.EndTaskEvent:
		view.println(doneStyle.Render(fmt.Sprint(typed.Info())))
	case error:
		view.println(errorStyle.Render("error: " + apperr.From(typed).First()))
	default:
		view.println(fmt.Sprint(typed))
	}
}

// Start reads commands until quit or end of input.
func (view *View) Start() {
	view.println(helpStyle.Render(help))
	scanner := bufio.NewScanner(view.in)
	for scanner.Scan() {
		if !view.handle(strings.Fields(scanner.Text())) {
			return
		}
	}
}

// Destination returns the current destination path.
func (view *View) Destination() string {
	return view.destination
}

func (view *View) handle(fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	argument := strings.Join(fields[1:], " ")
	switch fields[0] {
	case "quit", "exit":
		return false
	case "options":
		view.println(strings.Join(model.ComboOptions(), " "))
	case "path":
		if argument != "" {
			view.Update(events.SetPathEvent{Path: argument})
		}
	case "add":
		if argument != "" {
			view.paths = append(view.paths, argument)
		}
	case "clear":
		view.paths = nil
	case "collect":
		if !model.IsOption(argument) {
			view.Update(apperr.New(fmt.Sprintf("unknown option %q", argument)))
			return true
		}
		view.controller.CollectMetrics(view.destination, append([]string(nil), view.paths...), argument)
	default:
		view.println(helpStyle.Render(help))
	}
	return true
}

func (view *View) println(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	fmt.Fprintln(view.out, line)
}
