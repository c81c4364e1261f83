package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/ian-shakespeare/librpn/internal/interpret"
)

const logo = `
 ____  ____  _   _
|  _ \|  _ \| \ | |
| |_) | |_) |  \| |
|  _ <|  __/| |\  |
|_| \_\_|   |_| \_|
`

func PrintLogo(w io.Writer) {
	fmt.Fprint(w, strings.TrimPrefix(logo, "\n"))
}

func PrintHelp(w io.Writer, execName string) {
	symbols := []string{}
	for _, symbol := range interpret.NewOperatorTable().Symbols() {
		symbols = append(symbols, string(symbol))
	}

	PrintLogo(w)
	fmt.Fprintf(w, "Usage: %s [options]\n", execName)
	fmt.Fprintln(w, "This is a reverse polish notation calculator. For example, 2 + 3 is invalid here")
	fmt.Fprintln(w, example)
	fmt.Fprintf(w, "Operators: %s\n", strings.Join(symbols, " "))
	fmt.Fprintln(w, "Type bye, quit or exit to leave the prompt and clear to clear the screen.")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "\t--help\tDisplays this help message")
	fmt.Fprintf(w, "\t-e\tExecute the RPN expression passed as argument. eg: %s -e \"2 3 +\"\n", execName)
	fmt.Fprintln(w, "\t-log-file\tWrite logs as JSON to a rotated file")
	fmt.Fprintln(w, "\t-v\tLog every evaluation")
}
