package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/toysql/toydb/internal/engine"
	"github.com/toysql/toydb/internal/executor"
)

// Start runs the interactive loop on stdin. Table creation is API-level,
// not statement grammar, so it is exposed as the \create meta-command.
func Start(eng *engine.Engine) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to toydb")
	fmt.Println("Type 'exit' or '\\q' to quit, '\\create <table> <col,col,...>' to create a table.")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if line == "exit" || line == "\\q" {
			break
		}

		if line == "tables" {
			for _, name := range eng.ListTables() {
				fmt.Printf("  - %s\n", name)
			}
			continue
		}

		if strings.HasPrefix(line, "\\create") {
			if err := runCreate(eng, line); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}

		result, err := eng.Execute(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		PrintResult(os.Stdout, result)
	}
}

// runCreate handles: \create <table> <col,col,...>
func runCreate(eng *engine.Engine, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("usage: \\create <table> <col,col,...>")
	}
	name := fields[1]
	columns := strings.Split(fields[2], ",")
	for i, col := range columns {
		columns[i] = strings.TrimSpace(col)
	}
	if err := eng.CreateTable(name, columns); err != nil {
		return err
	}
	fmt.Printf("Table '%s' created\n", name)
	return nil
}

// PrintResult renders a statement result as an aligned table.
func PrintResult(w io.Writer, res *executor.Result) {
	if res.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", res.Error)
		return
	}

	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}

	if len(res.Rows) > 0 && len(res.Columns) > 0 {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

		// Header
		for i, col := range res.Columns {
			fmt.Fprintf(tw, "%s", col)
			if i < len(res.Columns)-1 {
				fmt.Fprintf(tw, "\t")
			}
		}
		fmt.Fprintln(tw)

		// Separator
		for i := range res.Columns {
			fmt.Fprintf(tw, "---")
			if i < len(res.Columns)-1 {
				fmt.Fprintf(tw, "\t")
			}
		}
		fmt.Fprintln(tw)

		// Rows
		for _, row := range res.Rows {
			for i, col := range res.Columns {
				val, ok := row[col]
				if !ok {
					fmt.Fprintf(tw, "NULL")
				} else {
					fmt.Fprintf(tw, "%s", val)
				}
				if i < len(res.Columns)-1 {
					fmt.Fprintf(tw, "\t")
				}
			}
			fmt.Fprintln(tw)
		}
		tw.Flush()
	}
}
