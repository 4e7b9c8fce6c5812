package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/eduardofuncao/pgbridge/internal/config"
	"github.com/eduardofuncao/pgbridge/internal/editor"
	"github.com/eduardofuncao/pgbridge/internal/styles"
	"github.com/eduardofuncao/pgbridge/internal/table"
)

type queryFlags struct {
	copyResult bool
	editMode   bool
}

// handleQuery resolves the SQL to run: a saved query name, inline SQL, or
// the interactive editor when --edit is given.
func handleQuery(cfg *config.Config, args []string) {
	flags, rest := parseQueryFlags(args)

	profile := cfg.Current()
	if profile == nil {
		log.Fatal("No active profile; run pgbridge init first")
	}

	sql := strings.Join(rest, " ")
	if saved, ok := profile.Queries[sql]; ok {
		sql = saved.SQL
	}

	if flags.editMode {
		edited, submitted, err := editor.Prompt(profile.Name, sql)
		if err != nil {
			log.Fatal("Editor failed: ", err)
		}
		if !submitted {
			return
		}
		sql = edited
	}
	if strings.TrimSpace(sql) == "" {
		log.Fatal("Usage: pgbridge query [--edit] [--copy] <saved-name | sql>")
	}

	runAndRender(cfg, sql, flags.copyResult)
}

func handleEdit(cfg *config.Config) {
	profile := cfg.Current()
	if profile == nil {
		log.Fatal("No active profile; run pgbridge init first")
	}
	sql, submitted, err := editor.Prompt(profile.Name, profile.LastQuery)
	if err != nil {
		log.Fatal("Editor failed: ", err)
	}
	if !submitted {
		return
	}
	runAndRender(cfg, sql, false)
}

func runAndRender(cfg *config.Config, sql string, copyResult bool) {
	adapter, cleanup, err := openAdapter(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	res, err := adapter.Query(sql)
	if err != nil {
		log.Fatal("Could not execute query: ", err)
	}
	columns, data, err := res.ReadAll()
	res.Close()
	if err != nil {
		log.Fatal("Could not read result: ", err)
	}

	elapsed := time.Duration(adapter.QueryElapsedTime() * float64(time.Second))
	if err := table.Render(columns, data, elapsed); err != nil {
		log.Fatalf("Error rendering table: %v", err)
	}

	if copyResult {
		if err := clipboard.WriteAll(table.TSV(columns, data)); err != nil {
			fmt.Println(styles.Error.Render("Could not copy result: " + err.Error()))
		} else {
			fmt.Println(styles.Faint.Render("result copied to clipboard"))
		}
	}

	cfg.UpdateLastQuery(cfg.CurrentProfile, sql)
}

func handleExec(cfg *config.Config, sql string) {
	adapter, cleanup, err := openAdapter(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	affected, err := adapter.Exec(sql)
	if err != nil {
		log.Fatal("Could not execute statement: ", err)
	}
	fmt.Printf("%s %d row(s) affected in %.2fs\n",
		styles.Success.Render("✓"), affected, adapter.QueryElapsedTime())

	cfg.UpdateLastQuery(cfg.CurrentProfile, sql)
}

func handleCurrVal(cfg *config.Config, sequence string) {
	adapter, cleanup, err := openAdapter(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	id, err := adapter.LastInsertedID(sequence)
	if err != nil {
		log.Fatal("Could not read sequence: ", err)
	}
	fmt.Println(id)
}

func parseQueryFlags(args []string) (queryFlags, []string) {
	var flags queryFlags
	var rest []string
	for _, arg := range args {
		switch arg {
		case "--copy", "-c":
			flags.copyResult = true
		case "--edit", "-e":
			flags.editMode = true
		default:
			rest = append(rest, arg)
		}
	}
	return flags, rest
}
