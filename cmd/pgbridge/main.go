package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/eduardofuncao/pgbridge/internal/config"
	"github.com/eduardofuncao/pgbridge/internal/parser"
	"github.com/eduardofuncao/pgbridge/internal/styles"
)

func main() {
	cfg, err := config.LoadConfig(config.CfgFile)
	if err != nil {
		log.Fatal("Could not load config file: ", err)
	}

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch command := os.Args[1]; command {

	case "init":
		if len(os.Args) < 7 {
			log.Fatal("Usage: pgbridge init <name> <host> <port> <database> <username> [password]")
		}
		port, err := strconv.Atoi(os.Args[4])
		if err != nil {
			log.Fatalf("Invalid port %q", os.Args[4])
		}
		profile := &config.Profile{
			Name:     os.Args[2],
			Host:     os.Args[3],
			Port:     port,
			Database: os.Args[5],
			Username: os.Args[6],
			TimeZone: "auto",
		}
		if len(os.Args) > 7 {
			profile.Password = os.Args[7]
		}
		handleInit(cfg, profile)

	case "switch", "use":
		if len(os.Args) < 3 {
			log.Fatal("Usage: pgbridge switch/use <profile>")
		}
		if _, ok := cfg.Profiles[os.Args[2]]; !ok {
			log.Fatalf("Profile %s does not exist", os.Args[2])
		}
		cfg.CurrentProfile = os.Args[2]
		if err := cfg.Save(); err != nil {
			log.Fatal("Could not save configuration file")
		}
		fmt.Printf("now using: %s\n", styles.Title.Render(cfg.CurrentProfile))

	case "add":
		if len(os.Args) < 4 {
			log.Fatal("Usage: pgbridge add <query-name> <sql>")
		}
		query := config.Query{Name: os.Args[2], SQL: os.Args[3]}
		if err := cfg.SaveQueryToProfile(cfg.CurrentProfile, query); err != nil {
			log.Fatal("Could not save query: ", err)
		}

	case "list":
		handleList(cfg)

	case "status":
		handleStatus(cfg)

	case "version":
		handleVersion(cfg)

	case "query", "run":
		handleQuery(cfg, os.Args[2:])

	case "exec":
		if len(os.Args) < 3 {
			log.Fatal("Usage: pgbridge exec <sql>")
		}
		handleExec(cfg, os.Args[2])

	case "edit":
		handleEdit(cfg)

	case "currval":
		if len(os.Args) < 3 {
			log.Fatal("Usage: pgbridge currval <sequence>")
		}
		handleCurrVal(cfg, os.Args[2])

	case "help":
		printHelp()

	default:
		log.Fatalf("Unknown command: %s", command)
	}
}

func handleList(cfg *config.Config) {
	profile := cfg.Current()
	if profile == nil {
		fmt.Println(styles.Faint.Render("No active profile"))
		return
	}
	fmt.Printf("Profiles:\n")
	for name, p := range cfg.Profiles {
		marker := "  "
		if name == cfg.CurrentProfile {
			marker = styles.Success.Render("● ")
		}
		fmt.Printf("%s%s (%s@%s:%d/%s)\n", marker, name, p.Username, p.Host, p.Port, p.Database)
	}
	for _, query := range profile.Queries {
		fmt.Println(styles.Title.Render("\n◆ " + query.Name))
		fmt.Println(parser.HighlightSQL(parser.FormatSQL(query.SQL)))
	}
}
