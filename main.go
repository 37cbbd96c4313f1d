package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"inkwell/app/backup"
	"inkwell/app/config"
	"inkwell/app/fixtures"
	"inkwell/app/repositories"
	"inkwell/app/services"
	"inkwell/service"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	args := os.Args[2:]
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	case "seed":
		seed(args)
	case "export":
		exportPosts(args)
	case "import":
		importPosts(args)
	case "reset":
		reset(args)
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command> [options]
Commands:
  help                     Display this help message.
  version                  Show version information.
  serve                    Run the HTTP server (INKWELL_ADDR, INKWELL_DB, INKWELL_BASE_URL).
  seed [-n N] [-db target] Bulk-load N random posts into the store.
  export <file>            Dump all posts to a zstd-compressed JSON file.
  import <file>            Load posts from a zstd-compressed JSON file.
  reset [-db target]       Remove every post from the store.
`
	fmt.Println(helpText)
}

// serve runs the HTTP server until interrupted.
func serve() {
	cfg := config.Load()
	app := service.New(cfg)
	if err := app.Start(cfg.Target); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down...")
	if err := app.Stop(); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
}

func seed(args []string) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	n := fs.Int("n", 10, "number of posts to create")
	target := fs.String("db", config.Load().Target, "store connection target")
	fs.Parse(args)

	repo := mustOpen(*target)
	defer repo.Close()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	svc := services.NewPostService(repo)
	posts, err := svc.SeedPosts(fixtures.RandomPostInputs(rng, *n))
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	log.Printf("Seeded %d posts", len(posts))
}

func exportPosts(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	target := fs.String("db", config.Load().Target, "store connection target")
	fs.Parse(args)
	if fs.NArg() < 1 {
		log.Fatal("export requires an output file")
	}

	repo := mustOpen(*target)
	defer repo.Close()

	f, err := os.Create(fs.Arg(0))
	if err != nil {
		log.Fatalf("Failed to create %s: %v", fs.Arg(0), err)
	}
	defer f.Close()

	if err := backup.Export(repo, f); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Printf("Exported posts to %s", fs.Arg(0))
}

func importPosts(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	target := fs.String("db", config.Load().Target, "store connection target")
	fs.Parse(args)
	if fs.NArg() < 1 {
		log.Fatal("import requires an input file")
	}

	repo := mustOpen(*target)
	defer repo.Close()

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		log.Fatalf("Failed to open %s: %v", fs.Arg(0), err)
	}
	defer f.Close()

	n, err := backup.Import(repo, f)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
	log.Printf("Imported %d posts", n)
}

func reset(args []string) {
	fs := flag.NewFlagSet("reset", flag.ExitOnError)
	target := fs.String("db", config.Load().Target, "store connection target")
	fs.Parse(args)

	repo := mustOpen(*target)
	defer repo.Close()

	if err := repo.Clear(); err != nil {
		log.Fatalf("Reset failed: %v", err)
	}
	log.Println("Store cleared")
}

func mustOpen(target string) repositories.PostRepository {
	repo, err := repositories.Open(target)
	if err != nil {
		log.Fatalf("Failed to open store %q: %v", target, err)
	}
	return repo
}
