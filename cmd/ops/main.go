package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"goalforge/internal/ops"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage:
  ops snapshot -data <dir> -archive <file>   archive the data directory
  ops restore  -archive <file> -data <dir>   unpack a snapshot
  ops verify   -archive <file>               inspect a snapshot`)
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	fs := flag.NewFlagSet(os.Args[1], flag.ExitOnError)
	dataDir := fs.String("data", "data", "goalforge data directory")
	archive := fs.String("archive", "goalforge-backup.tar.gz", "snapshot archive path")
	_ = fs.Parse(os.Args[2:])

	switch os.Args[1] {
	case "snapshot":
		if err := ops.Snapshot(*dataDir, *archive); err != nil {
			log.Fatalf("snapshot: %v", err)
		}
		log.Printf("snapshot written to %s", *archive)
	case "restore":
		if err := ops.Restore(*archive, *dataDir); err != nil {
			log.Fatalf("restore: %v", err)
		}
		log.Printf("restored %s into %s", *archive, *dataDir)
	case "verify":
		info, err := ops.Verify(*archive)
		if err != nil {
			log.Fatalf("verify: %v", err)
		}
		log.Printf("snapshot ok: %d goal(s), %d schedule(s), %d scheduled task(s)",
			info.Goals, info.Schedules, info.ScheduledTasks)
	default:
		usage()
	}
}
