// Command duralogctl writes and replays a write-ahead log protected by
// CRC32C.
//
// Usage:
//
//	duralogctl write  -dir <path> <key> <value>
//	duralogctl replay -dir <path>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/novuslabs/duralog/wal"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "write":
		runWrite(os.Args[2:])
	case "replay":
		runReplay(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  duralogctl write  -dir <path> <key> <value>")
	fmt.Fprintln(os.Stderr, "  duralogctl replay -dir <path>")
}

func runWrite(args []string) {
	fs := flag.NewFlagSet("write", flag.ExitOnError)
	dir := fs.String("dir", "", "directory containing (or to hold) the wal subdirectory")
	sync := fs.Bool("sync", false, "fsync after every write")
	compress := fs.Bool("compress", false, "snappy-compress values before writing")
	fs.Parse(args)

	rest := fs.Args()
	if *dir == "" || len(rest) != 2 {
		usage()
		os.Exit(1)
	}
	key, value := rest[0], rest[1]

	w, err := wal.Open(wal.Config{Path: *dir, SyncOnWrite: *sync, CompressValues: *compress})
	if err != nil {
		log.Fatalf("duralogctl: open %s: %v", *dir, err)
	}
	defer w.Close()

	seq, err := w.WriteEntry([]byte(key), []byte(value))
	if err != nil {
		log.Fatalf("duralogctl: write entry: %v", err)
	}
	fmt.Printf("wrote sequence %d to %s\n", seq, w.LogPath())
}

func runReplay(args []string) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	dir := fs.String("dir", "", "directory containing the wal subdirectory")
	fs.Parse(args)

	if *dir == "" {
		usage()
		os.Exit(1)
	}

	w, err := wal.Open(wal.Config{Path: *dir})
	if err != nil {
		log.Fatalf("duralogctl: open %s: %v", *dir, err)
	}
	defer w.Close()

	it, err := w.Entries()
	if err != nil {
		log.Fatalf("duralogctl: entries: %v", err)
	}
	defer it.Close()

	count := 0
	for it.Next() {
		e := it.Entry()
		value, err := e.Decoded()
		if err != nil {
			log.Fatalf("duralogctl: decode sequence %d: %v", e.Sequence, err)
		}
		fmt.Printf("[%d] type=%d key=%q value=%q\n", e.Sequence, e.Type, e.Key, value)
		count++
	}
	if err := it.Err(); err != nil {
		log.Fatalf("duralogctl: replay: %v", err)
	}
	fmt.Printf("%d record(s) replayed\n", count)
}
