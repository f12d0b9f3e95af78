package database

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
)

// Only schema and session statements are replayed; data rows are written by
// the seeder instead.
var seedScriptKeywords = map[string]bool{
	"CREATE": true,
	"SET":    true,
}

// ExecSeedScript executes the lines of a one-statement-per-line script whose
// first space-separated token is CREATE or SET. It returns how many ran.
func ExecSeedScript(db *sql.DB, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	executed := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		keyword, _, _ := strings.Cut(line, " ")
		if !seedScriptKeywords[keyword] {
			continue
		}
		if _, err := db.Exec(line); err != nil {
			return executed, fmt.Errorf("failed to execute seed script line %d: %w", lineNo, err)
		}
		executed++
	}
	if err := scanner.Err(); err != nil {
		return executed, fmt.Errorf("failed to read seed script: %w", err)
	}
	return executed, nil
}

// ExecSeedScriptFile opens path and runs it through ExecSeedScript
func ExecSeedScriptFile(db *sql.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open seed script: %w", err)
	}
	defer f.Close()

	return ExecSeedScript(db, f)
}
