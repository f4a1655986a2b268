package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v2"

	"bestgram"
)

func main() {
	app := &cli.App{
		Name:  "bestgram",
		Usage: "analyze a tagged Thai corpus: vectorize characters and count distinct n-grams",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "gram",
				Aliases:  []string{"g"},
				Required: true,
				Usage:    "number of gram to be analyzed, for example 3",
			},
			&cli.StringSliceFlag{
				Name:     "src",
				Aliases:  []string{"s"},
				Required: true,
				Usage:    "corpus file paths, glob patterns allowed (including **)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "out.csv",
				Usage:   "CSV file to store the analysis result",
			},
			&cli.StringFlag{
				Name:  "input-buffer",
				Value: "16M",
				Usage: "buffer size for corpus file reads, for example 64K or 16M",
			},
			&cli.StringFlag{
				Name:  "char-list-file",
				Usage: "file with one non-Thai character per line to include in vectorization",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "dump the full report after the run",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	gram := c.Int("gram")
	if gram <= 0 {
		return fmt.Errorf("gram must be greater than 0, got %d", gram)
	}

	bufSize, err := humanize.ParseBytes(c.String("input-buffer"))
	if err != nil {
		return fmt.Errorf("parse input-buffer: %w", err)
	}

	outPath := c.String("out")
	if err := confirmOverwrite(outPath); err != nil {
		return err
	}

	include, err := readCharList(c.String("char-list-file"))
	if err != nil {
		return err
	}

	paths, err := expandGlobs(c.StringSlice("src"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no corpus files matched %v", c.StringSlice("src"))
	}

	fmt.Printf("%d-gram\n", gram)
	fmt.Printf("total %d source files\n", len(paths))
	fmt.Printf("input buffer: %d bytes\n", bufSize)
	fmt.Printf("total non-Thai characters to be included is %d chars\n", len(include))
	fmt.Printf("store output to %s\n", outPath)

	alphabet := bestgram.NewAlphabet()
	vectorizer := bestgram.NewVectorizer(int(bufSize), bestgram.NewThaiCharFilter(include), alphabet)
	analyzer := bestgram.NewAnalyzer(vectorizer, bestgram.NewStorageCsvImpl(outPath))

	report, err := analyzer.Analyze(paths, gram)
	if err != nil {
		return err
	}

	fmt.Printf("total parsing took %s\n", report.ParseTime)
	fmt.Printf("total %d characters in corpus\n", report.TotalSymbols)
	fmt.Printf("total %d unique characters\n", report.DistinctChars)
	fmt.Printf("total unique analysis time is %s\n", report.CountTime)
	fmt.Printf("total %d unique %d-gram\n", report.DistinctGrams, gram)

	if c.Bool("verbose") {
		pp.Println(report)
	}
	return nil
}

func expandGlobs(patterns []string) ([]string, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// confirmOverwrite asks before clobbering an existing output file and
// removes it on confirmation, so the CSV storage starts from a fresh header.
func confirmOverwrite(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	fmt.Printf("%s already exists, overwrite it (y/n)? ", path)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	if answer != "y" && answer != "yes" {
		return fmt.Errorf("refusing to overwrite %s", path)
	}
	return os.Remove(path)
}

// readCharList loads the include list, one character per line. An empty
// line stands for the newline character itself. Duplicates are dropped.
func readCharList(path string) ([]rune, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open char-list-file: %w", err)
	}
	defer f.Close()

	var chars []rune
	seen := make(map[rune]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		ch := '\n'
		if runes := []rune(scanner.Text()); len(runes) > 0 {
			ch = runes[0]
		}
		if _, ok := seen[ch]; ok {
			continue
		}
		seen[ch] = struct{}{}
		chars = append(chars, ch)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return chars, nil
}
